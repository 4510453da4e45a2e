package lexer

// cursor holds the transient, per-call scan state described in spec.md §3:
// the buffer being scanned this call, the read position p, the end pe, and
// the marker registers ts/te/mark. Only ts is used by the machines; te and
// mark carry the original scanner's register names and are never read or
// written, since the machines scan a whole candidate before branching and
// text checks the byte after '<' directly instead of rewinding to a mark.
//
// A cursor never survives past the Advance call that created it. If a
// multi-byte lookahead decision (e.g. disambiguating "<!--" from
// "<![CDATA[") runs off the end of buf before it can commit, Lexer.Advance
// saves buf[ts:pe] as pending input and replays it, concatenated with the
// next call's data, as the next cursor's buf. See Lexer.Advance.
type cursor struct {
	buf []byte
	p   int // read position
	pe  int // end of buf
	ts  int // token start
	te  int // tentative token end (longest-match bookkeeping)
	mark int // text mark-recovery rewind point
}

// byte returns the current byte. Callers must ensure p < pe.
func (c *cursor) byte() byte { return c.buf[c.p] }

// have reports whether n more bytes are available starting at p, i.e.
// whether buf[p:p+n] can be read without running off pe.
func (c *cursor) have(n int) bool { return c.p+n <= c.pe }

// at returns buf[c.p+off]. Callers must have checked have(off+1).
func (c *cursor) at(off int) byte { return c.buf[c.p+off] }
