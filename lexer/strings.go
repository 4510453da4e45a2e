package lexer

// stepQuotedAttributeValue is entered with c.p sitting exactly on an
// opening quote byte, confirmed by whichever caller pushed it (attribute_pre,
// xml_decl, or doctype). It emits the opening-quote signal and hands off to
// the matching string body machine, which performs the pop once the closing
// quote is found.
func (l *Lexer) stepQuotedAttributeValue(h Host, c *cursor, enc any) bool {
	switch c.buf[c.p] {
	case '\'':
		h.EmitSimple(KindStringSquote)
		c.p++
		c.ts = c.p
		l.cs = MachineStringSquote
		return true
	default:
		h.EmitSimple(KindStringDquote)
		c.p++
		c.ts = c.p
		l.cs = MachineStringDquote
		return true
	}
}

// stepString scans a quoted literal's body up to the matching quote byte,
// emitting the body (if non-empty) and the closing-quote signal, then
// returns control to whichever machine pushed the value (attribute_pre's
// caller, xml_decl, or doctype) via pop.
func (l *Lexer) stepString(h Host, c *cursor, enc any, quote byte, kind Kind) bool {
	ts := c.ts
	p := c.p
	for p < c.pe && c.buf[p] != quote {
		p++
	}
	if p == c.pe {
		if p > ts {
			l.emit(h, KindStringBody, ts, p, c, enc)
			l.countLines(c, ts, p)
		}
		c.p = p
		c.ts = p
		return l.defer_(c, p)
	}
	if p > ts {
		l.emit(h, KindStringBody, ts, p, c, enc)
		l.countLines(c, ts, p)
	}
	h.EmitSimple(kind)
	l.flushLines(h)
	c.p = p + 1
	c.ts = c.p
	l.pop()
	return true
}
