package lexer

// stepText implements the text machine: plain character data, broken only
// by a '<' that turns out to begin some other construct.
//
// The mark-recovery rule (spec.md §4.1 rule 2) needs only one byte of
// lookahead — isTagOpenerFollow — to decide whether a '<' is worth handing
// back to main; main itself resolves the deeper ambiguity (comment vs.
// cdata vs. doctype vs. decl vs. element) once it regains control. A '<'
// that fails the check, including one sitting at the very end of the
// current buffer with no lookahead byte available at all, is absorbed into
// the running text span rather than deferred: spec.md §8's boundary case
// ("text, then '<', then EOF") requires that exact span, covering the '<',
// to come out as a single on_text, not be held back awaiting a chunk that
// may never arrive.
func (l *Lexer) stepText(h Host, c *cursor, enc any) bool {
	ts := c.ts
	p := c.p
	for p < c.pe {
		if c.buf[p] == '<' {
			if p+1 < c.pe && isTagOpenerFollow(c.buf[p+1]) {
				l.emitText(h, c, ts, p, enc)
				c.p = p
				c.ts = p
				l.cs = MachineMain
				return true
			}
			p++
			continue
		}
		p++
	}
	l.emitText(h, c, ts, p, enc)
	c.p = p
	c.ts = p
	return true
}

// stepRawText implements html_script and html_style: character data that
// ends only on the literal, case-sensitive closing tag for the given
// element name (spec.md §5's supplemented resolution of the original
// lexer's raw-text handling). Unlike text's mark recovery, a '<' found
// here that can't yet be confirmed or refuted defers to the next Advance
// call rather than guessing, since there is no boundary case mandating
// otherwise.
func (l *Lexer) stepRawText(h Host, c *cursor, enc any, tag string) bool {
	ts := c.ts
	p := c.p
	needed := 3 + len(tag) // "</" + tag + ">"
	for p < c.pe {
		if c.buf[p] == '<' {
			if c.pe-p < needed {
				c.p = p
				return l.defer_(c, ts)
			}
			if matchClosingTag(c.buf, p, tag) {
				l.emitText(h, c, ts, p, enc)
				nameStart := p + 2
				nameEnd := nameStart + len(tag)
				l.emit(h, KindElementName, nameStart, nameEnd, c, enc)
				h.EmitSimple(KindElementEnd)
				c.p = nameEnd + 1
				c.ts = c.p
				l.cs = MachineMain
				return true
			}
			p++
			continue
		}
		p++
	}
	l.emitText(h, c, ts, p, enc)
	c.p = p
	c.ts = p
	return true
}

// matchClosingTag reports whether buf[p:] begins with "</" + tag + ">",
// matched byte for byte.
func matchClosingTag(buf []byte, p int, tag string) bool {
	if buf[p+1] != '/' {
		return false
	}
	for i := 0; i < len(tag); i++ {
		if buf[p+2+i] != tag[i] {
			return false
		}
	}
	return buf[p+2+len(tag)] == '>'
}
