package lexer

// stepDoctype scans the body of <!DOCTYPE ...>: the root element name,
// then an optional PUBLIC/SYSTEM keyword and its quoted literal(s), then
// either an internal subset or the closing '>'. It reuses the same
// quoted-value sub-machine the element attribute path uses, pushed
// directly rather than via attribute_pre — doctype has no concept of an
// unquoted literal (spec.md §5).
func (l *Lexer) stepDoctype(h Host, c *cursor, enc any) bool {
	p := c.p
	for p < c.pe && isSpace(c.buf[p]) {
		p++
	}
	if p >= c.pe {
		c.p = p
		return l.defer_(c, p)
	}
	b := c.buf[p]
	switch {
	case b == '>':
		h.EmitSimple(KindDoctypeEnd)
		c.p = p + 1
		c.ts = c.p
		l.cs = MachineMain
		return true
	case b == '[':
		c.p = p + 1
		c.ts = c.p
		l.cs = MachineDoctypeInline
		return true
	case b == '\'' || b == '"':
		l.push(MachineQuotedAttributeValue)
		c.p = p
		c.ts = p
		return true
	case isNameStart(b):
		start := p
		p++
		for p < c.pe && isNameByte(c.buf[p]) {
			p++
		}
		if p == c.pe {
			c.p = start
			return l.defer_(c, start)
		}
		if !l.doctypeSawName {
			l.doctypeSawName = true
			l.emit(h, KindDoctypeName, start, p, c, enc)
		} else {
			l.emit(h, KindDoctypeType, start, p, c, enc)
		}
		c.p = p
		c.ts = p
		return true
	default:
		l.cs = MachineError
		return false
	}
}

// stepDoctypeInline scans the internal subset as an opaque, bracket-
// nested span, matching the original lexer's refusal to tokenize
// individual markup declarations (spec.md §5, §1 Non-goals).
func (l *Lexer) stepDoctypeInline(h Host, c *cursor, enc any) bool {
	ts := c.ts
	p := c.p
	depth := 0
	for p < c.pe {
		switch c.buf[p] {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				if p > ts {
					l.emit(h, KindDoctypeInline, ts, p, c, enc)
					l.countLines(c, ts, p)
				}
				c.p = p + 1
				c.ts = c.p
				l.cs = MachineDoctype
				l.flushLines(h)
				return true
			}
			depth--
		}
		p++
	}
	if p > ts {
		l.emit(h, KindDoctypeInline, ts, p, c, enc)
		l.countLines(c, ts, p)
	}
	c.p = p
	c.ts = p
	l.flushLines(h)
	return true
}
