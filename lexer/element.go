package lexer

// stepElementName scans an element's (possibly namespaced) name, shared by
// both the open-tag ("<name") and close-tag ("</name") paths. The full
// extent of the name is confirmed before anything is emitted, so a chunk
// boundary landing mid-name (even exactly on a ':') defers cleanly rather
// than emitting a namespace split it can't yet take back.
func (l *Lexer) stepElementName(h Host, c *cursor, enc any, isClose bool) bool {
	ts := c.ts
	p := c.p
	colon := -1
	for p < c.pe {
		b := c.buf[p]
		if b == ':' && colon < 0 {
			colon = p
			p++
			continue
		}
		if !isNameByte(b) {
			break
		}
		p++
	}
	if p == c.pe {
		return l.defer_(c, ts)
	}
	if colon >= 0 {
		l.emit(h, KindElementNS, ts, colon, c, enc)
		l.emit(h, KindElementName, colon+1, p, c, enc)
	} else {
		l.emit(h, KindElementName, ts, p, c, enc)
	}
	c.p = p
	c.ts = p
	if isClose {
		l.cs = MachineElementCloseTail
		return l.stepElementCloseTail(h, c, enc)
	}
	if l.htmlMode {
		l.cs = MachineHTMLElementHead
	} else {
		l.cs = MachineElementHead
	}
	return true
}

// stepElementCloseTail scans past optional whitespace to the '>' that ends
// a close tag, emitting on_element_end once it's found. It is a distinct
// machine from element_close itself so that a chunk boundary landing in
// the whitespace run resumes here, not back in name scanning.
func (l *Lexer) stepElementCloseTail(h Host, c *cursor, enc any) bool {
	p := c.p
	for p < c.pe && isSpace(c.buf[p]) {
		p++
	}
	if p >= c.pe {
		c.p = p
		return l.defer_(c, p)
	}
	if c.buf[p] != '>' {
		l.cs = MachineError
		return false
	}
	h.EmitSimple(KindElementEnd)
	c.p = p + 1
	c.ts = c.p
	l.cs = MachineMain
	return true
}

// emitSelfClose reports the two simple events a self-closing tag produces,
// in the order spec.md §8 requires: on_element_end before
// on_element_open_end (spec.md §5 notes the original lexer's C source
// emits only the former; this implementation follows the explicit,
// authoritative scenario in spec.md instead).
func (l *Lexer) emitSelfClose(h Host) {
	h.EmitSimple(KindElementEnd)
	h.EmitSimple(KindElementOpenEnd)
}

// stepElementHead scans an open tag's attribute list and head terminator
// ('/>' or '>'), shared by the XML and HTML element-head machines; isHTML
// selects HTML-only behavior (unquoted values, raw-text handoff).
func (l *Lexer) stepElementHead(h Host, c *cursor, enc any, isHTML bool) bool {
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
	case b == '/':
		if c.pe-p < 2 {
			c.p = p
			return l.defer_(c, p)
		}
		if c.buf[p+1] != '>' {
			l.cs = MachineError
			return false
		}
		l.emitSelfClose(h)
		c.p = p + 2
		c.ts = c.p
		l.cs = MachineMain
		return true
	case b == '>':
		h.EmitSimple(KindElementOpenEnd)
		c.p = p + 1
		c.ts = c.p
		l.cs = MachineText
		if isHTML {
			if h.HTMLScript() {
				l.cs = MachineHTMLScript
			} else if h.HTMLStyle() {
				l.cs = MachineHTMLStyle
			}
		}
		return true
	case isNameStart(b):
		return l.stepAttributeName(h, c, enc, p)
	default:
		l.cs = MachineError
		return false
	}
}

// stepAttributeName scans a (possibly namespaced) attribute name starting
// at start, then decides — without consuming past what it can confirm —
// whether it is followed by '=' and a value, handing off to attribute_pre,
// or is a bare, valueless attribute, in which case element_head resumes
// scanning right after the name.
func (l *Lexer) stepAttributeName(h Host, c *cursor, enc any, start int) bool {
	p := start
	colon := -1
	for p < c.pe {
		b := c.buf[p]
		if b == ':' && colon < 0 {
			colon = p
			p++
			continue
		}
		if !isNameByte(b) {
			break
		}
		p++
	}
	if p == c.pe {
		return l.defer_(c, start)
	}
	q := p
	for q < c.pe && isSpace(c.buf[q]) {
		q++
	}
	if q >= c.pe {
		return l.defer_(c, start)
	}

	if colon >= 0 {
		l.emit(h, KindAttributeNS, start, colon, c, enc)
		l.emit(h, KindAttribute, colon+1, p, c, enc)
	} else {
		l.emit(h, KindAttribute, start, p, c, enc)
	}
	c.p = p
	c.ts = p

	if c.buf[q] != '=' {
		return true
	}
	l.push(MachineAttributePre)
	c.p = q + 1
	return true
}

// stepAttributePre skips whitespace after '=' and decides between a
// quoted value, an HTML unquoted value, or — in XML, where a value must be
// quoted — returning control to element_head without consuming the
// offending byte.
func (l *Lexer) stepAttributePre(h Host, c *cursor, enc any) bool {
	p := c.p
	for p < c.pe && isSpace(c.buf[p]) {
		p++
	}
	if p >= c.pe {
		c.p = p
		return l.defer_(c, p)
	}
	b := c.buf[p]
	if b == '\'' || b == '"' {
		c.p = p
		c.ts = p
		l.cs = MachineQuotedAttributeValue
		return true
	}
	if l.htmlMode {
		c.p = p
		c.ts = p
		l.cs = MachineUnquotedAttributeValue
		return true
	}
	l.pop()
	return true
}

// stepUnquotedAttributeValue scans an HTML unquoted attribute value up to
// the next whitespace or '>', reporting it through the same
// quote/body/quote triplet a quoted value would — using the squote kind
// for the synthetic delimiters, matching the original lexer's convention
// (spec.md §5).
func (l *Lexer) stepUnquotedAttributeValue(h Host, c *cursor, enc any) bool {
	ts := c.ts
	p := c.p
	for p < c.pe && !isSpace(c.buf[p]) && c.buf[p] != '>' {
		p++
	}
	if p == c.pe {
		return l.defer_(c, ts)
	}
	if p > ts {
		h.EmitSimple(KindStringSquote)
		l.emit(h, KindStringBody, ts, p, c, enc)
		h.EmitSimple(KindStringSquote)
	}
	c.p = p
	c.ts = p
	l.pop()
	return true
}
