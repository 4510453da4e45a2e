package lexer

// emit reports a ranged token covering c.buf[start:end].
func (l *Lexer) emit(h Host, kind Kind, start, end int, c *cursor, enc any) {
	h.Emit(kind, start, end, c.buf, enc)
}

// countLines scans c.buf[start:end] and adds every newline found to the
// pending line count. It does not itself call AdvanceLine: per spec.md §5,
// line flushes happen only at the safe points below, not after every byte,
// so that a host watching Position() mid-token never observes a partial
// count.
func (l *Lexer) countLines(c *cursor, start, end int) {
	for i := start; i < end; i++ {
		if c.buf[i] == '\n' {
			l.lines++
		}
	}
}

// flushLines reports the accumulated newline count to h and resets it. It
// is called once per safe point: after a text emission, when a comment,
// CDATA, processing-instruction or doctype-inline body ends or reaches the
// end of the buffer, after a string's closing quote, and when run reaches
// the end of the buffer. A call that stops because a machine deferred
// leaves the count pending for the next call.
func (l *Lexer) flushLines(h Host) {
	if l.lines == 0 {
		return
	}
	h.AdvanceLine(l.lines)
	l.lines = 0
}

// emitText emits a KindText range (if non-empty), counts its newlines, and
// flushes them. Text is always a safe point: nothing about an open text
// range depends on the line count, unlike a token mid-scan.
func (l *Lexer) emitText(h Host, c *cursor, start, end int, enc any) {
	if end <= start {
		return
	}
	l.countLines(c, start, end)
	l.emit(h, KindText, start, end, c, enc)
	l.flushLines(h)
}
