// Package lexer implements a resumable, pushdown-automaton tokenizer for
// XML and (optionally) HTML input. It performs no I/O and allocates no
// per-token state: every observable effect of a scan is reported through
// the Host interface supplied to Advance.
//
// A Lexer is not safe for concurrent use; each goroutine driving a scan
// needs its own.
package lexer

// Lexer holds the persistent state of a scan: the current machine, the
// longest-match action register, the sub-machine return stack, and the
// newline count pending a flush. All of this survives across Advance
// calls, which is what makes a scan resumable across arbitrary chunk
// boundaries (spec.md §8, "resumability").
type Lexer struct {
	cs    Machine
	act   action
	top   int
	stack [maxDepth]Machine
	lines int

	// pending holds the unconsumed tail of a previous Advance call's
	// buffer when a multi-byte lookahead decision ran off the end of it.
	// The next call prepends it to the new data before scanning resumes.
	pending []byte

	// htmlMode caches Host.HTML() for the duration of one Advance call,
	// per host.go's documented query contract.
	htmlMode bool

	// doctypeSawName tracks whether the current <!DOCTYPE ...> has already
	// emitted its root-element name, distinguishing that name from the
	// later PUBLIC/SYSTEM keyword when doctype is re-entered after a
	// pushed string literal returns.
	doctypeSawName bool
}

// New returns a Lexer ready to scan from the start of a document.
func New() *Lexer { return &Lexer{} }

// Reset discards all persistent state and returns the Lexer to its
// just-constructed condition, ready to scan a new, unrelated document.
func (l *Lexer) Reset() { *l = Lexer{} }

// Current reports the sub-machine the Lexer is presently in. It exists for
// diagnostics: a Host may log or assert on it, but normal operation never
// needs to inspect it.
func (l *Lexer) Current() Machine { return l.cs }

// Advance feeds data to the scanner and drives it until either data is
// exhausted or the scanner has entered the absorbing error machine. enc is
// opaque to the lexer; it is threaded through to every Host.Emit call
// unexamined, letting a Host interpret token bytes in whatever encoding it
// declared out of band.
//
// Advance may be called repeatedly with successive chunks of the same
// logical document; a decision that needs more lookahead than the current
// call provides is deferred and retried, transparently, against the
// concatenation of the unconsumed tail and the next call's data.
func (l *Lexer) Advance(h Host, data []byte, enc any) {
	if l.cs == MachineError {
		return
	}
	buf := data
	if len(l.pending) > 0 {
		buf = make([]byte, 0, len(l.pending)+len(data))
		buf = append(buf, l.pending...)
		buf = append(buf, data...)
		l.pending = nil
	}
	l.htmlMode = h.HTML()
	c := &cursor{buf: buf, pe: len(buf)}
	l.run(h, c, enc)
}

// defer_ saves buf[start:c.pe] as pending input for the next Advance call
// and halts the run loop for this one. It is used whenever a machine's
// dispatch needs more lookahead than the current buffer can supply.
func (l *Lexer) defer_(c *cursor, start int) bool {
	if start < c.pe {
		l.pending = append([]byte(nil), c.buf[start:c.pe]...)
	}
	return false
}

// run drives the scanner over c until data is exhausted, the error machine
// is entered, or a sub-machine defers for lack of lookahead.
func (l *Lexer) run(h Host, c *cursor, enc any) {
	for {
		if l.cs == MachineError {
			return
		}
		if c.p >= c.pe {
			l.flushLines(h)
			return
		}
		if !l.step(h, c, enc) {
			return
		}
	}
}

// step dispatches one unit of work to the current machine. It returns
// false if the machine deferred for lack of lookahead, in which case run
// stops immediately; otherwise it returns true, and run loops back in to
// re-examine c.p under (possibly) the new current machine.
func (l *Lexer) step(h Host, c *cursor, enc any) bool {
	switch l.cs {
	case MachineMain:
		return l.stepMain(h, c, enc)
	case MachineText:
		return l.stepText(h, c, enc)
	case MachineHTMLScript:
		return l.stepRawText(h, c, enc, "script")
	case MachineHTMLStyle:
		return l.stepRawText(h, c, enc, "style")
	case MachineCommentBody:
		return l.stepCommentBody(h, c, enc)
	case MachineCDataBody:
		return l.stepCDataBody(h, c, enc)
	case MachineProcInsBody:
		return l.stepProcInsBody(h, c, enc)
	case MachineXMLDecl:
		return l.stepXMLDecl(h, c, enc)
	case MachineDoctype:
		return l.stepDoctype(h, c, enc)
	case MachineDoctypeInline:
		return l.stepDoctypeInline(h, c, enc)
	case MachineElementName:
		return l.stepElementName(h, c, enc, false)
	case MachineElementClose:
		return l.stepElementName(h, c, enc, true)
	case MachineElementCloseTail:
		return l.stepElementCloseTail(h, c, enc)
	case MachineElementHead:
		return l.stepElementHead(h, c, enc, false)
	case MachineHTMLElementHead:
		return l.stepElementHead(h, c, enc, true)
	case MachineAttributePre:
		return l.stepAttributePre(h, c, enc)
	case MachineUnquotedAttributeValue:
		return l.stepUnquotedAttributeValue(h, c, enc)
	case MachineQuotedAttributeValue:
		return l.stepQuotedAttributeValue(h, c, enc)
	case MachineStringSquote:
		return l.stepString(h, c, enc, '\'', KindStringSquote)
	case MachineStringDquote:
		return l.stepString(h, c, enc, '"', KindStringDquote)
	default:
		l.cs = MachineError
		return false
	}
}
