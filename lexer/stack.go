package lexer

// push saves the machine to return to once the sub-machine entered via cs
// transitioning to target completes, and switches cs to target.
//
// Every push must be matched by exactly one pop along any live execution
// path (spec.md §3 invariant 3). Overflowing the stack is a programmer
// error in the grammar itself, not a malformed-input condition, so it
// panics rather than entering the error machine.
func (l *Lexer) push(target Machine) {
	if l.top >= maxDepth {
		panic("lexer: state stack overflow")
	}
	l.stack[l.top] = l.cs
	l.top++
	l.cs = target
}

// pop restores the machine saved by the matching push.
func (l *Lexer) pop() {
	if l.top == 0 {
		panic("lexer: state stack underflow")
	}
	l.top--
	l.cs = l.stack[l.top]
}

// Depth returns the current state-stack depth. A successful scan that has
// returned to main always has Depth() == 0 (spec.md §8, "balanced stack").
func (l *Lexer) Depth() int { return l.top }
