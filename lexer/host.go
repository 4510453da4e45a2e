package lexer

// Host is the embedding environment's bridge into the lexer. The lexer
// itself performs no I/O and owns no document model; every observable
// effect of a scan happens through these methods.
//
// A single Lexer is driven by a single Host for the lifetime of a scan.
// Host methods are called synchronously, from within Advance, in input
// order; Advance does not return until the call completes.
type Host interface {
	// Emit reports a ranged token: buf[start:end] is the token's bytes, in
	// the encoding named by enc. enc is opaque to the lexer; it is whatever
	// was passed to Advance.
	Emit(kind Kind, start, end int, buf []byte, enc any)

	// EmitSimple reports a token-less signal such as a delimiter or closing
	// quote.
	EmitSimple(kind Kind)

	// AdvanceLine flushes n newlines' worth of line accounting. It is
	// called at a few safe points (after text and body runs, after a
	// closing quote, and when a call's buffer is exhausted), not after
	// every newline.
	AdvanceLine(n int)

	// HTML reports whether the input should be lexed under HTML rules
	// (unquoted attribute values, raw-text elements). It is queried once
	// per Advance call.
	HTML() bool

	// HTMLScript reports whether the element whose open tag was just
	// closed is a script element, i.e. whether its content should be
	// lexed as raw text up to a literal </script>. Queried only in HTML
	// mode, immediately after on_element_open_end.
	HTMLScript() bool

	// HTMLStyle is HTMLScript's counterpart for style elements.
	HTMLStyle() bool
}
