package lexer

// Byte classifiers. The DFA only ever dispatches on bytes in the ASCII
// range; every other byte (>= 0x80, i.e. a UTF-8 continuation or lead byte
// of a multi-byte encoding) is accepted wherever an "other" or "name" byte
// is expected, per spec.md §6 ("Encoding").

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isNameStart reports whether b can start an element, attribute, or
// processing-instruction name.
func isNameStart(b byte) bool {
	return isAlpha(b) || b == '_' || b >= 0x80
}

// isNameByte reports whether b can continue a name once started. The ':'
// byte is deliberately excluded: callers handle it explicitly to implement
// the namespace-prefix split (spec.md §4.1 rule 3).
func isNameByte(b byte) bool {
	return isNameStart(b) || isDigit(b) || b == '-' || b == '.'
}

// isTagOpenerFollow reports whether b, appearing immediately after a '<',
// is consistent with some valid tag-opening construct ("!", "?", "/", or a
// name-start byte). It does not fully disambiguate which construct — that
// is main's job once it regains control — it only answers the yes/no
// question mark-recovery needs (spec.md §4.1 rule 2).
func isTagOpenerFollow(b byte) bool {
	return b == '!' || b == '?' || b == '/' || isNameStart(b)
}
