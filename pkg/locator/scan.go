package locator

// ScanState tracks the string-literal and escape context of a character-level
// scan. The zero value is the starting state (outside any string, no pending
// escape).
//
// Only double-quoted strings are tracked. Single quotes are intentionally
// ignored: treating them as string delimiters would misread Rust lifetime
// tokens ('a, 'static) as unterminated literals.
type ScanState struct {
	inString bool
	escaped  bool
}

// Step consumes one character and returns the next state together with the
// delimiter effect of the character: +1 for an opening brace, -1 for a
// closing brace, 0 otherwise. Braces inside string literals and characters
// consumed by a backslash escape have no effect.
func (s ScanState) Step(ch rune) (ScanState, int) {
	if s.escaped {
		s.escaped = false
		return s, 0
	}

	switch ch {
	case '\\':
		s.escaped = true
		return s, 0
	case '"':
		s.inString = !s.inString
		return s, 0
	}

	if s.inString {
		return s, 0
	}

	switch ch {
	case '{':
		return s, 1
	case '}':
		return s, -1
	}
	return s, 0
}

// InString reports whether the scanner is currently inside a string literal.
func (s ScanState) InString() bool {
	return s.inString
}
