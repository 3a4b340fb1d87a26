package types

import (
	"path/filepath"
	"strings"
)

// TestModule describes one inline #[cfg(test)] module found in a source file.
//
// Content is the verbatim text of the full span, attribute line through the
// matching closing brace. It is used both for body extraction and for the
// exact-match replacement in the source file, so any mutation of the file
// invalidates the descriptor.
type TestModule struct {
	// SourcePath is the file the module was found in.
	SourcePath string

	// Name is the identifier after the mod keyword. Unique only within its
	// enclosing scope; two modules in one file may share a name.
	Name string

	// StartLine and EndLine delimit the span as a half-open, zero-based
	// line range [StartLine, EndLine).
	StartLine int
	EndLine   int

	// Content is the exact text of the span at discovery time.
	Content string

	// Indent is the leading whitespace of the mod declaration line. Body
	// lines carrying this exact prefix have it stripped on extraction.
	Indent string
}

// DestDir returns the directory the module body is relocated into, derived
// from the source file: src/foo.rs maps to src/foo.
func (m TestModule) DestDir() string {
	base := filepath.Base(m.SourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(m.SourcePath), stem)
}
