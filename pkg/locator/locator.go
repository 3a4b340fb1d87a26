package locator

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/remod/pkg/logging"
	"github.com/arthur-debert/remod/pkg/types"
)

// Locator finds attribute-marked module blocks in source text.
type Locator struct {
	marker string
	decl   *regexp.Regexp
}

// New creates a Locator for the given attribute marker and block keyword,
// e.g. "#[cfg(test)]" and "mod".
func New(marker, keyword string) *Locator {
	return &Locator{
		marker: marker,
		decl:   regexp.MustCompile(`^(\s*)` + regexp.QuoteMeta(keyword) + `\s+(\w+)\s*\{`),
	}
}

// Find scans content for marker-prefixed module blocks and returns a
// descriptor for each complete block found. The scan is deterministic:
// calling Find twice on the same content yields the same result.
//
// A marker whose following non-blank line is not a block declaration is
// skipped; the marker may annotate a function or a single item instead of a
// module. A declaration whose opening brace never closes before end of
// content is malformed and skipped without emitting a descriptor.
func (l *Locator) Find(path string, content []byte) []types.TestModule {
	log := logging.GetLogger("locator")

	lines := splitLines(string(content))

	var modules []types.TestModule
	for i := 0; i < len(lines); i++ {
		if !strings.Contains(lines[i], l.marker) {
			continue
		}

		// Look ahead past blank lines for the declaration.
		j := i + 1
		for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}
		if j >= len(lines) {
			continue
		}

		m := l.decl.FindStringSubmatch(lines[j])
		if m == nil {
			continue
		}
		indent, name := m[1], m[2]

		end, ok := l.findClose(lines, j)
		if !ok {
			log.Warn().
				Str("file", path).
				Int("line", i+1).
				Str("module", name).
				Msg("Module block never closes, skipping")
			continue
		}

		modules = append(modules, types.TestModule{
			SourcePath: path,
			Name:       name,
			StartLine:  i,
			EndLine:    end,
			Content:    strings.Join(lines[i:end], ""),
			Indent:     indent,
		})

		// Resume strictly after the emitted span so consumed text is
		// never re-matched.
		i = end - 1
	}

	return modules
}

// findClose runs the brace counter from the declaration line and returns the
// exclusive end line of the block, or false if the block never closes.
func (l *Locator) findClose(lines []string, open int) (int, bool) {
	var state ScanState
	depth := 0
	opened := false

	for k := open; k < len(lines); k++ {
		for _, ch := range lines[k] {
			var d int
			state, d = state.Step(ch)
			switch {
			case d > 0:
				depth++
				opened = true
			case d < 0:
				depth--
				if opened && depth == 0 {
					return k + 1, true
				}
			}
		}
	}
	return 0, false
}

// splitLines splits text into lines, each retaining its trailing newline so
// that joining the pieces reproduces the input exactly.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
