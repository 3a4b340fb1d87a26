package relocator

import (
	"regexp"
	"strings"
)

// rewriteIncludePaths prefixes a parent-directory segment to every relative
// path passed to one of the include macros, reflecting that the body now
// lives one directory deeper than the file it came from. Absolute paths and
// paths that already climb out of the directory are left alone, as is any
// argument the pattern cannot match unambiguously.
func rewriteIncludePaths(body string, macros []string) string {
	re := includePattern(macros)
	if re == nil {
		return body
	}

	return re.ReplaceAllStringFunc(body, func(call string) string {
		parts := re.FindStringSubmatch(call)
		if parts == nil {
			return call
		}
		macro := parts[1]
		quote, path := `"`, parts[2]
		if parts[2] == "" {
			quote, path = `'`, parts[3]
		}

		if strings.HasPrefix(path, "../") || strings.HasPrefix(path, "/") {
			return call
		}
		return macro + "(" + quote + "../" + path + quote + ")"
	})
}

// includePattern matches a macro call with a single quoted literal path
// argument, e.g. include_str!("fixture.txt"). Mixed or unusual quoting does
// not match and the occurrence is left as is.
func includePattern(macros []string) *regexp.Regexp {
	if len(macros) == 0 {
		return nil
	}
	quoted := make([]string, len(macros))
	for i, m := range macros {
		quoted[i] = regexp.QuoteMeta(m)
	}
	return regexp.MustCompile(
		`(` + strings.Join(quoted, "|") + `)\((?:"([^"']+)"|'([^"']+)')\)`)
}
