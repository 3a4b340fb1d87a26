package locator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/remod/pkg/locator"
)

func newTestLocator() *locator.Locator {
	return locator.New("#[cfg(test)]", "mod")
}

func TestFind_SingleModule(t *testing.T) {
	content := `pub fn add(a: i32, b: i32) -> i32 {
    a + b
}

#[cfg(test)]
mod tests {
    use super::*;

    #[test]
    fn adds() {
        assert_eq!(add(1, 2), 3);
    }
}
`
	modules := newTestLocator().Find("src/lib.rs", []byte(content))

	require.Len(t, modules, 1)
	mod := modules[0]
	assert.Equal(t, "tests", mod.Name)
	assert.Equal(t, "src/lib.rs", mod.SourcePath)
	assert.Equal(t, "", mod.Indent)
	assert.Equal(t, 4, mod.StartLine)
	assert.Equal(t, 13, mod.EndLine)
	assert.Contains(t, mod.Content, "#[cfg(test)]")
	assert.Contains(t, mod.Content, "fn adds()")
}

func TestFind_ContentIsExactSubstring(t *testing.T) {
	content := "fn a() {}\n\n#[cfg(test)]\nmod tests {\n    #[test]\n    fn t() {}\n}\n"

	modules := newTestLocator().Find("src/lib.rs", []byte(content))

	require.Len(t, modules, 1)
	assert.Contains(t, content, modules[0].Content,
		"span must be an exact substring of the buffer")
	assert.Equal(t, "#[cfg(test)]\nmod tests {\n    #[test]\n    fn t() {}\n}\n",
		modules[0].Content)
}

func TestFind_BlankLineBetweenMarkerAndDeclaration(t *testing.T) {
	content := "#[cfg(test)]\n\n\nmod tests {\n    fn t() {}\n}\n"

	modules := newTestLocator().Find("src/lib.rs", []byte(content))

	require.Len(t, modules, 1)
	assert.Equal(t, "tests", modules[0].Name)
}

func TestFind_MarkerOnFunctionIsIgnored(t *testing.T) {
	// Not every #[cfg(test)] opens a module.
	content := `#[cfg(test)]
fn helper_only_in_tests() {}

#[cfg(test)]
use std::collections::HashMap;
`
	modules := newTestLocator().Find("src/lib.rs", []byte(content))
	assert.Empty(t, modules)
}

func TestFind_IndentedModule(t *testing.T) {
	content := `mod outer {
    #[cfg(test)]
    mod tests {
        fn t() {}
    }
}
`
	modules := newTestLocator().Find("src/lib.rs", []byte(content))

	require.Len(t, modules, 1)
	assert.Equal(t, "    ", modules[0].Indent)
}

func TestFind_BracesInStringLiterals(t *testing.T) {
	content := `#[cfg(test)]
mod tests {
    #[test]
    fn parses() {
        let input = "fn nested() { { { }";
        let escaped = "a\"{b";
        assert!(parse(input).is_err());
    }
}

fn after() {}
`
	modules := newTestLocator().Find("src/lib.rs", []byte(content))

	require.Len(t, modules, 1)
	assert.NotContains(t, modules[0].Content, "fn after")
	assert.Contains(t, modules[0].Content, `"a\"{b"`)
}

func TestFind_NestedModules(t *testing.T) {
	content := `#[cfg(test)]
mod tests {
    mod inner {
        mod deeper {
            fn t() {}
        }
    }
}
`
	modules := newTestLocator().Find("src/lib.rs", []byte(content))

	require.Len(t, modules, 1)
	assert.Equal(t, "tests", modules[0].Name)
	assert.Contains(t, modules[0].Content, "mod deeper")
}

func TestFind_MultipleModules(t *testing.T) {
	content := `#[cfg(test)]
mod tests {
    fn a() {}
}

fn production() {}

#[cfg(test)]
mod integration_tests {
    fn b() {}
}
`
	modules := newTestLocator().Find("src/lib.rs", []byte(content))

	require.Len(t, modules, 2)
	assert.Equal(t, "tests", modules[0].Name)
	assert.Equal(t, "integration_tests", modules[1].Name)
	assert.LessOrEqual(t, modules[0].EndLine, modules[1].StartLine,
		"spans must not overlap")
}

func TestFind_MarkerInsideConsumedSpanNotReMatched(t *testing.T) {
	content := `#[cfg(test)]
mod tests {
    // a nested marker inside the span
    #[cfg(test)]
    mod inner {
        fn t() {}
    }
}
`
	modules := newTestLocator().Find("src/lib.rs", []byte(content))
	require.Len(t, modules, 1)
	assert.Equal(t, "tests", modules[0].Name)
}

func TestFind_UnterminatedModuleSkipped(t *testing.T) {
	content := `#[cfg(test)]
mod tests {
    fn never_closed() {
`
	modules := newTestLocator().Find("src/lib.rs", []byte(content))
	assert.Empty(t, modules)
}

func TestFind_IgnoredMarkerThenValidModule(t *testing.T) {
	content := `#[cfg(test)]
fn not_a_mod() {}

#[cfg(test)]
mod tests {
    fn t() {}
}
`
	modules := newTestLocator().Find("src/lib.rs", []byte(content))
	require.Len(t, modules, 1)
	assert.Equal(t, "tests", modules[0].Name)
}

func TestFind_Deterministic(t *testing.T) {
	content := `#[cfg(test)]
mod tests {
    fn t() {}
}

#[cfg(test)]
mod more_tests {
    fn u() {}
}
`
	loc := newTestLocator()
	first := loc.Find("src/lib.rs", []byte(content))
	second := loc.Find("src/lib.rs", []byte(content))
	assert.Equal(t, first, second)
}

func TestFind_MarkerAtEndOfBuffer(t *testing.T) {
	modules := newTestLocator().Find("src/lib.rs", []byte("#[cfg(test)]\n"))
	assert.Empty(t, modules)
}

func TestFind_EmptyBuffer(t *testing.T) {
	modules := newTestLocator().Find("src/lib.rs", nil)
	assert.Empty(t, modules)
}

func TestFind_NoTrailingNewline(t *testing.T) {
	content := "#[cfg(test)]\nmod tests {\n    fn t() {}\n}"

	modules := newTestLocator().Find("src/lib.rs", []byte(content))

	require.Len(t, modules, 1)
	assert.Equal(t, content, modules[0].Content)
}
