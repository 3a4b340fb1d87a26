package display_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/remod/pkg/types"
	"github.com/arthur-debert/remod/pkg/ui/display"
)

func sampleReport() *types.Report {
	return &types.Report{
		Root:         "src",
		FilesScanned: 3,
		BlocksFound:  2,
		BlocksMoved:  1,
		Timestamp:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Files: []types.FileReport{
			{
				Path: "src/lib.rs",
				Blocks: []types.BlockReport{
					{Name: "tests", StartLine: 3, EndLine: 9, DestPath: "src/lib/tests.rs", Moved: true},
				},
			},
			{
				Path: "src/parser.rs",
				Blocks: []types.BlockReport{
					{Name: "tests", StartLine: 1, EndLine: 4, DestPath: "src/parser/tests.rs", Error: "[FILE_WRITE] failed to write src/parser/tests.rs: disk full"},
				},
			},
		},
	}
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	err := display.Render(&buf, sampleReport(), types.Settings{Format: display.FormatText})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Scanned 3 source file(s) under src")
	assert.Contains(t, out, "src/lib.rs")
	assert.Contains(t, out, "tests (lines 3-9) moved to src/lib/tests.rs")
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "Summary: 2 module(s) found, 1 relocated")
	assert.Contains(t, out, "1 error(s)")
}

func TestRender_TextDryRun(t *testing.T) {
	report := sampleReport()
	report.DryRun = true

	var buf bytes.Buffer
	err := display.Render(&buf, report, types.Settings{Format: display.FormatText})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "would move to src/lib/tests.rs")
	assert.Contains(t, buf.String(), "(dry run - no files were modified)")
}

func TestRender_TextQuiet(t *testing.T) {
	var buf bytes.Buffer
	err := display.Render(&buf, sampleReport(), types.Settings{Format: display.FormatText, Quiet: true})

	require.NoError(t, err)
	out := buf.String()
	assert.NotContains(t, out, "src/lib.rs")
	assert.Contains(t, out, "Summary: 2 module(s) found, 1 relocated")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := display.Render(&buf, sampleReport(), types.Settings{Format: display.FormatJSON})
	require.NoError(t, err)

	var decoded types.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded.FilesScanned)
	assert.Equal(t, "src/lib.rs", decoded.Files[0].Path)
	assert.True(t, decoded.Files[0].Blocks[0].Moved)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := display.Render(&buf, sampleReport(), types.Settings{Format: display.FormatYAML})
	require.NoError(t, err)

	var decoded types.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.BlocksFound)
	assert.Equal(t, "src/parser/tests.rs", decoded.Files[1].Blocks[0].DestPath)
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := display.Render(&buf, sampleReport(), types.Settings{Format: "xml"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestRenderer_PlainHasNoEscapeCodes(t *testing.T) {
	r := display.NewRenderer(false)
	assert.Equal(t, "hello", r.Header("hello"))
	assert.Equal(t, "hello", r.Error("hello"))
	assert.False(t, strings.Contains(r.Success("ok"), "\x1b"))
}
