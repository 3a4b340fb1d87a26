package relocator

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/remod/pkg/errors"
	"github.com/arthur-debert/remod/pkg/filesystem"
	"github.com/arthur-debert/remod/pkg/locator"
	"github.com/arthur-debert/remod/pkg/logging"
	"github.com/arthur-debert/remod/pkg/types"
)

// Options contains options for relocating one module block.
type Options struct {
	// Module is the descriptor produced by the locator
	Module types.TestModule
	// Settings carries the run configuration
	Settings types.Settings
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// Result describes the outcome of a relocation.
type Result struct {
	// DestPath is the file the body was (or would be) written to
	DestPath string
	// Body is the dedented, path-adjusted text written to DestPath
	Body string
	// Moved is false in dry-run mode
	Moved bool
	// Replaced is false when the source no longer contained the original
	// span, which happens on re-runs and is treated as a benign no-op
	Replaced bool
}

// Relocate extracts the module body, writes it to the destination derived
// from the source file, and replaces the original span in the source with a
// short mod reference. In dry-run mode it computes the destination and body
// without writing anything.
//
// The source file is re-read immediately before the replacement so that
// earlier relocations in the same file are reflected. If the original span
// is no longer present the replacement is skipped, keeping re-runs
// idempotent.
func Relocate(opts Options) (*Result, error) {
	log := logging.GetLogger("relocator")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	mod := opts.Module
	destDir := mod.DestDir()
	destPath := filepath.Join(destDir, opts.Settings.DestFilename)

	body, ok := extractBody(mod.Content)
	if !ok {
		return nil, errors.Newf(errors.ErrBlockMalformed,
			"no matching closing brace in module %q of %s", mod.Name, mod.SourcePath)
	}

	body = dedent(body, mod.Indent)

	// The body moves one directory level deeper than its original file, so
	// relative include paths need a parent segment.
	if filepath.Dir(mod.SourcePath) != destDir {
		body = rewriteIncludePaths(body, opts.Settings.IncludeMacros)
	}

	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}

	result := &Result{DestPath: destPath, Body: body}

	if opts.Settings.DryRun {
		log.Info().
			Str("file", mod.SourcePath).
			Str("module", mod.Name).
			Str("dest", destPath).
			Msg("Dry run, skipping writes")
		return result, nil
	}

	if err := fs.MkdirAll(destDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create destination directory %s", destDir)
	}

	// Overwrite semantics: re-running produces the same file.
	if err := fs.WriteFile(destPath, []byte(body), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write %s", destPath)
	}
	result.Moved = true

	replaced, err := replaceWithStub(fs, mod, opts.Settings)
	if err != nil {
		return nil, err
	}
	result.Replaced = replaced
	if !replaced {
		log.Debug().
			Str("file", mod.SourcePath).
			Str("module", mod.Name).
			Msg("Original span no longer present, replacement skipped")
	}

	log.Info().
		Str("file", mod.SourcePath).
		Str("module", mod.Name).
		Str("dest", destPath).
		Msg("Module relocated")

	return result, nil
}

// replaceWithStub swaps the original module span for a marker plus forward
// reference in the current contents of the source file. Returns false if the
// span was not found, which is not an error.
func replaceWithStub(fs types.FS, mod types.TestModule, settings types.Settings) (bool, error) {
	current, err := fs.ReadFile(mod.SourcePath)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileRead,
			"failed to re-read %s", mod.SourcePath)
	}

	stub := mod.Indent + settings.Marker + "\n" +
		mod.Indent + settings.Keyword + " " + mod.Name + ";\n"

	content := string(current)
	if !strings.Contains(content, mod.Content) {
		return false, nil
	}
	content = strings.Replace(content, mod.Content, stub, 1)

	if err := fs.WriteFile(mod.SourcePath, []byte(content), 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite,
			"failed to update %s", mod.SourcePath)
	}
	return true, nil
}

// extractBody returns the text strictly between the declaration's opening
// brace and its matching closer, using the same string- and escape-aware
// counter as the locator.
func extractBody(content string) (string, bool) {
	var state locator.ScanState
	depth := 0
	start := -1

	for i, ch := range content {
		var d int
		state, d = state.Step(ch)
		switch {
		case d > 0:
			depth++
			if start < 0 {
				start = i + 1
			}
		case d < 0:
			depth--
			if start >= 0 && depth == 0 {
				return content[start:i], true
			}
		}
	}
	return "", false
}

// dedent trims blank edge lines and strips the declaration's indentation
// prefix from every body line that carries it. Lines with unexpected
// indentation are left unchanged rather than failing.
func dedent(body, indent string) string {
	lines := strings.Split(body, "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if indent != "" {
		for i, line := range lines {
			if strings.TrimSpace(line) != "" && strings.HasPrefix(line, indent) {
				lines[i] = line[len(indent):]
			}
		}
	}

	return strings.Join(lines, "\n")
}
