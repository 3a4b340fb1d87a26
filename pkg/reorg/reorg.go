// Package reorg orchestrates a reorganize run: discover source files, locate
// inline test modules, and relocate each one.
package reorg

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/remod/pkg/errors"
	"github.com/arthur-debert/remod/pkg/filesystem"
	"github.com/arthur-debert/remod/pkg/locator"
	"github.com/arthur-debert/remod/pkg/logging"
	"github.com/arthur-debert/remod/pkg/relocator"
	"github.com/arthur-debert/remod/pkg/types"
	"github.com/arthur-debert/remod/pkg/workspace"
)

// Options contains options for the Run operation
type Options struct {
	// Root is the directory scanned for source files
	Root string
	// Settings carries the run configuration
	Settings types.Settings
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// Run scans every source file under opts.Root and relocates the inline test
// modules it finds. Per-file and per-block failures are recorded in the
// report and do not abort the run; only a failure to discover files at all
// returns an error.
//
// Blocks within one file are processed in order, and each relocation re-reads
// the file before replacing its span, so several modules in one file are
// safe. Two blocks mapping to the same destination file are a collision: the
// first wins and the second is reported as an error rather than silently
// overwritten.
func Run(opts Options) (*types.Report, error) {
	log := logging.GetLogger("reorg")
	done := logging.LogOperationStart(log, "reorganize")
	defer done()

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	loc := locator.New(opts.Settings.Marker, opts.Settings.Keyword)

	files, err := workspace.Discover(opts.Root, opts.Settings, fs)
	if err != nil {
		return nil, err
	}

	report := &types.Report{
		Root:      opts.Root,
		DryRun:    opts.Settings.DryRun,
		Timestamp: time.Now(),
	}

	// destination -> source file that claimed it
	claimed := make(map[string]string)

	for _, path := range files {
		content, err := fs.ReadFile(path)
		if err != nil {
			wrapped := errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
			log.Error().Err(wrapped).Str("file", path).Msg("Skipping unreadable file")
			report.Files = append(report.Files, types.FileReport{
				Path:  path,
				Error: wrapped.Error(),
			})
			continue
		}
		report.FilesScanned++

		modules := loc.Find(path, content)
		if len(modules) == 0 {
			continue
		}

		fileReport := types.FileReport{Path: path}
		for _, mod := range modules {
			report.BlocksFound++
			fileReport.Blocks = append(fileReport.Blocks, relocate(mod, opts, fs, claimed, report))
		}
		report.Files = append(report.Files, fileReport)
	}

	return report, nil
}

func relocate(mod types.TestModule, opts Options, fs types.FS, claimed map[string]string, report *types.Report) types.BlockReport {
	log := logging.GetLogger("reorg")

	dest := filepath.Join(mod.DestDir(), opts.Settings.DestFilename)
	block := types.BlockReport{
		Name:      mod.Name,
		StartLine: mod.StartLine + 1,
		EndLine:   mod.EndLine,
		DestPath:  dest,
	}

	if prev, ok := claimed[dest]; ok {
		err := errors.Newf(errors.ErrDestCollision,
			"destination %s already written for %s", dest, prev)
		log.Error().Err(err).Str("file", mod.SourcePath).Msg("Destination collision")
		block.Error = err.Error()
		return block
	}

	result, err := relocator.Relocate(relocator.Options{
		Module:     mod,
		Settings:   opts.Settings,
		FileSystem: fs,
	})
	if err != nil {
		log.Error().Err(err).
			Str("file", mod.SourcePath).
			Str("module", mod.Name).
			Msg("Failed to relocate module")
		block.Error = err.Error()
		return block
	}

	claimed[dest] = mod.SourcePath
	block.Moved = result.Moved
	report.BlocksMoved++
	return block
}
