// Package workspace discovers the source files a reorganize run operates on.
package workspace

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/remod/pkg/errors"
	"github.com/arthur-debert/remod/pkg/filesystem"
	"github.com/arthur-debert/remod/pkg/logging"
	"github.com/arthur-debert/remod/pkg/types"
)

// Discover walks root and returns every source file with the configured
// extension, sorted by path. Files whose name ends in the destination
// filename are skipped: those are relocated bodies from a previous run, not
// candidates.
func Discover(root string, settings types.Settings, fs types.FS) ([]string, error) {
	log := logging.GetLogger("workspace")

	if fs == nil {
		fs = filesystem.NewOS()
	}

	info, err := fs.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"source directory %s does not exist", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"%s is not a directory", root)
	}

	var files []string
	if err := walk(fs, root, settings, &files); err != nil {
		return nil, err
	}
	sort.Strings(files)

	log.Debug().
		Str("root", root).
		Int("count", len(files)).
		Msg("Discovered source files")

	return files, nil
}

func walk(fs types.FS, dir string, settings types.Settings, out *[]string) error {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read directory %s", dir)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := walk(fs, path, settings, out); err != nil {
				return err
			}
			continue
		}
		if !strings.HasSuffix(entry.Name(), settings.Extension) {
			continue
		}
		if strings.HasSuffix(entry.Name(), settings.DestFilename) {
			continue
		}
		*out = append(*out, path)
	}
	return nil
}
