package types

import "time"

// BlockReport records the outcome for a single test module.
type BlockReport struct {
	// Name of the module (usually "tests")
	Name string `json:"name" yaml:"name"`

	// One-based line span in the source file at discovery time
	StartLine int `json:"startLine" yaml:"startLine"`
	EndLine   int `json:"endLine" yaml:"endLine"`

	// Destination the body was (or would be) written to
	DestPath string `json:"destPath" yaml:"destPath"`

	// Moved is false in dry-run mode or when the block failed
	Moved bool `json:"moved" yaml:"moved"`

	// Error message when the block could not be relocated
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// FileReport records the outcome for a single scanned source file.
type FileReport struct {
	Path   string        `json:"path" yaml:"path"`
	Blocks []BlockReport `json:"blocks,omitempty" yaml:"blocks,omitempty"`

	// Error message when the file could not be read at all
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the summary of one reorganize run, consumed by the CLI layer.
type Report struct {
	Root         string       `json:"root" yaml:"root"`
	DryRun       bool         `json:"dryRun" yaml:"dryRun"`
	FilesScanned int          `json:"filesScanned" yaml:"filesScanned"`
	BlocksFound  int          `json:"blocksFound" yaml:"blocksFound"`
	BlocksMoved  int          `json:"blocksMoved" yaml:"blocksMoved"`
	Files        []FileReport `json:"files,omitempty" yaml:"files,omitempty"`
	Timestamp    time.Time    `json:"timestamp" yaml:"timestamp"`
}

// Errors returns the messages of every per-file and per-block failure.
func (r *Report) Errors() []string {
	var msgs []string
	for _, f := range r.Files {
		if f.Error != "" {
			msgs = append(msgs, f.Error)
		}
		for _, b := range f.Blocks {
			if b.Error != "" {
				msgs = append(msgs, b.Error)
			}
		}
	}
	return msgs
}
