package types

// Settings carries the run configuration for a reorganize operation. It is
// passed explicitly into each operation rather than held as process state.
type Settings struct {
	// Marker is the attribute line that precedes a relocatable module.
	Marker string `koanf:"marker" toml:"marker"`

	// Keyword is the block keyword opening a relocatable declaration.
	Keyword string `koanf:"keyword" toml:"keyword"`

	// DestFilename is the filename each relocated body is written to.
	DestFilename string `koanf:"dest_filename" toml:"dest_filename"`

	// IncludeMacros are the call-like tokens whose quoted path argument is
	// adjusted when a body moves one directory deeper.
	IncludeMacros []string `koanf:"include_macros" toml:"include_macros"`

	// Extension selects the source files to scan.
	Extension string `koanf:"extension" toml:"extension"`

	// DryRun reports what would change without writing anything.
	DryRun bool `koanf:"-" toml:"-"`

	// Quiet suppresses per-file progress output.
	Quiet bool `koanf:"-" toml:"-"`

	// Format selects the report rendering: text, json or yaml.
	Format string `koanf:"-" toml:"-"`
}
