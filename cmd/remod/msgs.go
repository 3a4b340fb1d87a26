package remod

// Short messages (one-liners)
const (
	MsgRootShort = "Move inline Rust test modules to separate files"
	MsgRootLong = `remod finds #[cfg(test)] test modules written inline in Rust source
files and moves each one to a tests.rs file in a subdirectory named after the
source file, leaving a "mod tests;" reference behind.

By default remod scans the src directory; pass a different directory as the
first argument. Use --dry-run to preview the changes without modifying
anything.`
	MsgRootExample = `  # Preview what would move under src/
  remod --dry-run

  # Relocate test modules under crates/core/src
  remod crates/core/src

  # Machine-readable report
  remod --format json src`

	MsgConfigShort = "Print the effective configuration as TOML"
	MsgConfigLong = `Print the configuration a run would use, after applying the built-in
defaults, the project .remod.toml and REMOD_* environment variables.`

	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without modifying any file"
	MsgFlagQuiet   = "Only print the summary line"
	MsgFlagFormat  = "Output format: text, json or yaml"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrReorganize = "failed to reorganize tests: %w"
	MsgErrPartial    = "%d item(s) could not be relocated"
)
