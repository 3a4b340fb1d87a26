package remod

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/remod/internal/version"
	"github.com/arthur-debert/remod/pkg/config"
	"github.com/arthur-debert/remod/pkg/logging"
	"github.com/arthur-debert/remod/pkg/reorg"
	"github.com/arthur-debert/remod/pkg/ui/display"
)

// defaultRoot is scanned when no directory argument is given.
const defaultRoot = "src"

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		quiet     bool
		format    string
	)

	rootCmd := &cobra.Command{
		Use:     "remod [dir]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := defaultRoot
			if len(args) == 1 {
				root = args[0]
			}

			settings, err := config.Load(root)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			settings.DryRun = dryRun
			settings.Quiet = quiet
			settings.Format = format

			log.Info().
				Str("root", root).
				Bool("dry_run", dryRun).
				Msg("Reorganizing inline test modules")

			report, err := reorg.Run(reorg.Options{
				Root:     root,
				Settings: settings,
			})
			if err != nil {
				return fmt.Errorf(MsgErrReorganize, err)
			}

			if err := display.Render(cmd.OutOrStdout(), report, settings); err != nil {
				return err
			}

			// Per-item failures don't abort the run but the exit code
			// should still reflect them.
			if errs := report.Errors(); len(errs) > 0 {
				return fmt.Errorf(MsgErrPartial, len(errs))
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)
	rootCmd.Flags().StringVar(&format, "format", display.FormatText, MsgFlagFormat)

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [dir]",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := defaultRoot
			if len(args) == 1 {
				root = args[0]
			}

			settings, err := config.Load(root)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			data, err := toml.Marshal(settings)
			if err != nil {
				return err
			}
			cmd.Print(string(data))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("remod version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}
