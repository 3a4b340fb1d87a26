// Package display renders a reorganize report for the terminal. The text
// format is the default; --format json and --format yaml emit the report as
// structured data for scripting.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/remod/pkg/errors"
	"github.com/arthur-debert/remod/pkg/types"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// Format names accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Render writes the report to w in the format named by settings.Format.
func Render(w io.Writer, report *types.Report, settings types.Settings) error {
	switch settings.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode report as JSON")
		}
		return nil
	case FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode report as YAML")
		}
		_, err = w.Write(data)
		return err
	case FormatText, "":
		return renderText(w, report, settings)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown output format %q", settings.Format)
	}
}

// UseColor reports whether styled output should be colored: only when
// stdout is a terminal and NO_COLOR is unset.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func renderText(w io.Writer, report *types.Report, settings types.Settings) error {
	r := NewRenderer(UseColor())

	if !settings.Quiet {
		fmt.Fprintln(w, r.Header(fmt.Sprintf("Scanned %d source file(s) under %s",
			report.FilesScanned, report.Root)))

		for _, file := range report.Files {
			if file.Error != "" {
				fmt.Fprintf(w, "%s\n  %s\n", r.Path(file.Path), r.Error(file.Error))
				continue
			}
			if len(file.Blocks) == 0 {
				continue
			}
			fmt.Fprintln(w, r.Path(file.Path))
			for _, block := range file.Blocks {
				if block.Error != "" {
					fmt.Fprintf(w, "  %s %s\n", r.Error("✗"), block.Error)
					continue
				}
				verb := "moved to"
				if report.DryRun {
					verb = "would move to"
				}
				fmt.Fprintf(w, "  %s %s (lines %d-%d) %s %s\n",
					r.Success("✓"), block.Name, block.StartLine, block.EndLine,
					verb, r.Path(block.DestPath))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, r.Header(fmt.Sprintf("Summary: %d module(s) found, %d relocated",
		report.BlocksFound, report.BlocksMoved)))
	if errs := report.Errors(); len(errs) > 0 {
		fmt.Fprintln(w, r.Error(fmt.Sprintf("%d error(s)", len(errs))))
	}
	if report.DryRun {
		fmt.Fprintln(w, r.Muted("(dry run - no files were modified)"))
	}
	return nil
}
