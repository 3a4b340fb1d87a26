package main

import (
	"fmt"
	"os"

	remod "github.com/arthur-debert/remod/cmd/remod"
	"github.com/arthur-debert/remod/pkg/ui/display"
)

func main() {
	rootCmd := remod.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		r := display.NewRenderer(display.UseColor())
		fmt.Fprintln(os.Stderr, r.Error(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
