// ABOUTME: CLI entry point: command wiring, verbosity, logger bridge
// ABOUTME: Subcommands: chat, models, setup

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ffailog "github.com/ronniebasak/ffai/internal/log"
)

var version = "dev"

// cliLogger bridges the client's injectable logger to the app logger.
type cliLogger struct{}

func (cliLogger) Debugf(format string, args ...any) { ffailog.Debug(format, args...) }
func (cliLogger) Warnf(format string, args ...any)  { ffailog.Warn(format, args...) }

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "ffai",
		Short:         "Stream chat completions from Groq in your terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				ffailog.SetLevel(ffailog.LevelDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newChatCmd())
	root.AddCommand(newModelsCmd())
	root.AddCommand(newSetupCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
