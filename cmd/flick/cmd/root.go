// Package cmd implements the flick CLI commands.
//
// The command tree is a cobra root with one file per subcommand (run, plot,
// demo, version). Global flags select the configuration directory and
// verbose error reporting.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/flick/cmd/flick/internal/config"
	"github.com/go-drift/flick/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type globalFlags struct {
	configDir string
	verbose   bool
}

// NewRootCmd builds the flick command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "flick",
		Short: "Kinetic-scroll scenarios, plots, and a terminal demo",
		Long: `flick replays scripted pointer gestures against a kinetic-scroll
viewport, checks the resulting offsets, plots offset over time, and
runs an interactive terminal demo driven by real mouse input.

Use "flick <command> --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			errors.SetHandler(&errors.LogHandler{Verbose: flags.verbose})
		},
	}
	root.PersistentFlags().StringVar(&flags.configDir, "config", ".", "directory containing "+config.FileName)
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "report errors with kinds and stack traces")

	root.AddCommand(newRunCmd(flags))
	root.AddCommand(newPlotCmd(flags))
	root.AddCommand(newDemoCmd(flags))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (f *globalFlags) resolve() (*config.Resolved, error) {
	return config.Resolve(f.configDir)
}
