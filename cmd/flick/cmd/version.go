package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/flick/pkg/scenario"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "flick version %s (built %s), scenario format %s\n",
				Version, BuildTime, scenario.SupportedMajor)
			return err
		},
	}
}
