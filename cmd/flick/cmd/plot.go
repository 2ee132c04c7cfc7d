package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/flick/cmd/flick/internal/plot"
	"github.com/go-drift/flick/pkg/scenario"
)

func newPlotCmd(flags *globalFlags) *cobra.Command {
	var (
		output string
		width  int
		height int
	)
	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Render a scenario's offset timeline to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve()
			if err != nil {
				return err
			}
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])) + ".png"
			}
			result := scenario.Run(s, cfg.Physics)
			if err := plot.WriteFile(output, result.Timeline, plot.Options{Width: width, Height: height, Title: result.Name}); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d samples)\n", output, len(result.Timeline))
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default: FILE with .png extension)")
	cmd.Flags().IntVar(&width, "width", 800, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 480, "image height in pixels")
	return cmd
}
