package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/go-drift/flick/cmd/flick/internal/demo"
)

func newDemoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Scroll a long document in the terminal with the mouse",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := flags.resolve()
			if err != nil {
				return err
			}
			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			d, err := demo.New(screen, demo.Config{
				Lines:   cfg.DemoLines,
				Frame:   cfg.DemoFrame,
				Physics: cfg.Physics,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return d.Run(ctx)
		},
	}
}
