package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/go-drift/flick/pkg/errors"
	"github.com/go-drift/flick/pkg/scenario"
	"github.com/go-drift/flick/pkg/widgets"
)

var (
	stylePass  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	styleFail  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true)
	styleName  = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	styleBox   = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475a")).
			Padding(0, 1)
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE...",
		Short: "Run scenario scripts and report failed expectations",
		Long: `Run replays each scenario script on a fake clock and checks its
expectations. The command fails if any script cannot be parsed or any
expectation does not hold.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve()
			if err != nil {
				return err
			}
			return runScenarios(cmd.OutOrStdout(), args, cfg.Physics)
		},
	}
}

func runScenarios(w io.Writer, paths []string, physics widgets.Physics) error {
	var failed int
	for _, path := range paths {
		s, err := scenario.Load(path)
		if err != nil {
			errors.Report(asDriftError(err))
			fmt.Fprintln(w, styleFail.Render("ERROR")+" "+styleName.Render(path))
			failed++
			continue
		}
		result := scenario.Run(s, physics)
		fmt.Fprintln(w, renderResult(result))
		if !result.Passed() {
			failed++
		}
	}

	summary := fmt.Sprintf("%d passed, %d failed", len(paths)-failed, failed)
	if failed > 0 {
		fmt.Fprintln(w, styleFail.Render(summary))
		return fmt.Errorf("%d of %d scenario(s) failed", failed, len(paths))
	}
	fmt.Fprintln(w, stylePass.Render(summary))
	return nil
}

func renderResult(r *scenario.Result) string {
	final := r.Timeline.Final()
	header := fmt.Sprintf("%s %s %s",
		stylePass.Render("PASS"),
		styleName.Render(r.Name),
		styleMuted.Render(fmt.Sprintf("(%d steps, %v, rest %.1f,%.1f)", r.Steps, r.Timeline.Duration(), final.Offset.X, final.Offset.Y)),
	)
	if r.Passed() {
		return header
	}

	header = fmt.Sprintf("%s %s", styleFail.Render("FAIL"), styleName.Render(r.Name))
	lines := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		lines[i] = f.Error()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, styleBox.Render(strings.Join(lines, "\n")))
}

func asDriftError(err error) *errors.DriftError {
	var de *errors.DriftError
	if stderrors.As(err, &de) {
		return de
	}
	return &errors.DriftError{Op: "flick.run", Kind: errors.KindUnknown, Err: err}
}
