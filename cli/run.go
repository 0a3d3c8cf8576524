package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlset/scenario"
)

// RunSummary is the JSON payload of a successful run.
type RunSummary struct {
	Name       string  `json:"name"`
	RunToken   string  `json:"run_token"`
	Iterations int     `json:"iterations"`
	BandSize   int     `json:"band_size"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Mean       float64 `json:"mean"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Execute a scenario and report the outcome",
		Long: `Execute one scenario file end to end.

The scenario is loaded and validated, the field is built and seeded, the
evolve harness runs the configured number of iterations and the outcome
is printed: a rendered transcript in text mode, a summary object in JSON
mode. Declared expectations are verified and a miss fails the run.

Example:
  lvlset run testdata/offset-ramp.yaml
  lvlset run --format json front.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runScenario(opts *RootOptions, path string, cmd *cobra.Command) error {
	// Logs go to stderr so JSON on stdout stays machine-readable.
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	sc, err := scenario.Load(path)
	if err != nil {
		// Same split as check: unreadable path is a command error,
		// a readable but invalid document is a scenario failure.
		if errors.Is(err, fs.ErrNotExist) {
			_ = formatter.Error(CodeLoadFailed, err.Error())
			return WrapExitError(ExitCommandError, "failed to read scenario", err)
		}
		_ = formatter.Error(CodeInvalidScenario, err.Error())
		return WrapExitError(ExitFailure, "invalid scenario", err)
	}
	slog.Debug("scenario loaded", "name", sc.Name, "path", path,
		"stepper", sc.Stepper.Name)

	res, err := scenario.Run(sc)
	if err != nil {
		_ = formatter.Error(CodeRunFailed, err.Error())
		return WrapExitError(ExitFailure, "run failed", err)
	}
	slog.Info("run finished", "name", res.Name, "token", res.RunToken,
		"iterations", res.Iterations, "band", res.BandSize)

	if opts.Format == "json" {
		return formatter.Success(RunSummary{
			Name:       res.Name,
			RunToken:   res.RunToken,
			Iterations: res.Iterations,
			BandSize:   res.BandSize,
			Min:        res.Stats.Min,
			Max:        res.Stats.Max,
			Mean:       res.Stats.Mean,
		})
	}

	text, err := scenario.Render(res)
	if err != nil {
		return WrapExitError(ExitFailure, "render failed", err)
	}
	fmt.Fprint(formatter.Writer, text)
	return nil
}
