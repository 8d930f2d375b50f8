package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	ftracker "github.com/lucasjlepore/fit-tracker"
	"github.com/lucasjlepore/fit-tracker/internal/config"
	"github.com/lucasjlepore/fit-tracker/internal/logging"
)

// ErrRejectedWorkouts is returned when at least one package of a batch failed.
var ErrRejectedWorkouts = errors.New("workout packages rejected")

// App holds configuration and the per-invocation processing state.
type App struct {
	Config config.Config

	logLevel    string
	logFormat   string
	metricsFile string

	logger    *slog.Logger
	registry  *prometheus.Registry
	processor *ftracker.Processor
}

// NewApp returns an App seeded with cfg.
func NewApp(cfg config.Config) *App {
	return &App{Config: cfg}
}

// NewRootCmd creates the top-level "ftracker" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ftracker",
		Short:         "Workout distance, speed and calorie calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&app.logLevel, "log-level", app.Config.LogLevel, "Log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&app.logFormat, "log-format", app.Config.LogFormat, "Log format: text|json")
	root.PersistentFlags().StringVar(&app.metricsFile, "metrics-file", "", "Write processing counters to this file in Prometheus text format")

	root.AddCommand(
		newSummaryCmd(app),
		newDemoCmd(app),
		newImportCmd(app),
		newExportCmd(app),
	)

	return root
}

func (app *App) setup(stderr io.Writer) error {
	logger, err := logging.New(stderr, app.logLevel, app.logFormat)
	if err != nil {
		return err
	}
	app.logger = logger
	app.registry = prometheus.NewRegistry()
	metrics, err := ftracker.NewProcessorMetrics(app.registry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	app.processor = ftracker.NewProcessor(logger, metrics)
	return nil
}

// summarize runs the batch, reports rejected packages on stderr and flushes
// metrics. It returns ErrRejectedWorkouts if any package failed.
func (app *App) summarize(stderr io.Writer, pkgs []ftracker.Package) (ftracker.Summaries, error) {
	out := app.processor.Summarize(pkgs)

	rejected := 0
	for i, s := range out {
		if s.OK() {
			continue
		}
		rejected++
		fmt.Fprintf(stderr, "workout %d (%s): %v\n", i+1, s.Package.Code, s.Err)
	}

	if err := app.writeMetrics(); err != nil {
		return out, err
	}
	if rejected > 0 {
		return out, fmt.Errorf("%d of %d %w", rejected, len(out), ErrRejectedWorkouts)
	}
	return out, nil
}

func (app *App) writeMetrics() error {
	if app.metricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(app.metricsFile, app.registry); err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}
	app.logger.Debug("metrics written", "path", app.metricsFile)
	return nil
}
