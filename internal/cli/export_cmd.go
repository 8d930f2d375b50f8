package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasjlepore/fit-tracker/export"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		in        inputFlags
		outPath   string
		format    string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "export --out <path> [CODE:v1,v2,...]...",
		Short: "Write workout summaries as a JSON, CSV or parquet report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				return fmt.Errorf("--out is required")
			}
			if !cmd.Flags().Changed("format") {
				format = app.Config.ExportFormat
			}
			if _, err := export.NormalizeFormat(format); err != nil {
				return err
			}

			pkgs, err := in.collect(app, args)
			if err != nil {
				return err
			}
			summaries, sumErr := app.summarize(cmd.ErrOrStderr(), pkgs)
			if sumErr != nil && !errors.Is(sumErr, ErrRejectedWorkouts) {
				return sumErr
			}

			res, err := export.Write(export.Options{
				Path:      outPath,
				Format:    format,
				Overwrite: overwrite,
			}, export.RowsFromSummaries(summaries))
			if err != nil {
				return err
			}
			app.logger.Info("report exported", "path", res.Path, "format", res.Format, "rows", res.RowCount, "run_id", res.RunID)

			fmt.Fprintf(cmd.OutOrStdout(), "Report:  %s\n", res.Path)
			fmt.Fprintf(cmd.OutOrStdout(), "Format:  %s\n", res.Format)
			fmt.Fprintf(cmd.OutOrStdout(), "Rows:    %d\n", res.RowCount)
			fmt.Fprintf(cmd.OutOrStdout(), "Run ID:  %s\n", res.RunID)
			return sumErr
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Report output path")
	cmd.Flags().StringVar(&format, "format", "json", "Report format: json|csv|parquet (default from FTRACKER_EXPORT_FORMAT)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing report file")
	cmd.Flags().StringVar(&in.file, "file", "", "YAML or JSON batch file with a workouts list")
	cmd.Flags().StringVar(&in.fit, "fit", "", "FIT activity file to read sessions from")
	cmd.Flags().Float64Var(&in.weightKG, "weight", 0, "Athlete weight in kg for --fit")
	cmd.Flags().Float64Var(&in.heightCM, "height", 0, "Athlete height in cm for --fit walking sessions")

	return cmd
}
