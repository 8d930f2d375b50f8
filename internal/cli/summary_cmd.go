package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	ftracker "github.com/lucasjlepore/fit-tracker"
)

// demoPackages are the sample sensor readings used by the demo command.
var demoPackages = []ftracker.Package{
	{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Data: []float64{15000, 1, 75}},
	{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
}

func newSummaryCmd(app *App) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "summary [CODE:v1,v2,...]...",
		Short: "Print a summary line for each workout",
		Example: `  ftracker summary RUN:15000,1,75 WLK:9000,1,75,180
  ftracker summary SWM:720,1,80,25,40
  ftracker summary --file workouts.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pkgs, err := in.collect(app, args)
			if err != nil {
				return err
			}
			return app.printSummaries(cmd, pkgs)
		},
	}

	cmd.Flags().StringVar(&in.file, "file", "", "YAML or JSON batch file with a workouts list")
	cmd.Flags().StringVar(&in.fit, "fit", "", "FIT activity file to read sessions from")
	cmd.Flags().Float64Var(&in.weightKG, "weight", 0, "Athlete weight in kg for --fit (default from FTRACKER_WEIGHT_KG)")
	cmd.Flags().Float64Var(&in.heightCM, "height", 0, "Athlete height in cm for --fit walking sessions (default from FTRACKER_HEIGHT_CM)")

	return cmd
}

func newDemoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Summarize the built-in sample swim, run and walk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.printSummaries(cmd, demoPackages)
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	var weightKG, heightCM float64

	cmd := &cobra.Command{
		Use:   "import <file.fit>",
		Short: "Summarize the sessions of a FIT activity file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkgs, err := importFIT(app, args[0], weightKG, heightCM)
			if err != nil {
				return err
			}
			if len(pkgs) == 0 {
				return fmt.Errorf("no running, walking or pool swimming sessions in %s", args[0])
			}
			return app.printSummaries(cmd, pkgs)
		},
	}

	cmd.Flags().Float64Var(&weightKG, "weight", 0, "Athlete weight in kg (default from FTRACKER_WEIGHT_KG)")
	cmd.Flags().Float64Var(&heightCM, "height", 0, "Athlete height in cm, required for walking sessions (default from FTRACKER_HEIGHT_CM)")

	return cmd
}

func (app *App) printSummaries(cmd *cobra.Command, pkgs []ftracker.Package) error {
	out, err := app.summarize(cmd.ErrOrStderr(), pkgs)
	for _, line := range out.Messages() {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return err
}
