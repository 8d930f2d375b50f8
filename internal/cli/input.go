package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	ftracker "github.com/lucasjlepore/fit-tracker"
	"github.com/lucasjlepore/fit-tracker/fitimport"
)

// batchFile is the on-disk batch layout. JSON documents parse too.
type batchFile struct {
	Workouts []ftracker.Package `yaml:"workouts"`
}

// parsePackageArg parses "CODE:v1,v2,..." into a package.
func parsePackageArg(arg string) (ftracker.Package, error) {
	code, values, ok := strings.Cut(strings.TrimSpace(arg), ":")
	if !ok || code == "" {
		return ftracker.Package{}, fmt.Errorf("invalid workout %q (expected CODE:v1,v2,...)", arg)
	}

	pkg := ftracker.Package{Code: strings.ToUpper(strings.TrimSpace(code))}
	for _, field := range strings.Split(values, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return ftracker.Package{}, fmt.Errorf("invalid value %q in workout %q: %w", field, arg, err)
		}
		pkg.Data = append(pkg.Data, v)
	}
	return pkg, nil
}

func loadBatchFile(path string) ([]ftracker.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	var batch batchFile
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}
	return batch.Workouts, nil
}

// inputFlags are the package sources shared by summary and export.
type inputFlags struct {
	file     string
	fit      string
	weightKG float64
	heightCM float64
}

func (in inputFlags) collect(app *App, args []string) ([]ftracker.Package, error) {
	var pkgs []ftracker.Package
	if in.file != "" {
		batch, err := loadBatchFile(in.file)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, batch...)
	}
	if in.fit != "" {
		imported, err := importFIT(app, in.fit, in.weightKG, in.heightCM)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, imported...)
	}
	for _, arg := range args {
		pkg, err := parsePackageArg(arg)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no workouts given (pass CODE:v1,v2,... arguments, --file or --fit)")
	}
	return pkgs, nil
}

func importFIT(app *App, path string, weightKG, heightCM float64) ([]ftracker.Package, error) {
	if weightKG == 0 {
		weightKG = app.Config.WeightKG
	}
	if heightCM == 0 {
		heightCM = app.Config.HeightCM
	}
	res, err := fitimport.FromFile(path, fitimport.Options{WeightKG: weightKG, HeightCM: heightCM})
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	for _, s := range res.Skipped {
		app.logger.Warn("fit session skipped", "file", path, "session", s.SessionIndex, "sport", s.Sport, "reason", s.Reason)
	}
	app.logger.Info("fit sessions imported", "file", path, "workouts", len(res.Packages), "skipped", len(res.Skipped))
	return res.Packages, nil
}
