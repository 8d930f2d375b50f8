package export

import "time"

// Formats accepted by Write and Marshal.
const (
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// ReportFormatVersion tags the JSON report layout.
const ReportFormatVersion = "workout_report_v1"

// Options configures a report export.
type Options struct {
	Path      string
	Format    string // json|csv|parquet
	Overwrite bool
}

// Result describes a written report.
type Result struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	RowCount int    `json:"row_count"`
	RunID    string `json:"run_id"`
	Bytes    int    `json:"bytes"`
}

// Row is one summarized workout.
type Row struct {
	Code         string  `json:"code"`
	Kind         string  `json:"kind"`
	Action       int     `json:"action"`
	DurationH    float64 `json:"duration_h"`
	WeightKG     float64 `json:"weight_kg"`
	DistanceKM   float64 `json:"distance_km"`
	MeanSpeedKMH float64 `json:"mean_speed_kmh"`
	CaloriesKcal float64 `json:"calories_kcal"`
	Message      string  `json:"message"`
}

// Report is the JSON export document.
type Report struct {
	FormatVersion string    `json:"format_version"`
	RunID         string    `json:"run_id"`
	GeneratedAt   time.Time `json:"generated_at"`
	RowCount      int       `json:"row_count"`
	Rows          []Row     `json:"rows"`
}
