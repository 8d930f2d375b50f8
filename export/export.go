// Package export writes workout summaries as JSON, CSV or parquet reports.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	ftracker "github.com/lucasjlepore/fit-tracker"
)

var csvHeader = []string{
	"code", "kind", "action", "duration_h", "weight_kg",
	"distance_km", "mean_speed_kmh", "calories_kcal", "message",
}

// RowsFromSummaries flattens the successful summaries, keeping their order.
func RowsFromSummaries(summaries ftracker.Summaries) []Row {
	rows := make([]Row, 0, len(summaries))
	for _, s := range summaries {
		if !s.OK() {
			continue
		}
		rows = append(rows, Row{
			Code:         s.Record.Kind.Code(),
			Kind:         s.Record.Kind.String(),
			Action:       s.Record.Action,
			DurationH:    s.Record.Duration,
			WeightKG:     s.Record.Weight,
			DistanceKM:   s.Metrics.DistanceKM,
			MeanSpeedKMH: s.Metrics.MeanSpeedKMH,
			CaloriesKcal: s.Metrics.CaloriesKcal,
			Message:      s.Message,
		})
	}
	return rows
}

// NormalizeFormat lower-cases format and defaults it to json.
func NormalizeFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		f = FormatJSON
	}
	switch f {
	case FormatJSON, FormatCSV, FormatParquet:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected json|csv|parquet)", format)
	}
}

// Write renders rows in opts.Format and writes them to opts.Path.
func Write(opts Options, rows []Row) (*Result, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return nil, fmt.Errorf("output path is required")
	}
	format, err := NormalizeFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	if err := ensureWritable(opts.Path, opts.Overwrite); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	data, err := marshal(format, runID, time.Now().UTC(), rows)
	if err != nil {
		return nil, fmt.Errorf("marshal %s report: %w", format, err)
	}
	if err := os.WriteFile(opts.Path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s report: %w", format, err)
	}

	return &Result{
		Path:     opts.Path,
		Format:   format,
		RowCount: len(rows),
		RunID:    runID,
		Bytes:    len(data),
	}, nil
}

// Marshal renders rows in the given format without touching the filesystem.
func Marshal(format string, rows []Row) ([]byte, error) {
	f, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}
	return marshal(f, uuid.NewString(), time.Now().UTC(), rows)
}

func marshal(format, runID string, generatedAt time.Time, rows []Row) ([]byte, error) {
	switch format {
	case FormatCSV:
		return marshalCSV(rows)
	case FormatParquet:
		return marshalParquet(rows)
	default:
		return marshalJSON(Report{
			FormatVersion: ReportFormatVersion,
			RunID:         runID,
			GeneratedAt:   generatedAt,
			RowCount:      len(rows),
			Rows:          rows,
		})
	}
}

func ensureWritable(path string, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	_, err := os.Stat(path)
	switch {
	case err == nil && !overwrite:
		return fmt.Errorf("output file already exists: %s (set overwrite to allow)", path)
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("stat output file: %w", err)
	}
	return nil
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalCSV(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.Code,
			r.Kind,
			strconv.Itoa(r.Action),
			formatFloat(r.DurationH),
			formatFloat(r.WeightKG),
			formatFloat(r.DistanceKM),
			formatFloat(r.MeanSpeedKMH),
			formatFloat(r.CaloriesKcal),
			r.Message,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
