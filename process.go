package ftracker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Summary is the outcome of one package. Err is set when the package was
// rejected; Record, Metrics and Message are then zero.
type Summary struct {
	Package Package
	Record  Record
	Metrics Metrics
	Message string
	Err     error
}

// OK reports whether the package was summarized.
func (s Summary) OK() bool {
	return s.Err == nil
}

// Summaries is the ordered result of a batch.
type Summaries []Summary

// Err joins the errors of every rejected package, or returns nil.
func (ss Summaries) Err() error {
	var errs []error
	for i, s := range ss {
		if s.Err != nil {
			errs = append(errs, fmt.Errorf("package %d (%s): %w", i, s.Package.Code, s.Err))
		}
	}
	return errors.Join(errs...)
}

// Messages returns the rendered lines of the summarized packages.
func (ss Summaries) Messages() []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s.OK() {
			out = append(out, s.Message)
		}
	}
	return out
}

// Processor turns sensor packages into workout summaries.
type Processor struct {
	logger  *slog.Logger
	metrics *ProcessorMetrics
}

// NewProcessor returns a Processor. A nil logger discards output and nil
// metrics disables counting.
func NewProcessor(logger *slog.Logger, metrics *ProcessorMetrics) *Processor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Processor{logger: logger, metrics: metrics}
}

// Summarize processes every package in order. A rejected package does not
// stop the batch; its error is kept on its Summary.
func (p *Processor) Summarize(pkgs []Package) Summaries {
	out := make(Summaries, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, p.summarize(pkg))
	}
	return out
}

func (p *Processor) summarize(pkg Package) Summary {
	s := Summary{Package: pkg}

	r, err := pkg.Read()
	if err != nil {
		return p.reject(s, err)
	}
	m, err := Compute(r)
	if err != nil {
		return p.reject(s, err)
	}

	s.Record = r
	s.Metrics = m
	s.Message = Format(r, m)
	p.metrics.recordProcessed(r.Kind, m.CaloriesKcal)
	p.logger.Debug("workout summarized",
		"kind", r.Kind.String(),
		"distance_km", m.DistanceKM,
		"mean_speed_kmh", m.MeanSpeedKMH,
		"calories_kcal", m.CaloriesKcal,
	)
	return s
}

func (p *Processor) reject(s Summary, err error) Summary {
	s.Err = err
	p.metrics.recordRejected(err)
	p.logger.Warn("workout rejected", "code", s.Package.Code, "error", err)
	return s
}

// Summarize processes pkgs with a Processor that neither logs nor counts.
func Summarize(pkgs []Package) Summaries {
	return NewProcessor(nil, nil).Summarize(pkgs)
}
