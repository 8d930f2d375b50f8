// Package fitimport turns the sessions of a FIT activity file into workout
// packages the calculator understands.
package fitimport

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/tormoder/fit"

	ftracker "github.com/lucasjlepore/fit-tracker"
)

const secondsPerHour = 3600.0

var (
	// ErrMissingWeight indicates no athlete weight was configured.
	ErrMissingWeight = errors.New("athlete weight is required")

	// ErrMissingHeight indicates a walking session without a configured height.
	ErrMissingHeight = errors.New("athlete height is required for walking sessions")
)

// Options carries athlete data that FIT sessions do not hold.
type Options struct {
	WeightKG float64
	HeightCM float64
}

// Skipped describes a session that could not be mapped to a workout kind.
type Skipped struct {
	SessionIndex int    `json:"session_index"`
	Sport        string `json:"sport"`
	Reason       string `json:"reason"`
}

// Result holds the packages built from one FIT file.
type Result struct {
	Packages []ftracker.Package `json:"packages"`
	Skipped  []Skipped          `json:"skipped,omitempty"`
}

// FromFile decodes a FIT activity file and maps its sessions.
func FromFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open FIT file: %w", err)
	}
	defer f.Close()

	return FromReader(f, opts)
}

// FromReader decodes a FIT activity stream and maps its sessions.
func FromReader(r io.Reader, opts Options) (*Result, error) {
	if !positive(opts.WeightKG) {
		return nil, ErrMissingWeight
	}

	decoded, err := fit.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode FIT file: %w", err)
	}
	activity, err := decoded.Activity()
	if err != nil {
		return nil, fmt.Errorf("activity FIT expected: %w", err)
	}
	if len(activity.Sessions) == 0 {
		return nil, fmt.Errorf("activity file has no session message")
	}

	res := &Result{}
	for idx, session := range activity.Sessions {
		if session == nil {
			continue
		}
		pkg, reason, err := sessionPackage(session, opts)
		if err != nil {
			return nil, fmt.Errorf("session %d: %w", idx, err)
		}
		if reason != "" {
			res.Skipped = append(res.Skipped, Skipped{
				SessionIndex: idx,
				Sport:        fmt.Sprint(session.Sport),
				Reason:       reason,
			})
			continue
		}
		res.Packages = append(res.Packages, pkg)
	}
	return res, nil
}

// sessionPackage returns either a package or a non-empty skip reason.
func sessionPackage(s *fit.SessionMsg, opts Options) (ftracker.Package, string, error) {
	kind := kindForSport(s.Sport)
	if kind == ftracker.KindUnknown {
		return ftracker.Package{}, "unsupported sport", nil
	}

	hours := safePositive(s.GetTotalTimerTimeScaled()) / secondsPerHour
	if hours == 0 {
		return ftracker.Package{}, "no timer time", nil
	}
	cycles := float64(validUint32(s.TotalCycles))

	switch kind {
	case ftracker.KindRunning:
		// running and walking cycles are strides of two steps
		return ftracker.Package{
			Code: kind.Code(),
			Data: []float64{cycles * 2, hours, opts.WeightKG},
		}, "", nil
	case ftracker.KindWalking:
		if !positive(opts.HeightCM) {
			return ftracker.Package{}, "", ErrMissingHeight
		}
		return ftracker.Package{
			Code: kind.Code(),
			Data: []float64{cycles * 2, hours, opts.WeightKG, opts.HeightCM},
		}, "", nil
	default:
		poolLength := safePositive(s.GetPoolLengthScaled())
		lengths := float64(validUint16(s.NumActiveLengths))
		if poolLength == 0 || lengths == 0 {
			return ftracker.Package{}, "open water or missing pool data", nil
		}
		return ftracker.Package{
			Code: kind.Code(),
			Data: []float64{cycles, hours, opts.WeightKG, poolLength, lengths},
		}, "", nil
	}
}

func kindForSport(sport fit.Sport) ftracker.Kind {
	switch sport {
	case fit.SportRunning:
		return ftracker.KindRunning
	case fit.SportWalking:
		return ftracker.KindWalking
	case fit.SportSwimming:
		return ftracker.KindSwimming
	default:
		return ftracker.KindUnknown
	}
}

func validUint16(v uint16) uint16 {
	if v == math.MaxUint16 {
		return 0
	}
	return v
}

func validUint32(v uint32) uint32 {
	if v == math.MaxUint32 {
		return 0
	}
	return v
}

func positive(v float64) bool {
	return safePositive(v) > 0
}

func safePositive(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}
