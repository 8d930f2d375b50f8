package ftracker

import (
	"fmt"
	"math"
)

// Package is one raw sensor package: a workout code and its positional values.
//
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
//	SWM: action, duration, weight, pool length, pool count
type Package struct {
	Code string    `json:"code" yaml:"code"`
	Data []float64 `json:"data" yaml:"data"`
}

var arity = map[Kind]int{
	KindRunning:  3,
	KindWalking:  4,
	KindSwimming: 5,
}

// ReadPackage builds a validated record from a workout code and its values.
func ReadPackage(code string, data []float64) (Record, error) {
	kind, err := ParseCode(code)
	if err != nil {
		return Record{}, err
	}
	if want := arity[kind]; len(data) != want {
		return Record{}, fmt.Errorf("%w: %s expects %d values, got %d", ErrBadArity, code, want, len(data))
	}

	action, err := count("action", data[0])
	if err != nil {
		return Record{}, err
	}
	r := Record{
		Kind:     kind,
		Action:   action,
		Duration: data[1],
		Weight:   data[2],
	}
	switch kind {
	case KindWalking:
		r.Height = data[3]
	case KindSwimming:
		r.PoolLength = data[3]
		if r.PoolCount, err = count("pool count", data[4]); err != nil {
			return Record{}, err
		}
	}

	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Read is ReadPackage for a Package value.
func (p Package) Read() (Record, error) {
	return ReadPackage(p.Code, p.Data)
}

func count(name string, v float64) (int, error) {
	if !isFinite(v) || v < 0 || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %v", ErrInvalidRecord, name, v)
	}
	return int(v), nil
}
