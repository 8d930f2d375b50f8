// Package ftracker computes distance, mean speed and calories for running,
// walking and swimming workouts from raw sensor readings.
package ftracker

import (
	"fmt"
	"math"
)

// Kind is the closed set of supported workout kinds.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRunning
	KindWalking
	KindSwimming
)

var kindNames = map[Kind]string{
	KindRunning:  "Running",
	KindWalking:  "Walking",
	KindSwimming: "Swimming",
}

var kindCodes = map[Kind]string{
	KindRunning:  "RUN",
	KindWalking:  "WLK",
	KindSwimming: "SWM",
}

// String returns the display name used in workout messages.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Code returns the short sensor code for k, or "" for an unknown kind.
func (k Kind) Code() string {
	return kindCodes[k]
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseCode maps a sensor code ("RUN", "WLK", "SWM") to its kind.
func ParseCode(code string) (Kind, error) {
	for kind, c := range kindCodes {
		if c == code {
			return kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownWorkoutCode, code)
}

// Record holds the raw sensor readings of one workout.
//
// Height is only read for walking; PoolLength and PoolCount only for swimming.
type Record struct {
	Kind       Kind
	Action     int     // steps or strokes
	Duration   float64 // hours
	Weight     float64 // kg
	Height     float64 // cm
	PoolLength float64 // m
	PoolCount  int
}

// Validate checks the invariants every calculation relies on.
func (r Record) Validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidWorkoutKind, r.Kind)
	}
	if r.Action < 0 {
		return fmt.Errorf("%w: action must not be negative, got %d", ErrInvalidRecord, r.Action)
	}
	if !positive(r.Duration) {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidRecord, r.Duration)
	}
	if !positive(r.Weight) {
		return fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidRecord, r.Weight)
	}
	switch r.Kind {
	case KindWalking:
		if !positive(r.Height) {
			return fmt.Errorf("%w: height must be positive, got %v", ErrInvalidRecord, r.Height)
		}
	case KindSwimming:
		if !positive(r.PoolLength) {
			return fmt.Errorf("%w: pool length must be positive, got %v", ErrInvalidRecord, r.PoolLength)
		}
		if r.PoolCount <= 0 {
			return fmt.Errorf("%w: pool count must be positive, got %d", ErrInvalidRecord, r.PoolCount)
		}
	}
	return nil
}

func positive(v float64) bool {
	return isFinite(v) && v > 0
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
