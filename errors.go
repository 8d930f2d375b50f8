package ftracker

import "errors"

var (
	// ErrUnknownWorkoutCode indicates a package code outside RUN, WLK and SWM.
	ErrUnknownWorkoutCode = errors.New("unknown workout code")

	// ErrInvalidWorkoutKind indicates a kind with no calorie formula.
	ErrInvalidWorkoutKind = errors.New("invalid workout kind")

	// ErrInvalidRecord indicates sensor values that break a record invariant.
	ErrInvalidRecord = errors.New("invalid workout record")

	// ErrBadArity indicates the wrong number of values for a workout code.
	ErrBadArity = errors.New("wrong number of workout values")
)
