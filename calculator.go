package ftracker

import (
	"fmt"
	"math"
)

const (
	metersPerKM  = 1000.0
	minutesPerH  = 60.0
	stepLength   = 0.65
	strokeLength = 1.38
)

// Metrics are the values derived from one record.
type Metrics struct {
	DistanceKM   float64 `json:"distance_km"`
	MeanSpeedKMH float64 `json:"mean_speed_kmh"`
	CaloriesKcal float64 `json:"calories_kcal"`
}

type formula struct {
	step     float64
	speed    func(r Record, distance float64) float64
	calories func(r Record, speed float64) float64
}

var formulas = map[Kind]formula{
	KindRunning: {
		step:     stepLength,
		speed:    distanceOverDuration,
		calories: runningCalories,
	},
	KindWalking: {
		step:     stepLength,
		speed:    distanceOverDuration,
		calories: walkingCalories,
	},
	KindSwimming: {
		step:     strokeLength,
		speed:    poolSpeed,
		calories: swimmingCalories,
	},
}

func lookup(k Kind) (formula, error) {
	f, ok := formulas[k]
	if !ok {
		return formula{}, fmt.Errorf("%w: %s", ErrInvalidWorkoutKind, k)
	}
	return f, nil
}

// Distance returns the covered distance in km.
func Distance(r Record) (float64, error) {
	f, err := lookup(r.Kind)
	if err != nil {
		return 0, err
	}
	return float64(r.Action) * f.step / metersPerKM, nil
}

// MeanSpeed returns the mean speed in km/h for a validated record.
func MeanSpeed(r Record, distance float64) (float64, error) {
	f, err := lookup(r.Kind)
	if err != nil {
		return 0, err
	}
	if !positive(r.Duration) {
		return 0, fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidRecord, r.Duration)
	}
	return f.speed(r, distance), nil
}

// Calories returns the energy spent in kcal given the record's mean speed.
func Calories(r Record, speed float64) (float64, error) {
	f, err := lookup(r.Kind)
	if err != nil {
		return 0, err
	}
	return f.calories(r, speed), nil
}

// Compute validates r and derives distance, then speed, then calories.
func Compute(r Record) (Metrics, error) {
	if err := r.Validate(); err != nil {
		return Metrics{}, err
	}
	distance, err := Distance(r)
	if err != nil {
		return Metrics{}, err
	}
	speed, err := MeanSpeed(r, distance)
	if err != nil {
		return Metrics{}, err
	}
	calories, err := Calories(r, speed)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		DistanceKM:   distance,
		MeanSpeedKMH: speed,
		CaloriesKcal: calories,
	}, nil
}

func distanceOverDuration(r Record, distance float64) float64 {
	return distance / r.Duration
}

func poolSpeed(r Record, _ float64) float64 {
	return r.PoolLength * float64(r.PoolCount) / metersPerKM / r.Duration
}

func runningCalories(r Record, speed float64) float64 {
	const (
		speedMultiplier = 18.0
		speedShift      = 20.0
	)
	return (speedMultiplier*speed - speedShift) * r.Weight / metersPerKM * r.Duration * minutesPerH
}

// walkingCalories uses the floored quotient of speed² and height.
func walkingCalories(r Record, speed float64) float64 {
	const (
		weightMultiplier = 0.035
		heightMultiplier = 0.029
	)
	ratio := math.Floor(speed * speed / r.Height)
	return (weightMultiplier*r.Weight + ratio*heightMultiplier*r.Weight) * r.Duration * minutesPerH
}

func swimmingCalories(r Record, speed float64) float64 {
	const (
		speedShift       = 1.1
		weightMultiplier = 2.0
	)
	return (speed + speedShift) * weightMultiplier * r.Weight
}
