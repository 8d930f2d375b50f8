package ftracker

import (
	"fmt"
	"strings"
)

// InfoMessage is the rendered view of one finished workout.
type InfoMessage struct {
	Kind     Kind
	Duration float64
	Distance float64
	Speed    float64
	Calories float64
}

// NewInfoMessage pairs a record with its computed metrics.
func NewInfoMessage(r Record, m Metrics) InfoMessage {
	return InfoMessage{
		Kind:     r.Kind,
		Duration: r.Duration,
		Distance: m.DistanceKM,
		Speed:    m.MeanSpeedKMH,
		Calories: m.CaloriesKcal,
	}
}

// Message renders the fixed one-line workout summary.
func (m InfoMessage) Message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Workout type: %s; ", m.Kind)
	fmt.Fprintf(&b, "Duration: %.3f h; ", m.Duration)
	fmt.Fprintf(&b, "Distance: %.3f km; ", m.Distance)
	fmt.Fprintf(&b, "Avg speed: %.3f km/h; ", m.Speed)
	fmt.Fprintf(&b, "Calories: %.3f.", m.Calories)
	return b.String()
}

func (m InfoMessage) String() string {
	return m.Message()
}

// Format renders the summary line for r and its metrics.
func Format(r Record, m Metrics) string {
	return NewInfoMessage(r, m).Message()
}

// ShowTrainingInfo computes the metrics of r and returns its info message.
func ShowTrainingInfo(r Record) (InfoMessage, error) {
	m, err := Compute(r)
	if err != nil {
		return InfoMessage{}, err
	}
	return NewInfoMessage(r, m), nil
}
