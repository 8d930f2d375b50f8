package ftracker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestCompute_Running(t *testing.T) {
	r := Record{Kind: KindRunning, Action: 15000, Duration: 1, Weight: 75}

	m, err := Compute(r)
	require.NoError(t, err)
	assert.InDelta(t, 9.75, m.DistanceKM, delta)
	assert.InDelta(t, 9.75, m.MeanSpeedKMH, delta)
	assert.InDelta(t, (18*9.75-20)*75/1000*1*60, m.CaloriesKcal, delta)
	assert.InDelta(t, 699.75, m.CaloriesKcal, delta)
}

func TestCompute_Swimming(t *testing.T) {
	r := Record{Kind: KindSwimming, Action: 720, Duration: 1, Weight: 80, PoolLength: 25, PoolCount: 40}

	m, err := Compute(r)
	require.NoError(t, err)
	assert.InDelta(t, 0.9936, m.DistanceKM, delta)
	assert.InDelta(t, 1.0, m.MeanSpeedKMH, delta, "pool speed ignores stroke distance")
	assert.InDelta(t, 336.0, m.CaloriesKcal, delta)
}

func TestCompute_Walking(t *testing.T) {
	r := Record{Kind: KindWalking, Action: 9000, Duration: 1, Weight: 75, Height: 180}

	m, err := Compute(r)
	require.NoError(t, err)
	assert.InDelta(t, 5.85, m.DistanceKM, delta)
	assert.InDelta(t, 5.85, m.MeanSpeedKMH, delta)
	expected := (0.035*75 + math.Floor(5.85*5.85/180)*0.029*75) * 60
	assert.InDelta(t, expected, m.CaloriesKcal, delta)
	assert.InDelta(t, 157.5, m.CaloriesKcal, delta)
}

func TestWalkingCalories_FloorsSpeedHeightRatio(t *testing.T) {
	// speed 19.5 km/h, 19.5² / 10 = 38.025 -> 38
	r := Record{Kind: KindWalking, Action: 30000, Duration: 1, Weight: 75, Height: 10}

	m, err := Compute(r)
	require.NoError(t, err)
	assert.InDelta(t, 19.5, m.MeanSpeedKMH, delta)
	assert.InDelta(t, (0.035*75+38*0.029*75)*60, m.CaloriesKcal, 1e-6)
}

func TestCompute_DurationScalesRunningAndWalking(t *testing.T) {
	run := Record{Kind: KindRunning, Action: 15000, Duration: 2, Weight: 75}
	m, err := Compute(run)
	require.NoError(t, err)
	assert.InDelta(t, 4.875, m.MeanSpeedKMH, delta)
	assert.InDelta(t, (18*4.875-20)*75/1000*2*60, m.CaloriesKcal, delta)

	swim := Record{Kind: KindSwimming, Action: 720, Duration: 0.5, Weight: 80, PoolLength: 25, PoolCount: 40}
	m, err = Compute(swim)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, m.MeanSpeedKMH, delta)
	assert.InDelta(t, (2.0+1.1)*2*80, m.CaloriesKcal, delta)
}

func TestCompute_RejectsInvalidRecords(t *testing.T) {
	cases := []struct {
		name   string
		record Record
		err    error
	}{
		{"zero duration", Record{Kind: KindRunning, Action: 1, Duration: 0, Weight: 75}, ErrInvalidRecord},
		{"negative duration", Record{Kind: KindRunning, Action: 1, Duration: -1, Weight: 75}, ErrInvalidRecord},
		{"nan duration", Record{Kind: KindRunning, Action: 1, Duration: math.NaN(), Weight: 75}, ErrInvalidRecord},
		{"zero weight", Record{Kind: KindRunning, Action: 1, Duration: 1}, ErrInvalidRecord},
		{"negative action", Record{Kind: KindRunning, Action: -1, Duration: 1, Weight: 75}, ErrInvalidRecord},
		{"walking without height", Record{Kind: KindWalking, Action: 1, Duration: 1, Weight: 75}, ErrInvalidRecord},
		{"swimming without pool length", Record{Kind: KindSwimming, Action: 1, Duration: 1, Weight: 75, PoolCount: 4}, ErrInvalidRecord},
		{"swimming without pool count", Record{Kind: KindSwimming, Action: 1, Duration: 1, Weight: 75, PoolLength: 25}, ErrInvalidRecord},
		{"unknown kind", Record{Kind: KindUnknown, Action: 1, Duration: 1, Weight: 75}, ErrInvalidWorkoutKind},
		{"out of range kind", Record{Kind: Kind(42), Action: 1, Duration: 1, Weight: 75}, ErrInvalidWorkoutKind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.record)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestCalories_UnknownKind(t *testing.T) {
	_, err := Calories(Record{Kind: Kind(9), Duration: 1, Weight: 70}, 10)
	assert.ErrorIs(t, err, ErrInvalidWorkoutKind)

	_, err = Distance(Record{Kind: KindUnknown, Action: 10})
	assert.ErrorIs(t, err, ErrInvalidWorkoutKind)
}

func TestMeanSpeed_GuardsDuration(t *testing.T) {
	_, err := MeanSpeed(Record{Kind: KindRunning, Action: 100, Weight: 70}, 0.065)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestCompute_Deterministic(t *testing.T) {
	r := Record{Kind: KindWalking, Action: 12345, Duration: 1.25, Weight: 82.5, Height: 176}
	first, err := Compute(r)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Compute(r)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestKind_NamesAndCodes(t *testing.T) {
	cases := []struct {
		kind Kind
		name string
		code string
	}{
		{KindRunning, "Running", "RUN"},
		{KindWalking, "Walking", "WLK"},
		{KindSwimming, "Swimming", "SWM"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.name, tc.kind.String())
		assert.Equal(t, tc.code, tc.kind.Code())
		assert.True(t, tc.kind.Valid())

		parsed, err := ParseCode(tc.code)
		require.NoError(t, err)
		assert.Equal(t, tc.kind, parsed)
	}
	assert.False(t, KindUnknown.Valid())
	assert.Equal(t, "", KindUnknown.Code())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
