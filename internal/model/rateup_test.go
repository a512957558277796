package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func window(start, end *time.Time, names ...string) *RateUpWindow {
	return &RateUpWindow{Start: start, End: end, RateUps: names}
}

func tp(t time.Time) *time.Time { return &t }

func TestEmptyScheduleAlwaysRateUp(t *testing.T) {
	var s RateUpSchedule
	now := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, s.IsRateUp("anything", now))
	assert.True(t, s.IsRateUp("", now.AddDate(-10, 0, 0)))
}

func TestScheduleClassification(t *testing.T) {
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 21)
	s := RateUpSchedule{window(tp(start), tp(end), "Seele", "Silver Wolf")}

	tests := []struct {
		name   string
		at     time.Time
		expect bool
	}{
		{"Seele", start, true},                       // boundary inclusive
		{"Seele", end, true},                         // boundary inclusive
		{"Seele", start.Add(-time.Second), false},    // before window
		{"Seele", end.Add(time.Second), false},       // after window
		{"Silver Wolf", start.Add(time.Hour), true},  // second promoted item
		{"Bronya", start.Add(time.Hour), false},      // not promoted
	}

	for _, test := range tests {
		assert.Equal(t, test.expect, s.IsRateUp(test.name, test.at),
			"expect IsRateUp(%q, %s) == %v", test.name, test.at, test.expect)
	}
}

func TestScheduleOverlappingWindows(t *testing.T) {
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	s := RateUpSchedule{
		window(tp(start), tp(start.AddDate(0, 0, 21)), "Seele"),
		window(tp(start.AddDate(0, 0, 7)), tp(start.AddDate(0, 0, 28)), "Jingliu"),
	}

	at := start.AddDate(0, 0, 10) // inside both windows
	assert.True(t, s.IsRateUp("Seele", at))
	assert.True(t, s.IsRateUp("Jingliu", at))
	assert.False(t, s.IsRateUp("Bronya", at))
}

func TestScheduleOpenBounds(t *testing.T) {
	s := RateUpSchedule{window(nil, nil, "Always")}

	assert.True(t, s.IsRateUp("Always", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, s.IsRateUp("Always", time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, s.IsRateUp("Never", time.Now()))
}

func TestScheduleSort(t *testing.T) {
	t1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.AddDate(0, 1, 0)
	s := RateUpSchedule{
		window(tp(t2), tp(t2.AddDate(0, 0, 21)), "B"),
		window(tp(t1), tp(t1.AddDate(0, 0, 21)), "A"),
		window(nil, tp(t1), "Open"),
	}
	s.Sort()

	assert.Equal(t, []string{"Open"}, s[0].RateUps)
	assert.Equal(t, []string{"A"}, s[1].RateUps)
	assert.Equal(t, []string{"B"}, s[2].RateUps)
}

func TestScheduleSortOpenEndLast(t *testing.T) {
	t1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	s := RateUpSchedule{
		window(tp(t1), nil, "OpenEnd"),
		window(tp(t1), tp(t1.AddDate(0, 0, 21)), "Finite"),
	}
	s.Sort()

	// An open end runs forever, so it orders after a finite end with the
	// same start.
	assert.Equal(t, []string{"Finite"}, s[0].RateUps)
	assert.Equal(t, []string{"OpenEnd"}, s[1].RateUps)
}
