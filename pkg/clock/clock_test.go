package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Minute
	}{
		{"morning with space", "9:30 am", 570},
		{"morning without space", "9:30am", 570},
		{"evening", "7:05 pm", 19*60 + 5},
		{"midnight is hour zero", "12:00 am", 0},
		{"noon stays twelve", "12:00 pm", 720},
		{"half past noon", "12:30 pm", 750},
		{"half past midnight", "12:30 am", 30},
		{"no meridiem taken as given", "10:15", 615},
		{"uppercase meridiem", "6:45 PM", 18*60 + 45},
		{"surrounding whitespace", "  8:00 am  ", 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"25:00 pm",
		"0:30 am",
		"13:00 pm",
		"9:75 am",
		"930 am",
		"9:30 xm",
		"half past nine",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}

func TestClock_Format(t *testing.T) {
	tests := []struct {
		name   string
		minute Minute
		want   string
	}{
		{"midnight", 0, "12:00 am"},
		{"noon", 720, "12:00 pm"},
		{"evening", 19*60 + 30, "7:30 pm"},
		{"morning", 570, "9:30 am"},
		{"wraps past midnight", 1470, "12:30 am"},
		{"wraps a full day", 1440, "12:00 am"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.minute.Clock())
		})
	}
}

func TestParse_FormatRoundTrip(t *testing.T) {
	for m := Minute(0); m < MinutesPerDay; m += 5 {
		parsed, err := Parse(m.Clock())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestIntervalEnd_CrossesMidnightUnwrapped(t *testing.T) {
	end := IntervalEnd(23*60+30, 60)
	assert.Equal(t, Minute(1470), end)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd Minute
		want                       bool
	}{
		{"partial overlap", 690, 720, 680, 700, true},
		{"contained", 600, 700, 620, 640, true},
		{"touching boundaries do not overlap", 660, 690, 690, 720, false},
		{"disjoint", 600, 630, 700, 730, false},
		{"midnight crossing vs next morning", 23*60 + 30, 1470, 10, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}
