package slot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndHour(t *testing.T) {
	assert.Equal(t, 11, EndHour(10))
	assert.Equal(t, 23, EndHour(22))
	assert.Equal(t, 0, EndHour(23))
	assert.Equal(t, 1, EndHour(0))
}

func TestFormatHourRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		parsed, err := ParseTimeOfDay(FormatHour(h))
		require.NoError(t, err)
		assert.Equal(t, h, parsed.Hour)
		assert.Equal(t, 0, parsed.Minute)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		date      string
		startTime string
		wantStart TimeOfDay
		wantEnd   TimeOfDay
	}{
		{"2024-10-01", "14:00", TimeOfDay{14, 0}, TimeOfDay{15, 0}},
		{"2024-10-01", "14:30", TimeOfDay{14, 30}, TimeOfDay{15, 0}},
		{"2024-10-01", "00:00", TimeOfDay{0, 0}, TimeOfDay{1, 0}},
		{"2024-10-01", "23:00", TimeOfDay{23, 0}, TimeOfDay{0, 0}},
		{"2024-10-01", "23:45", TimeOfDay{23, 45}, TimeOfDay{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.startTime, func(t *testing.T) {
			s, err := Normalize(tc.date, tc.startTime)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStart, s.Start)
			assert.Equal(t, tc.wantEnd, s.End)

			wantDate, _ := time.Parse(DateLayout, tc.date)
			assert.True(t, s.Date.Equal(wantDate))
		})
	}
}

func TestNormalize_EndMinuteAlwaysZero(t *testing.T) {
	for _, start := range []string{"09:01", "09:15", "09:59"} {
		s, err := Normalize("2024-10-01", start)
		require.NoError(t, err)
		assert.Equal(t, 0, s.End.Minute, "end minute must be rounded away for start %s", start)
		assert.Equal(t, 10, s.End.Hour)
	}
}

func TestNormalize_Malformed(t *testing.T) {
	cases := []struct {
		date      string
		startTime string
	}{
		{"2024-13-01", "10:00"},
		{"bad-date", "10:00"},
		{"2024-10-01", "25:00"},
		{"2024-10-01", "10:99"},
		{"2024-10-01", "1000"},
		{"2024-10-01", "aa:bb"},
		{"2024-10-01", "-1:00"},
		{"", "10:00"},
		{"2024-10-01", ""},
	}

	for _, tc := range cases {
		_, err := Normalize(tc.date, tc.startTime)
		assert.ErrorIs(t, err, ErrMalformedInput, "date=%q start=%q", tc.date, tc.startTime)
	}
}

func hourInterval(startHour int) Interval {
	return NewInterval(TimeOfDay{Hour: startHour}, TimeOfDay{Hour: EndHour(startHour)})
}

func TestInterval_MidnightWrap(t *testing.T) {
	// The 23:00 slot must compare as [1380,1440), not wrap below its start.
	iv := hourInterval(23)
	assert.Equal(t, 23*60, iv.Start)
	assert.Equal(t, 24*60, iv.End)

	s, err := Normalize("2024-10-01", "23:30")
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 23*60 + 30, End: 24 * 60}, s.Interval())
}

func TestOverlaps(t *testing.T) {
	at := func(h, m int) TimeOfDay { return TimeOfDay{Hour: h, Minute: m} }

	tests := []struct {
		name      string
		existing  Interval
		candidate Interval
		want      bool
	}{
		{"partial, candidate starts inside existing", NewInterval(at(10, 0), at(11, 0)), NewInterval(at(10, 30), at(11, 30)), true},
		{"partial, candidate ends inside existing", NewInterval(at(10, 30), at(11, 30)), NewInterval(at(10, 0), at(11, 0)), true},
		{"identical", NewInterval(at(10, 0), at(11, 0)), NewInterval(at(10, 0), at(11, 0)), true},
		{"existing contained in candidate", NewInterval(at(10, 0), at(11, 0)), NewInterval(at(9, 0), at(13, 0)), true},
		{"candidate contained in existing", NewInterval(at(9, 0), at(13, 0)), NewInterval(at(10, 0), at(11, 0)), true},
		{"adjacent after, half-open boundary", NewInterval(at(10, 0), at(11, 0)), NewInterval(at(11, 0), at(12, 0)), false},
		{"adjacent before, half-open boundary", NewInterval(at(11, 0), at(12, 0)), NewInterval(at(10, 0), at(11, 0)), false},
		{"disjoint", NewInterval(at(8, 0), at(9, 0)), NewInterval(at(14, 0), at(15, 0)), false},
		{"late slot vs preceding hour", hourInterval(23), hourInterval(22), false},
		{"late slot vs itself", hourInterval(23), hourInterval(23), true},
		{"late slot vs first morning hour", hourInterval(23), hourInterval(0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.existing, tc.candidate))
		})
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	// Both containment directions must be caught regardless of which
	// interval was admitted first.
	for a := 0; a < 24; a++ {
		for b := 0; b < 24; b++ {
			ivA, ivB := hourInterval(a), hourInterval(b)
			assert.Equal(t, Overlaps(ivA, ivB), Overlaps(ivB, ivA), "hours %d vs %d", a, b)
			assert.Equal(t, a == b, Overlaps(ivA, ivB), "hour slots only collide with themselves: %d vs %d", a, b)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay{9, 5}.String())
	assert.Equal(t, "00:00", TimeOfDay{0, 0}.String())
	assert.Equal(t, "23:30", TimeOfDay{23, 30}.String())
}
