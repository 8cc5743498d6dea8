package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDaySuccess(t *testing.T) {
	cases := []struct {
		value    string
		expected TimeOfDay
	}{
		{value: "14:30", expected: TimeOfDay{Hour: 14, Minute: 30}},
		{value: "00:00", expected: TimeOfDay{Hour: 0, Minute: 0}},
		{value: "23:59", expected: TimeOfDay{Hour: 23, Minute: 59}},
		{value: "9:05", expected: TimeOfDay{Hour: 9, Minute: 5}},
		{value: " 07:15 ", expected: TimeOfDay{Hour: 7, Minute: 15}},
		{value: "14: 30", expected: TimeOfDay{Hour: 14, Minute: 30}},
		{value: "14 :30", expected: TimeOfDay{Hour: 14, Minute: 30}},
		{value: "\t8 : 05\n", expected: TimeOfDay{Hour: 8, Minute: 5}},
	}
	for _, testcase := range cases {
		t.Run(testcase.value, func(t *testing.T) {
			tod, err := ParseTimeOfDay(testcase.value)

			assert := require.New(t)
			assert.Nil(err)
			assert.Equal(testcase.expected, tod)
		})
	}
}

func TestParseTimeOfDayFail(t *testing.T) {
	cases := []string{
		"",
		"ab:cd",
		"12",
		"12:",
		":30",
		" :30",
		"12: ",
		"1 2:30",
		"12:30:00",
		"24:00",
		"-1:10",
		"10:60",
		"1O:30",
	}
	for _, value := range cases {
		t.Run(value, func(t *testing.T) {
			_, err := ParseTimeOfDay(value)
			require.ErrorIs(t, err, ErrInvalidTimeOfDay)
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	require.Equal(t, "07:05", TimeOfDay{Hour: 7, Minute: 5}.String())
	require.Equal(t, "23:59", TimeOfDay{Hour: 23, Minute: 59}.String())
}

func TestNextFiringInstant(t *testing.T) {
	rome := time.FixedZone("CET", 60*60)
	cases := []struct {
		id       string
		now      time.Time
		tod      TimeOfDay
		expected time.Time
	}{
		{
			id:       "later today",
			now:      time.Date(2024, 5, 10, 9, 15, 42, 123, time.UTC),
			tod:      TimeOfDay{Hour: 14, Minute: 30},
			expected: time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
		},
		{
			id:       "already passed today",
			now:      time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC),
			tod:      TimeOfDay{Hour: 14, Minute: 30},
			expected: time.Date(2024, 5, 11, 14, 30, 0, 0, time.UTC),
		},
		{
			id:       "exactly now",
			now:      time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
			tod:      TimeOfDay{Hour: 14, Minute: 30},
			expected: time.Date(2024, 5, 11, 14, 30, 0, 0, time.UTC),
		},
		{
			id:       "same minute but seconds passed",
			now:      time.Date(2024, 5, 10, 14, 30, 1, 0, time.UTC),
			tod:      TimeOfDay{Hour: 14, Minute: 30},
			expected: time.Date(2024, 5, 11, 14, 30, 0, 0, time.UTC),
		},
		{
			id:       "end of month",
			now:      time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC),
			tod:      TimeOfDay{Hour: 8, Minute: 0},
			expected: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			id:       "end of year",
			now:      time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC),
			tod:      TimeOfDay{Hour: 0, Minute: 0},
			expected: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			id:       "location of now is kept",
			now:      time.Date(2024, 5, 10, 13, 0, 0, 0, rome),
			tod:      TimeOfDay{Hour: 13, Minute: 30},
			expected: time.Date(2024, 5, 10, 13, 30, 0, 0, rome),
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			at := NextFiringInstant(testcase.now, testcase.tod)

			assert := require.New(t)
			assert.True(testcase.expected.Equal(at), "expected %v, got %v", testcase.expected, at)
			assert.Equal(testcase.now.Location(), at.Location())
		})
	}
}

func TestNextFiringInstantOneMinuteAgo(t *testing.T) {
	now := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	oneMinuteAgo := now.Add(-time.Minute)
	tod := TimeOfDay{Hour: oneMinuteAgo.Hour(), Minute: oneMinuteAgo.Minute()}

	at := NextFiringInstant(now, tod)

	require.Equal(t, 24*time.Hour-time.Minute, at.Sub(now))
}

func TestNextFiringInstantIsAlwaysWithinOneDay(t *testing.T) {
	start := time.Date(2024, 5, 10, 0, 0, 17, 0, time.UTC)
	for _, tod := range []TimeOfDay{{0, 0}, {6, 45}, {12, 0}, {23, 59}} {
		for now := start; now.Before(start.Add(24 * time.Hour)); now = now.Add(7 * time.Minute) {
			at := NextFiringInstant(now, tod)

			assert := require.New(t)
			assert.True(at.After(now), "now: %v, at: %v", now, at)
			assert.LessOrEqual(at.Sub(now), 24*time.Hour)
			assert.Equal(tod.Hour, at.Hour())
			assert.Equal(tod.Minute, at.Minute())
			assert.Zero(at.Second())
			assert.Zero(at.Nanosecond())
		}
	}
}

func TestNextFiringInstantAcrossDSTKeepsWallClock(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		t.Skipf("tzdata is not available: %v", err)
	}
	cases := []struct {
		id       string
		now      time.Time
		expected time.Duration
	}{
		{id: "spring forward", now: time.Date(2024, 3, 30, 9, 0, 0, 0, rome), expected: 23 * time.Hour},
		{id: "fall back", now: time.Date(2024, 10, 26, 9, 0, 0, 0, rome), expected: 25 * time.Hour},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			at := NextFiringInstant(testcase.now, TimeOfDay{Hour: 9, Minute: 0})

			assert := require.New(t)
			assert.Equal(9, at.Hour())
			assert.Equal(testcase.now.Day()+1, at.Day())
			assert.Equal(testcase.expected, at.Sub(testcase.now))
		})
	}
}
