package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/librakit/pkg/clock"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2025, time.October, 1, 23, 45, 12, 999, loc)
	got := clock.Normalize(in)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, clock.Date(2025, time.October, 1), got)
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base time.Time
		n    int
		want time.Time
	}{
		{
			name: "thirty days across a month boundary",
			base: clock.Date(2025, time.October, 1),
			n:    30,
			want: clock.Date(2025, time.October, 31),
		},
		{
			name: "across a year boundary",
			base: clock.Date(2025, time.December, 20),
			n:    15,
			want: clock.Date(2026, time.January, 4),
		},
		{
			name: "leap february",
			base: clock.Date(2024, time.February, 28),
			n:    2,
			want: clock.Date(2024, time.March, 1),
		},
		{
			name: "negative offset",
			base: clock.Date(2025, time.March, 1),
			n:    -1,
			want: clock.Date(2025, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, clock.AddDays(tt.base, tt.n))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	due := clock.Date(2025, time.October, 31)

	assert.Equal(t, 0, clock.DaysBetween(due, due))
	assert.Equal(t, 5, clock.DaysBetween(due, clock.Date(2025, time.November, 5)))
	assert.Equal(t, -5, clock.DaysBetween(clock.Date(2025, time.November, 5), due))

	// Time-of-day never contributes to the count.
	lateAfternoon := time.Date(2025, time.November, 1, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, 1, clock.DaysBetween(due, lateAfternoon))
}

func TestFixed(t *testing.T) {
	t.Parallel()

	noisy := time.Date(2025, time.October, 1, 13, 37, 0, 0, time.UTC)
	c := clock.Fixed(noisy)

	assert.Equal(t, clock.Date(2025, time.October, 1), c.Today())
	assert.Equal(t, c.Today(), c.Today())
}

func TestSystem(t *testing.T) {
	t.Parallel()

	today := clock.System().Today()

	require.Equal(t, time.UTC, today.Location())
	assert.Equal(t, clock.Normalize(today), today)
	assert.Zero(t, today.Hour())
}
