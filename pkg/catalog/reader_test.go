package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/librakit/pkg/catalog"
	"github.com/dmitrymomot/librakit/pkg/clock"
)

func TestReaderCanBorrow(t *testing.T) {
	t.Parallel()

	today := clock.Date(2025, time.October, 1)
	banToday := today
	banYesterday := clock.AddDays(today, -1)
	banNextWeek := clock.AddDays(today, 7)

	tests := []struct {
		name   string
		reader catalog.Reader
		want   bool
	}{
		{
			name:   "no ban and no loans",
			reader: catalog.Reader{ID: "R1", Email: "alice@example.com"},
			want:   true,
		},
		{
			name: "two open loans leaves room",
			reader: catalog.Reader{
				ID:            "R1",
				ActiveLoanIDs: []string{"L1", "L2"},
			},
			want: true,
		},
		{
			name: "at the loan limit",
			reader: catalog.Reader{
				ID:            "R1",
				ActiveLoanIDs: []string{"L1", "L2", "L3"},
			},
			want: false,
		},
		{
			name: "ban expiring today still blocks",
			reader: catalog.Reader{
				ID:       "R1",
				BanUntil: &banToday,
			},
			want: false,
		},
		{
			name: "future ban blocks",
			reader: catalog.Reader{
				ID:       "R1",
				BanUntil: &banNextWeek,
			},
			want: false,
		},
		{
			name: "ban that passed yesterday no longer blocks",
			reader: catalog.Reader{
				ID:       "R1",
				BanUntil: &banYesterday,
			},
			want: true,
		},
		{
			name: "expired ban does not excuse the loan limit",
			reader: catalog.Reader{
				ID:            "R1",
				BanUntil:      &banYesterday,
				ActiveLoanIDs: []string{"L1", "L2", "L3"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.reader.CanBorrow(today))
		})
	}
}

func TestReaderCanBorrowLimit(t *testing.T) {
	t.Parallel()

	today := clock.Date(2025, time.October, 1)
	r := catalog.Reader{ID: "R1", ActiveLoanIDs: []string{"L1"}}

	assert.True(t, r.CanBorrowLimit(today, 2))
	assert.False(t, r.CanBorrowLimit(today, 1))
}
