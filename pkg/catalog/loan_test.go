package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/librakit/pkg/catalog"
	"github.com/dmitrymomot/librakit/pkg/clock"
)

func TestLoanLateDays(t *testing.T) {
	t.Parallel()

	start := clock.Date(2025, time.October, 1)
	due := clock.AddDays(start, catalog.LoanPeriodDays)

	onDue := due
	oneLate := clock.AddDays(due, 1)
	fiveLate := clock.AddDays(due, 5)
	early := clock.AddDays(due, -10)

	tests := []struct {
		name     string
		returned *time.Time
		want     int
	}{
		{name: "open loan", returned: nil, want: 0},
		{name: "returned exactly on due date", returned: &onDue, want: 0},
		{name: "returned early", returned: &early, want: 0},
		{name: "one day late", returned: &oneLate, want: 1},
		{name: "five days late", returned: &fiveLate, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loan := catalog.Loan{
				ID:       "L1",
				CopyID:   "C1",
				BookID:   "B1",
				ReaderID: "R1",
				Start:    start,
				Due:      due,
				Returned: tt.returned,
			}

			assert.Equal(t, tt.want, loan.LateDays())
			assert.Equal(t, tt.returned == nil, loan.Open())
		})
	}
}

func TestLoanOriginal(t *testing.T) {
	t.Parallel()

	copyLoan := catalog.Loan{ID: "L1", CopyID: "C1", BookID: "B1", ReaderID: "R1"}
	originalLoan := catalog.Loan{ID: "L2", BookID: "B2", ReaderID: "R1"}

	assert.False(t, copyLoan.Original())
	assert.True(t, originalLoan.Original())
}

func TestCopyStatusIsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []catalog.CopyStatus{
		catalog.StatusInLibrary,
		catalog.StatusLoaned,
		catalog.StatusReserved,
		catalog.StatusLate,
		catalog.StatusRepair,
	} {
		assert.True(t, s.IsValid(), string(s))
	}

	assert.False(t, catalog.CopyStatus("LOST").IsValid())
	assert.False(t, catalog.CopyStatus("").IsValid())
}
