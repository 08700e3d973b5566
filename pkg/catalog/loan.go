package catalog

import (
	"time"

	"github.com/dmitrymomot/librakit/pkg/clock"
)

// Loan records one lending of a physical copy, or of a new-release original,
// to a reader. A loan opens on borrow and closes when Returned is stamped;
// it never re-opens and is never deleted.
type Loan struct {
	ID       string     `json:"id"`
	CopyID   string     `json:"copy_id,omitempty"` // empty for a new-release original
	BookID   string     `json:"book_id"`
	ReaderID string     `json:"reader_id"`
	Start    time.Time  `json:"start"`
	Due      time.Time  `json:"due"`
	Returned *time.Time `json:"returned,omitempty"`
}

// Open reports whether the loan has not been returned yet.
func (l *Loan) Open() bool { return l.Returned == nil }

// Original reports whether this loan is for a new-release original rather
// than a physical copy.
func (l *Loan) Original() bool { return l.CopyID == "" }

// LateDays returns how many whole days past due the loan was returned. It is
// zero while the loan is open and zero for on-time returns.
func (l *Loan) LateDays() int {
	if l.Returned == nil {
		return 0
	}
	if d := clock.DaysBetween(l.Due, *l.Returned); d > 0 {
		return d
	}
	return 0
}
