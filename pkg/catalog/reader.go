package catalog

import "time"

// Standard circulation rules.
const (
	// MaxActiveLoans caps how many open loans a reader may hold.
	MaxActiveLoans = 3
	// LoanPeriodDays is the whole-day loan period: due = start + LoanPeriodDays.
	LoanPeriodDays = 30
	// LateBanMultiplier scales a late return into ban days:
	// ban = returned + LateBanMultiplier * lateDays.
	LateBanMultiplier = 2
)

// Reader is a registered library member.
//
// ActiveLoanIDs holds the reader's open loans in borrow order. BanUntil is
// set on a late return and simply stops being relevant once today moves past
// it; it is never cleared.
type Reader struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	BanUntil      *time.Time `json:"ban_until,omitempty"`
	ActiveLoanIDs []string   `json:"active_loan_ids,omitempty"`
}

// Banned reports whether the reader is banned on the given day. A ban is
// inclusive of its expiry date: BanUntil equal to today still counts.
func (r *Reader) Banned(today time.Time) bool {
	return r.BanUntil != nil && !today.After(*r.BanUntil)
}

// CanBorrow reports whether the reader may open another loan on the given
// day: no active ban and fewer than MaxActiveLoans open loans.
func (r *Reader) CanBorrow(today time.Time) bool {
	return r.CanBorrowLimit(today, MaxActiveLoans)
}

// CanBorrowLimit is CanBorrow with a caller-supplied loan cap.
func (r *Reader) CanBorrowLimit(today time.Time, maxLoans int) bool {
	return !r.Banned(today) && len(r.ActiveLoanIDs) < maxLoans
}
