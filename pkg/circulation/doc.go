// Package circulation implements the library desk's loan lifecycle: an
// in-memory Store of books, copies, readers and loans, and a Service that
// applies the borrowing rules on top of it.
//
// # Rules
//
// Loans run for 30 whole days; a reader may hold at most three open loans; a
// return n days late bans the reader until the return date plus 2n days
// (overwriting any prior ban, inclusive of its expiry day). A book flagged
// as a new release has no physical copies yet: its single "original" may be
// out to at most one reader at a time. All limits are the defaults of Rules
// and can be tuned per Service.
//
// # Usage
//
//	store := circulation.NewStore()
//	store.AddBook(catalog.Book{ID: "B1", Title: "Software Engineering"})
//	store.AddCopy(catalog.Copy{ID: "C1", BookID: "B1"})
//	store.AddReader(catalog.Reader{ID: "R1", Email: "alice@example.com"})
//
//	svc := circulation.NewService(store,
//	    circulation.WithNotifier(notifier),
//	)
//
//	loanID, err := svc.BorrowCopy(ctx, "C1", "R1", time.Time{})
//	...
//	err = svc.ReturnCopy(ctx, "C1", time.Time{})
//
// A zero reference date means "today" per the service's clock; tests pin the
// day with clock.Fixed or pass explicit dates.
//
// # Errors
//
// Every failure is a rejected precondition surfaced as a sentinel error
// (ErrCopyNotFound, ErrBorrowForbidden, ...) checked in a fixed order before
// any mutation, so a failed operation leaves the store unchanged. Nothing is
// retryable.
//
// The Service serializes operations behind one mutex so rule checks are
// atomic relative to mutation; two concurrent borrows of the same copy
// cannot both succeed.
package circulation
