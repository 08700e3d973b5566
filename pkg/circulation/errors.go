package circulation

import "errors"

// Domain errors for circulation operations. Each one is a rejected
// precondition: the operation failed before mutating the store and nothing
// is retryable.
var (
	ErrCopyNotFound            = errors.New("circulation.errors.copy_not_found")
	ErrReaderNotFound          = errors.New("circulation.errors.reader_not_found")
	ErrBookNotFound            = errors.New("circulation.errors.book_not_found")
	ErrBorrowForbidden         = errors.New("circulation.errors.borrow_forbidden")
	ErrCopyNotAvailable        = errors.New("circulation.errors.copy_not_available")
	ErrNotNewRelease           = errors.New("circulation.errors.not_new_release")
	ErrOriginalAlreadyBorrowed = errors.New("circulation.errors.original_already_borrowed")
	ErrOriginalNotBorrowed     = errors.New("circulation.errors.original_not_borrowed")
	ErrCopyNotLoaned           = errors.New("circulation.errors.copy_not_loaned")
	ErrLoanNotFound            = errors.New("circulation.errors.loan_not_found")
)
