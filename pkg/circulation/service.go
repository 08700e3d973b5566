package circulation

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/librakit/pkg/alert"
	"github.com/dmitrymomot/librakit/pkg/catalog"
	"github.com/dmitrymomot/librakit/pkg/clock"
	"github.com/dmitrymomot/librakit/pkg/logger"
)

// Rules are the tunable circulation rules. The zero value is not usable;
// start from DefaultRules.
type Rules struct {
	LoanPeriodDays int
	MaxActiveLoans int
	BanMultiplier  int
}

// DefaultRules returns the standard desk rules: 30-day loans, at most three
// open loans per reader, two ban days per late day.
func DefaultRules() Rules {
	return Rules{
		LoanPeriodDays: catalog.LoanPeriodDays,
		MaxActiveLoans: catalog.MaxActiveLoans,
		BanMultiplier:  catalog.LateBanMultiplier,
	}
}

// Config loads circulation rules from the environment. Defaults match
// DefaultRules.
type Config struct {
	LoanPeriodDays int `env:"LOAN_PERIOD_DAYS" envDefault:"30"`
	MaxActiveLoans int `env:"MAX_ACTIVE_LOANS" envDefault:"3"`
	BanMultiplier  int `env:"LATE_BAN_MULTIPLIER" envDefault:"2"`
}

// Rules converts the loaded config into service rules.
func (c Config) Rules() Rules {
	return Rules{
		LoanPeriodDays: c.LoanPeriodDays,
		MaxActiveLoans: c.MaxActiveLoans,
		BanMultiplier:  c.BanMultiplier,
	}
}

// Service orchestrates borrow and return operations against a Store,
// applying the circulation rules and alerting waiting readers after
// successful returns.
type Service struct {
	mu     sync.Mutex
	store  *Store
	alerts *alert.Notifier
	clock  clock.Clock
	rules  Rules
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithNotifier sets the availability notifier invoked after returns.
func WithNotifier(n *alert.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.alerts = n
		}
	}
}

// WithClock sets the date provider used when an operation is given a zero
// reference date.
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithRules overrides the default circulation rules.
func WithRules(r Rules) Option {
	return func(s *Service) { s.rules = r }
}

// WithLogger sets the logger for operation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service over the given store. Defaults: a senderless
// notifier (notifications become silent no-ops), the system clock,
// DefaultRules and the process-default logger.
func NewService(store *Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		alerts: alert.New(),
		clock:  clock.System(),
		rules:  DefaultRules(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// day resolves a reference date: zero means "today" per the service clock.
func (s *Service) day(t time.Time) time.Time {
	if t.IsZero() {
		return s.clock.Today()
	}
	return clock.Normalize(t)
}

// BorrowCopy lends the physical copy to the reader, opening a loan that
// falls due LoanPeriodDays after today. A zero today means the clock's
// current day. It returns the new loan's identifier.
//
// Failure conditions, first match wins: ErrCopyNotFound, ErrReaderNotFound,
// ErrBorrowForbidden (banned or at the loan limit), ErrCopyNotAvailable.
func (s *Service) BorrowCopy(ctx context.Context, copyID, readerID string, today time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today = s.day(today)

	c, ok := s.store.copies[copyID]
	if !ok {
		return "", ErrCopyNotFound
	}
	r, ok := s.store.readers[readerID]
	if !ok {
		return "", ErrReaderNotFound
	}
	if !r.CanBorrowLimit(today, s.rules.MaxActiveLoans) {
		return "", ErrBorrowForbidden
	}
	if c.Status != catalog.StatusInLibrary {
		return "", ErrCopyNotAvailable
	}

	loan := &catalog.Loan{
		ID:       s.store.nextLoanID(),
		CopyID:   copyID,
		BookID:   c.BookID,
		ReaderID: readerID,
		Start:    today,
		Due:      clock.AddDays(today, s.rules.LoanPeriodDays),
	}
	s.store.loans[loan.ID] = loan
	s.store.openByCopy[copyID] = loan.ID
	c.Status = catalog.StatusLoaned
	r.ActiveLoanIDs = append(r.ActiveLoanIDs, loan.ID)

	s.logger.LogAttrs(ctx, slog.LevelDebug, "Copy borrowed",
		logger.LoanID(loan.ID),
		logger.CopyID(copyID),
		logger.BookID(c.BookID),
		logger.ReaderID(readerID),
	)

	return loan.ID, nil
}

// BorrowOriginal lends the single original of a new-release book, which has
// no physical copies yet. Only one reader at a time may hold it. The loan
// carries no copy id; date rules match BorrowCopy.
//
// Failure conditions, first match wins: ErrBookNotFound, ErrReaderNotFound,
// ErrNotNewRelease, ErrBorrowForbidden, ErrOriginalAlreadyBorrowed.
func (s *Service) BorrowOriginal(ctx context.Context, bookID, readerID string, today time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today = s.day(today)

	b, ok := s.store.books[bookID]
	if !ok {
		return "", ErrBookNotFound
	}
	r, ok := s.store.readers[readerID]
	if !ok {
		return "", ErrReaderNotFound
	}
	if !b.NewRelease {
		return "", ErrNotNewRelease
	}
	if !r.CanBorrowLimit(today, s.rules.MaxActiveLoans) {
		return "", ErrBorrowForbidden
	}
	if _, out := s.store.originalsOut[bookID]; out {
		return "", ErrOriginalAlreadyBorrowed
	}

	loan := &catalog.Loan{
		ID:       s.store.nextLoanID(),
		BookID:   bookID,
		ReaderID: readerID,
		Start:    today,
		Due:      clock.AddDays(today, s.rules.LoanPeriodDays),
	}
	s.store.loans[loan.ID] = loan
	s.store.originalsOut[bookID] = struct{}{}
	s.store.openOriginals[originalKey{bookID: bookID, readerID: readerID}] = loan.ID
	r.ActiveLoanIDs = append(r.ActiveLoanIDs, loan.ID)

	s.logger.LogAttrs(ctx, slog.LevelDebug, "Original borrowed",
		logger.LoanID(loan.ID),
		logger.BookID(bookID),
		logger.ReaderID(readerID),
	)

	return loan.ID, nil
}

// ReturnCopy closes the copy's open loan on the given day, applies the
// late-return ban if due, puts the copy back in the library and alerts
// readers waiting on the book. A zero when means the clock's current day.
//
// Failure conditions, first match wins: ErrCopyNotFound, ErrCopyNotLoaned,
// ErrLoanNotFound.
func (s *Service) ReturnCopy(ctx context.Context, copyID string, when time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	when = s.day(when)

	c, ok := s.store.copies[copyID]
	if !ok {
		return ErrCopyNotFound
	}
	if c.Status != catalog.StatusLoaned && c.Status != catalog.StatusLate {
		return ErrCopyNotLoaned
	}
	loanID, ok := s.store.openByCopy[copyID]
	if !ok {
		return ErrLoanNotFound
	}

	loan := s.store.loans[loanID]
	reader := s.store.readers[loan.ReaderID]

	s.closeLoan(loan, reader, when)
	delete(s.store.openByCopy, copyID)
	c.Status = catalog.StatusInLibrary

	s.logger.LogAttrs(ctx, slog.LevelDebug, "Copy returned",
		logger.LoanID(loan.ID),
		logger.CopyID(copyID),
		logger.BookID(loan.BookID),
		logger.ReaderID(loan.ReaderID),
		slog.Int("late_days", loan.LateDays()),
	)

	s.notifyAvailable(ctx, loan.BookID)
	return nil
}

// ReturnOriginal closes a reader's open loan of a new-release original,
// applying the same late and ban rules as ReturnCopy and freeing the
// original for the next reader.
//
// Failure conditions, first match wins: ErrBookNotFound, ErrReaderNotFound,
// ErrOriginalNotBorrowed, ErrLoanNotFound.
func (s *Service) ReturnOriginal(ctx context.Context, bookID, readerID string, when time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	when = s.day(when)

	if _, ok := s.store.books[bookID]; !ok {
		return ErrBookNotFound
	}
	reader, ok := s.store.readers[readerID]
	if !ok {
		return ErrReaderNotFound
	}
	if _, out := s.store.originalsOut[bookID]; !out {
		return ErrOriginalNotBorrowed
	}
	key := originalKey{bookID: bookID, readerID: readerID}
	loanID, ok := s.store.openOriginals[key]
	if !ok {
		return ErrLoanNotFound
	}

	loan := s.store.loans[loanID]

	s.closeLoan(loan, reader, when)
	delete(s.store.originalsOut, bookID)
	delete(s.store.openOriginals, key)

	s.logger.LogAttrs(ctx, slog.LevelDebug, "Original returned",
		logger.LoanID(loan.ID),
		logger.BookID(bookID),
		logger.ReaderID(readerID),
		slog.Int("late_days", loan.LateDays()),
	)

	s.notifyAvailable(ctx, bookID)
	return nil
}

// closeLoan stamps the return date, applies the late-return ban and drops
// the loan from the reader's active list. A late return overwrites any
// prior ban; bans are never additive.
func (s *Service) closeLoan(loan *catalog.Loan, r *catalog.Reader, when time.Time) {
	loan.Returned = &when
	if late := loan.LateDays(); late > 0 {
		ban := clock.AddDays(when, s.rules.BanMultiplier*late)
		r.BanUntil = &ban
	}
	r.ActiveLoanIDs = slices.DeleteFunc(r.ActiveLoanIDs, func(id string) bool {
		return id == loan.ID
	})
}

// notifyAvailable fans availability notices out through the notifier,
// resolving reader emails and the book title from the store. A lookup miss
// means the store lost a record a loan still references; surfacing that to
// the borrower helps nobody, so it is logged as the integrity failure it is.
func (s *Service) notifyAvailable(ctx context.Context, bookID string) {
	err := s.alerts.NotifyAvailable(ctx, bookID,
		func(id string) (string, bool) {
			r, ok := s.store.readers[id]
			if !ok {
				return "", false
			}
			return r.Email, true
		},
		func(id string) (string, bool) {
			b, ok := s.store.books[id]
			if !ok {
				return "", false
			}
			return b.Title, true
		},
	)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "Availability notification failed",
			logger.BookID(bookID),
			logger.Error(err),
		)
	}
}
