package alert

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/librakit/pkg/email"
	"github.com/dmitrymomot/librakit/pkg/logger"
)

// LookupFunc resolves an identifier to a display value, such as a reader's
// email address or a book's title. The boolean reports whether the id is
// known.
type LookupFunc func(id string) (string, bool)

// Notifier tracks which readers want to hear about a book becoming
// available and fans an email out to them when it does.
type Notifier struct {
	mu     sync.Mutex
	subs   map[string]map[string]struct{} // bookID -> set of readerIDs
	sender email.EmailSender
	logger *slog.Logger
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithSender sets the delivery mechanism.
func WithSender(s email.EmailSender) Option {
	return func(n *Notifier) { n.sender = s }
}

// WithLogger sets the logger used for delivery diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.logger = l
		}
	}
}

// New creates a Notifier. Without WithSender it accepts subscriptions but
// delivers nothing.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		subs:   make(map[string]map[string]struct{}),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SetSender swaps the delivery mechanism. A nil sender disables delivery.
func (n *Notifier) SetSender(s email.EmailSender) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sender = s
}

// Subscribe registers readerID's interest in bookID. Set semantics:
// subscribing twice is a no-op.
func (n *Notifier) Subscribe(bookID, readerID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	set, ok := n.subs[bookID]
	if !ok {
		set = make(map[string]struct{})
		n.subs[bookID] = set
	}
	set[readerID] = struct{}{}
}

// Unsubscribe removes readerID's interest in bookID. Unknown pairs are
// no-ops.
func (n *Notifier) Unsubscribe(bookID, readerID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if set, ok := n.subs[bookID]; ok {
		delete(set, readerID)
		if len(set) == 0 {
			delete(n.subs, bookID)
		}
	}
}

// Subscribers returns how many readers are currently waiting on bookID.
func (n *Notifier) Subscribers(bookID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs[bookID])
}

// NotifyAvailable emails every reader subscribed to bookID that the book can
// be requested again, resolving addresses and the title through the supplied
// lookups. With no sender configured it is a no-op. Iteration order over
// subscribers is unspecified.
//
// All lookups are resolved before anything is sent; a miss returns
// ErrDirectoryLookup with nothing delivered. Individual send failures are
// best-effort: logged, never returned. Subscribers stay subscribed, so the
// next availability event notifies them again.
func (n *Notifier) NotifyAvailable(ctx context.Context, bookID string, emailByReader, titleByBook LookupFunc) error {
	n.mu.Lock()
	sender := n.sender
	ids := make([]string, 0, len(n.subs[bookID]))
	for rid := range n.subs[bookID] {
		ids = append(ids, rid)
	}
	n.mu.Unlock()

	if sender == nil || len(ids) == 0 {
		return nil
	}

	title, ok := titleByBook(bookID)
	if !ok {
		return fmt.Errorf("%w: book %s", ErrDirectoryLookup, bookID)
	}

	addrs := make([]string, len(ids))
	for i, rid := range ids {
		addr, ok := emailByReader(rid)
		if !ok {
			return fmt.Errorf("%w: reader %s", ErrDirectoryLookup, rid)
		}
		addrs[i] = addr
	}

	for i, rid := range ids {
		msgID := uuid.New().String()

		err := sender.SendEmail(ctx, email.SendEmailParams{
			SendTo:  addrs[i],
			Subject: "Available: " + title,
			Body:    "You can request it now.",
			Tag:     "availability",
		})
		if err != nil {
			// Best effort: the return already completed and a failed email
			// must not undo it.
			n.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to deliver availability notice",
				logger.MessageID(msgID),
				logger.BookID(bookID),
				logger.ReaderID(rid),
				logger.Error(err),
			)
			continue
		}

		n.logger.LogAttrs(ctx, slog.LevelDebug, "Availability notice sent",
			logger.MessageID(msgID),
			logger.BookID(bookID),
			logger.ReaderID(rid),
		)
	}

	return nil
}

// Reset clears all subscriptions and detaches the sender, giving an
// independent scenario a clean slate.
func (n *Notifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = make(map[string]map[string]struct{})
	n.sender = nil
}
