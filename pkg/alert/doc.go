// Package alert notifies waiting readers when a book becomes available
// again.
//
// A Notifier keeps a per-book set of interested readers and, when told a
// book's copy or original returned, emails each of them through a pluggable
// email.EmailSender. Without a sender every notification is a silent no-op,
// which makes an unconfigured Notifier safe to wire everywhere.
//
// The Notifier is an owned component: construct one per application or test
// context and pass it to whoever completes returns. It is not process-global
// state, so independent scenarios cannot leak subscriptions into each other.
//
//	notifier := alert.New(alert.WithSender(email.NewConsoleSender(os.Stdout)))
//	notifier.Subscribe("B1", "R2")
//
//	// later, when a copy of B1 comes back:
//	err := notifier.NotifyAvailable(ctx, "B1", emailByReader, titleByBook)
//
// Readers stay subscribed after being notified; every future availability
// event notifies them again until they unsubscribe.
package alert
