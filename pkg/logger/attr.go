package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ReaderID records the reader identifier under the key "reader_id".
func ReaderID(id string) slog.Attr {
	return slog.String("reader_id", id)
}

// BookID records the book identifier under the key "book_id".
func BookID(id string) slog.Attr {
	return slog.String("book_id", id)
}

// CopyID records the copy identifier under the key "copy_id".
func CopyID(id string) slog.Attr {
	return slog.String("copy_id", id)
}

// LoanID records the loan identifier under the key "loan_id".
func LoanID(id string) slog.Attr {
	return slog.String("loan_id", id)
}

// MessageID records an outbound message identifier under the key "message_id".
func MessageID(id string) slog.Attr {
	return slog.String("message_id", id)
}
