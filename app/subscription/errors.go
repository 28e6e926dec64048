// Package subscription implements the subscription creation pipeline:
// URL/feed validation, then an atomic chat upsert, feed upsert, duplicate
// and cap check, and subscription insert against the storage layer.
package subscription

import (
	"errors"
)

// The subscription error taxonomy. Input-shape errors are returned before
// any storage access; business-rule errors abort the unit of work.
var (
	ErrRSSURLNotProvided         = errors.New("rss url not provided")
	ErrInvalidRSSURL             = errors.New("invalid rss url")
	ErrURLIsNotRSS               = errors.New("url is not rss")
	ErrSubscriptionAlreadyExists = errors.New("subscription already exists")
	ErrSubscriptionCountLimit    = errors.New("subscription count limit reached")

	// ErrTelegram is reserved for failures originating from the chat
	// platform. The validation/storage path never raises it, but callers
	// extending the pipeline with platform calls surface failures through
	// this kind.
	ErrTelegram = errors.New("telegram error")
)

// DBError wraps a storage-layer failure. The enclosing unit of work has
// been rolled back by the time it is returned.
type DBError struct {
	Err error
}

func (e *DBError) Error() string {
	return "db error: " + e.Err.Error()
}

func (e *DBError) Unwrap() error {
	return e.Err
}
