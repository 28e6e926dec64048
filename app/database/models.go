package database

import (
	"time"
)

// Chat represents a chat record in the database. The primary key is the
// external chat identifier assigned by the messaging platform.
type Chat struct {
	ID        int64
	Kind      string
	Username  string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Chat kinds as reported by the messaging platform.
const (
	ChatKindPrivate    = "private"
	ChatKindGroup      = "group"
	ChatKindSupergroup = "supergroup"
	ChatKindChannel    = "channel"
)

// NewChat carries the chat attributes known at subscription time.
// Username, FirstName and LastName are optional; empty string means absent.
type NewChat struct {
	ID        int64
	Kind      string
	Username  string
	FirstName string
	LastName  string
}

// Feed represents a feed record in the database, keyed internally by a
// generated id and externally by its unique URL.
type Feed struct {
	ID        int64
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subscription links one chat to one feed. The (ChatID, FeedID) pair is
// unique; the composite primary key enforces it.
type Subscription struct {
	ChatID    int64
	FeedID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
