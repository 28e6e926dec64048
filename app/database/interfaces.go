package database

import (
	"context"
	"database/sql"
)

// Handle is the subset of database/sql operations the repositories need.
// Both *sql.DB and *sql.Tx satisfy it, so every repository method receives
// its storage handle explicitly and works unchanged inside a transaction.
type Handle interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Handle = (*sql.DB)(nil)
	_ Handle = (*sql.Tx)(nil)
)

// Storage is the unit-of-work entry point consumed by the subscription
// service. All mutations for one call go through a single WithinTx.
type Storage interface {
	WithinTx(ctx context.Context, fn func(tx TxStorage) error) error
}

// TxStorage exposes the storage operations available inside one atomic unit
// of work. Either every mutation performed through it becomes visible, or
// none do.
type TxStorage interface {
	CreateOrGetChat(ctx context.Context, chat NewChat) (*Chat, error)
	CreateOrGetFeed(ctx context.Context, url string) (*Feed, error)
	FindSubscription(ctx context.Context, chatID, feedID int64) (*Subscription, error)
	CountSubscriptions(ctx context.Context, chatID int64) (int, error)
	CreateSubscription(ctx context.Context, chatID, feedID int64) (*Subscription, error)
}

// Stats holds entity counts for the stats endpoint
type Stats struct {
	Chats         int
	Feeds         int
	Subscriptions int
}

// ChatSubscription is a subscription joined with its feed URL
type ChatSubscription struct {
	Subscription
	FeedURL string
}
