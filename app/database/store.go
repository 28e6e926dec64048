package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Store bundles the repositories over one connection pool and implements
// the Storage unit-of-work contract.
type Store struct {
	db            *DB
	chats         *ChatRepository
	feeds         *FeedRepository
	subscriptions *SubscriptionRepository
}

var _ Storage = (*Store)(nil)

// NewStore creates a new store over the given connection
func NewStore(db *DB) *Store {
	return &Store{
		db:            db,
		chats:         NewChatRepository(),
		feeds:         NewFeedRepository(),
		subscriptions: NewSubscriptionRepository(),
	}
}

// WithinTx runs fn inside a single serializable transaction. A nil return
// commits; any error rolls back and is returned unchanged, so callers keep
// their own error taxonomy across the transaction boundary. Serializable
// isolation plus the (chat_id, feed_id) primary key keep concurrent writers
// from slipping past the duplicate and cap checks.
func (s *Store) WithinTx(ctx context.Context, fn func(tx TxStorage) error) error {
	sqlTx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&storeTx{store: s, handle: sqlTx}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			slog.Error("Transaction rollback failed", "error", rbErr)
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// FindChat retrieves a chat by its external id, nil when unknown
func (s *Store) FindChat(ctx context.Context, id int64) (*Chat, error) {
	return s.chats.Find(ctx, s.db, id)
}

// ListChatSubscriptions returns a chat's subscriptions joined with their
// feed URLs. The per-chat cap keeps the follow-up feed lookups bounded.
func (s *Store) ListChatSubscriptions(ctx context.Context, chatID int64) ([]ChatSubscription, error) {
	subs, err := s.subscriptions.ListForChat(ctx, s.db, chatID)
	if err != nil {
		return nil, err
	}

	out := make([]ChatSubscription, 0, len(subs))
	for _, sub := range subs {
		feed, err := s.feeds.Find(ctx, s.db, sub.FeedID)
		if err != nil {
			return nil, err
		}
		if feed == nil {
			return nil, fmt.Errorf("subscription references missing feed %d", sub.FeedID)
		}
		out = append(out, ChatSubscription{Subscription: sub, FeedURL: feed.URL})
	}

	return out, nil
}

// Stats returns entity counts for the stats endpoint
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	var err error

	if stats.Chats, err = s.chats.Count(ctx, s.db); err != nil {
		return Stats{}, err
	}
	if stats.Feeds, err = s.feeds.Count(ctx, s.db); err != nil {
		return Stats{}, err
	}
	if stats.Subscriptions, err = s.subscriptions.Count(ctx, s.db); err != nil {
		return Stats{}, err
	}

	return stats, nil
}

// storeTx is the TxStorage view of a store bound to one open transaction.
type storeTx struct {
	store  *Store
	handle Handle
}

func (t *storeTx) CreateOrGetChat(ctx context.Context, chat NewChat) (*Chat, error) {
	return t.store.chats.CreateOrGet(ctx, t.handle, chat)
}

func (t *storeTx) CreateOrGetFeed(ctx context.Context, url string) (*Feed, error) {
	return t.store.feeds.CreateOrGet(ctx, t.handle, url)
}

func (t *storeTx) FindSubscription(ctx context.Context, chatID, feedID int64) (*Subscription, error) {
	return t.store.subscriptions.Find(ctx, t.handle, chatID, feedID)
}

func (t *storeTx) CountSubscriptions(ctx context.Context, chatID int64) (int, error) {
	return t.store.subscriptions.CountForChat(ctx, t.handle, chatID)
}

func (t *storeTx) CreateSubscription(ctx context.Context, chatID, feedID int64) (*Subscription, error) {
	return t.store.subscriptions.Create(ctx, t.handle, chatID, feedID)
}
