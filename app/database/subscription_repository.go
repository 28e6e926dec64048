package database

import (
	"context"
	"database/sql"
	"fmt"
)

// SubscriptionRepository handles database operations for subscriptions
type SubscriptionRepository struct{}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{}
}

// Create inserts a new subscription row with current timestamps. The
// composite primary key rejects a duplicate (chat, feed) pair at the
// constraint level.
func (r *SubscriptionRepository) Create(ctx context.Context, h Handle, chatID, feedID int64) (*Subscription, error) {
	var s Subscription
	err := h.QueryRowContext(ctx, `
		INSERT INTO subscriptions (chat_id, feed_id)
		VALUES ($1, $2)
		RETURNING chat_id, feed_id, created_at, updated_at
	`, chatID, feedID).Scan(&s.ChatID, &s.FeedID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return &s, nil
}

// Find retrieves a subscription by its (chat, feed) pair
func (r *SubscriptionRepository) Find(ctx context.Context, h Handle, chatID, feedID int64) (*Subscription, error) {
	var s Subscription
	err := h.QueryRowContext(ctx, `
		SELECT chat_id, feed_id, created_at, updated_at
		FROM subscriptions
		WHERE chat_id = $1 AND feed_id = $2
	`, chatID, feedID).Scan(&s.ChatID, &s.FeedID, &s.CreatedAt, &s.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &s, nil
}

// CountForChat returns the number of subscriptions owned by a chat
func (r *SubscriptionRepository) CountForChat(ctx context.Context, h Handle, chatID int64) (int, error) {
	var count int
	err := h.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM subscriptions WHERE chat_id = $1", chatID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return count, nil
}

// ListForChat returns a chat's subscriptions, oldest first
func (r *SubscriptionRepository) ListForChat(ctx context.Context, h Handle, chatID int64) ([]Subscription, error) {
	rows, err := h.QueryContext(ctx, `
		SELECT chat_id, feed_id, created_at, updated_at
		FROM subscriptions
		WHERE chat_id = $1
		ORDER BY created_at ASC
	`, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []Subscription
	for rows.Next() {
		var s Subscription
		if err := rows.Scan(&s.ChatID, &s.FeedID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscription row: %w", err)
		}
		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscription rows: %w", err)
	}

	return subs, nil
}

// Count returns the total number of subscriptions
func (r *SubscriptionRepository) Count(ctx context.Context, h Handle) (int, error) {
	var count int
	err := h.QueryRowContext(ctx, "SELECT COUNT(*) FROM subscriptions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get subscription count: %w", err)
	}
	return count, nil
}
