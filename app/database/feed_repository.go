package database

import (
	"context"
	"database/sql"
	"fmt"
)

// FeedRepository handles database operations for feeds
type FeedRepository struct{}

// NewFeedRepository creates a new feed repository
func NewFeedRepository() *FeedRepository {
	return &FeedRepository{}
}

// CreateOrGet inserts a feed keyed by its URL, or returns the existing
// record. The no-op update makes RETURNING yield the existing row on
// conflict.
func (r *FeedRepository) CreateOrGet(ctx context.Context, h Handle, url string) (*Feed, error) {
	var f Feed
	err := h.QueryRowContext(ctx, `
		INSERT INTO feeds (url)
		VALUES ($1)
		ON CONFLICT (url) DO UPDATE SET url = EXCLUDED.url
		RETURNING id, url, created_at, updated_at
	`, url).Scan(&f.ID, &f.URL, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert feed: %w", err)
	}

	return &f, nil
}

// Find retrieves a feed by its internal id
func (r *FeedRepository) Find(ctx context.Context, h Handle, id int64) (*Feed, error) {
	var f Feed
	err := h.QueryRowContext(ctx, `
		SELECT id, url, created_at, updated_at
		FROM feeds
		WHERE id = $1
	`, id).Scan(&f.ID, &f.URL, &f.CreatedAt, &f.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}

	return &f, nil
}

// Count returns the total number of feeds
func (r *FeedRepository) Count(ctx context.Context, h Handle) (int, error) {
	var count int
	err := h.QueryRowContext(ctx, "SELECT COUNT(*) FROM feeds").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get feed count: %w", err)
	}
	return count, nil
}
