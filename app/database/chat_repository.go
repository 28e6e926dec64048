package database

import (
	"context"
	"database/sql"
	"fmt"
)

// ChatRepository handles database operations for chats
type ChatRepository struct{}

// NewChatRepository creates a new chat repository
func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

// CreateOrGet inserts a chat keyed by its external id, or returns the
// existing record. Attributes of an existing chat are refreshed so renames
// on the platform side are picked up.
func (r *ChatRepository) CreateOrGet(ctx context.Context, h Handle, chat NewChat) (*Chat, error) {
	var c Chat
	err := h.QueryRowContext(ctx, `
		INSERT INTO chats (id, kind, username, first_name, last_name)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
		ON CONFLICT (id) DO UPDATE SET
			kind = EXCLUDED.kind,
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			updated_at = NOW()
		RETURNING id, kind, COALESCE(username, ''), COALESCE(first_name, ''),
		          COALESCE(last_name, ''), created_at, updated_at
	`, chat.ID, chat.Kind, chat.Username, chat.FirstName, chat.LastName).Scan(
		&c.ID, &c.Kind, &c.Username, &c.FirstName, &c.LastName,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert chat: %w", err)
	}

	return &c, nil
}

// Find retrieves a chat by its external id
func (r *ChatRepository) Find(ctx context.Context, h Handle, id int64) (*Chat, error) {
	var c Chat
	err := h.QueryRowContext(ctx, `
		SELECT id, kind, COALESCE(username, ''), COALESCE(first_name, ''),
		       COALESCE(last_name, ''), created_at, updated_at
		FROM chats
		WHERE id = $1
	`, id).Scan(
		&c.ID, &c.Kind, &c.Username, &c.FirstName, &c.LastName,
		&c.CreatedAt, &c.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}

	return &c, nil
}

// Count returns the total number of chats
func (r *ChatRepository) Count(ctx context.Context, h Handle) (int, error) {
	var count int
	err := h.QueryRowContext(ctx, "SELECT COUNT(*) FROM chats").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get chat count: %w", err)
	}
	return count, nil
}
