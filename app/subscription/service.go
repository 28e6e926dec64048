package subscription

import (
	"context"
	"errors"
	"log/slog"

	"feedgram/app/database"
)

// CountLimit is the maximum number of subscriptions a single chat may own.
const CountLimit = 3

// ValidatorInterface is the URL/feed validation contract the service
// depends on.
type ValidatorInterface interface {
	Validate(ctx context.Context, rawURL string) error
}

var _ ValidatorInterface = (*Validator)(nil)

// Service orchestrates subscription creation against the storage layer
type Service struct {
	storage   database.Storage
	validator ValidatorInterface
}

// NewService creates a new subscription service
func NewService(storage database.Storage, validator ValidatorInterface) *Service {
	return &Service{
		storage:   storage,
		validator: validator,
	}
}

// CreateSubscription subscribes a chat to a feed URL. An empty rssURL means
// the caller provided none. Validation runs before any storage access; the
// chat upsert, feed upsert, duplicate check, cap check and insert then
// execute as one atomic unit of work. A rejected call leaves no rows
// behind, including chat or feed records upserted for the first time
// within the same call. Storage failures come back as *DBError; everything
// else of the taxonomy passes through unchanged.
func (s *Service) CreateSubscription(ctx context.Context, chat database.NewChat, rssURL string) (*database.Subscription, error) {
	if rssURL == "" {
		return nil, ErrRSSURLNotProvided
	}

	if err := s.validator.Validate(ctx, rssURL); err != nil {
		return nil, err
	}

	var created *database.Subscription
	err := s.storage.WithinTx(ctx, func(tx database.TxStorage) error {
		chatRecord, err := tx.CreateOrGetChat(ctx, chat)
		if err != nil {
			return &DBError{Err: err}
		}

		feedRecord, err := tx.CreateOrGetFeed(ctx, rssURL)
		if err != nil {
			return &DBError{Err: err}
		}

		existing, err := tx.FindSubscription(ctx, chatRecord.ID, feedRecord.ID)
		if err != nil {
			return &DBError{Err: err}
		}
		if existing != nil {
			return ErrSubscriptionAlreadyExists
		}

		count, err := tx.CountSubscriptions(ctx, chatRecord.ID)
		if err != nil {
			return &DBError{Err: err}
		}
		if count >= CountLimit {
			return ErrSubscriptionCountLimit
		}

		created, err = tx.CreateSubscription(ctx, chatRecord.ID, feedRecord.ID)
		if err != nil {
			return &DBError{Err: err}
		}

		return nil
	})
	if err != nil {
		return nil, asSubscriptionError(err)
	}

	slog.Info("Subscription created", "chat_id", created.ChatID, "feed_id", created.FeedID, "url", rssURL)

	return created, nil
}

// asSubscriptionError maps an error escaping the unit of work onto the
// taxonomy. Begin and commit failures surface outside the callback and are
// storage failures like any other.
func asSubscriptionError(err error) error {
	if errors.Is(err, ErrSubscriptionAlreadyExists) || errors.Is(err, ErrSubscriptionCountLimit) {
		return err
	}

	var dbErr *DBError
	if errors.As(err, &dbErr) {
		return err
	}

	return &DBError{Err: err}
}
