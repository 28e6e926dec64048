package api

import (
	"context"

	"feedgram/app/database"
	"feedgram/app/subscription"
)

// SubscriptionServiceInterface is the subscription core as the HTTP surface
// sees it.
type SubscriptionServiceInterface interface {
	CreateSubscription(ctx context.Context, chat database.NewChat, rssURL string) (*database.Subscription, error)
}

var _ SubscriptionServiceInterface = (*subscription.Service)(nil)

// StoreInterface covers the read-only storage operations the HTTP surface
// needs.
type StoreInterface interface {
	FindChat(ctx context.Context, id int64) (*database.Chat, error)
	ListChatSubscriptions(ctx context.Context, chatID int64) ([]database.ChatSubscription, error)
	Stats(ctx context.Context) (database.Stats, error)
}

var _ StoreInterface = (*database.Store)(nil)

type Handler struct {
	service SubscriptionServiceInterface
	store   StoreInterface
}
