package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"feedgram/app/database"
	"feedgram/app/subscription"
)

func NewHandler(service SubscriptionServiceInterface, store StoreInterface) *Handler {
	return &Handler{
		service: service,
		store:   store,
	}
}

type createSubscriptionRequest struct {
	ChatID    int64  `json:"chat_id" binding:"required"`
	Kind      string `json:"kind" binding:"required"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	URL       string `json:"url"`
}

type subscriptionResponse struct {
	ChatID    int64     `json:"chat_id"`
	FeedID    int64     `json:"feed_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Handler) CreateSubscription(c *gin.Context) {
	var req createSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	chat := database.NewChat{
		ID:        req.ChatID,
		Kind:      req.Kind,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	sub, err := h.service.CreateSubscription(c.Request.Context(), chat, req.URL)
	if err != nil {
		status, message := subscriptionErrorStatus(err)
		if status == http.StatusInternalServerError {
			slog.Error("Subscription creation failed", "chat_id", req.ChatID, "url", req.URL, "error", err)
		}
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, subscriptionResponse{
		ChatID:    sub.ChatID,
		FeedID:    sub.FeedID,
		CreatedAt: sub.CreatedAt,
		UpdatedAt: sub.UpdatedAt,
	})
}

func (h *Handler) ListSubscriptions(c *gin.Context) {
	chatID, err := strconv.ParseInt(c.Param("chat_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat id"})
		return
	}

	chat, err := h.store.FindChat(c.Request.Context(), chatID)
	if err != nil {
		slog.Error("Database error", "operation", "find_chat", "chat_id", chatID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if chat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		return
	}

	subs, err := h.store.ListChatSubscriptions(c.Request.Context(), chatID)
	if err != nil {
		slog.Error("Database error", "operation", "list_subscriptions", "chat_id", chatID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	out := make([]gin.H, 0, len(subs))
	for _, sub := range subs {
		out = append(out, gin.H{
			"feed_id":    sub.FeedID,
			"url":        sub.FeedURL,
			"created_at": sub.CreatedAt,
			"updated_at": sub.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"chat_id":       chatID,
		"subscriptions": out,
		"total":         len(out),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if stats, err := h.store.Stats(c.Request.Context()); err == nil {
		health["chats"] = stats.Chats
		health["feeds"] = stats.Feeds
		health["subscriptions"] = stats.Subscriptions
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		slog.Error("Database error", "operation", "stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chats":         stats.Chats,
		"feeds":         stats.Feeds,
		"subscriptions": stats.Subscriptions,
	})
}

// subscriptionErrorStatus maps the subscription error taxonomy to HTTP
// statuses. Storage failures stay opaque to the caller.
func subscriptionErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, subscription.ErrRSSURLNotProvided),
		errors.Is(err, subscription.ErrInvalidRSSURL):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, subscription.ErrURLIsNotRSS):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, subscription.ErrSubscriptionAlreadyExists),
		errors.Is(err, subscription.ErrSubscriptionCountLimit):
		return http.StatusConflict, err.Error()
	case errors.Is(err, subscription.ErrTelegram):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, "Database error"
	}
}
