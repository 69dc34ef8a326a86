package handler

import (
	"context"

	"vocabu/internal/metrics"
	"vocabu/internal/repository"
	"vocabu/internal/service"

	"go.uber.org/zap"
)

// Services groups the services used by the handler
type Services struct {
	Auth       *service.AuthService
	Words      *service.WordService
	Exercises  *service.ExerciseService
	Moderation *service.ModerationService
	Stats      *service.StatsService
}

// Handler routes chat updates to services and replies through a Messenger
type Handler struct {
	auth        *service.AuthService
	words       *service.WordService
	exercises   *service.ExerciseService
	moderation  *service.ModerationService
	stats       *service.StatsService
	pendingRepo repository.PendingInteractionRepository
	messenger   Messenger
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	services Services,
	pendingRepo repository.PendingInteractionRepository,
	messenger Messenger,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		auth:        services.Auth,
		words:       services.Words,
		exercises:   services.Exercises,
		moderation:  services.Moderation,
		stats:       services.Stats,
		pendingRepo: pendingRepo,
		messenger:   messenger,
		metrics:     m,
		logger:      logger,
	}
}

func (h *Handler) send(ctx context.Context, chatID int64, text string, buttons ...[]Button) error {
	return h.messenger.Send(ctx, Reply{ChatID: chatID, Text: text, Buttons: buttons})
}

func (h *Handler) sendHTML(ctx context.Context, chatID int64, text string, buttons ...[]Button) error {
	return h.messenger.Send(ctx, Reply{ChatID: chatID, Text: text, Buttons: buttons, HTML: true})
}

func (h *Handler) somethingWentWrong(ctx context.Context, chatID int64) error {
	return h.send(ctx, chatID, msgSomethingWentWrong)
}
