package handler

import (
	"context"
	"strings"

	"vocabu/internal/command"
	"vocabu/internal/domain"

	"go.uber.org/zap"
)

// HandleText routes a free-text message. A pending interaction of the chat
// is consumed first and receives the text even when it looks like a command.
func (h *Handler) HandleText(ctx context.Context, u Update) error {
	h.metrics.Update("text")

	pending, err := h.pendingRepo.Take(ctx, u.ChatID)
	if err != nil {
		h.logger.Error("Failed to take pending interaction", zap.Int64("chat_id", u.ChatID), zap.Error(err))
		return h.somethingWentWrong(ctx, u.ChatID)
	}
	if pending != nil {
		return h.handlePending(ctx, u, pending)
	}

	cmd := command.Parse(u.Text)
	if cmd == command.Unknown {
		if command.IsCommandText(u.Text) {
			return h.send(ctx, u.ChatID, msgUnknownCommand)
		}
		return h.handleTranslate(ctx, u)
	}

	if cmd.AdminOnly() && !h.auth.IsAdmin(u.ChatID) {
		h.logger.Warn("Unauthorized command",
			zap.Int64("chat_id", u.ChatID),
			zap.String("command", cmd.String()),
		)
		return h.send(ctx, u.ChatID, msgUnauthorized)
	}

	return h.dispatchCommand(ctx, u, cmd)
}

func (h *Handler) dispatchCommand(ctx context.Context, u Update, cmd command.Command) error {
	switch cmd {
	case command.Start:
		return h.handleStart(ctx, u)
	case command.Help:
		return h.handleHelp(ctx, u)
	case command.Vocabulary:
		return h.handleVocabulary(ctx, u)
	case command.Learned:
		return h.handleLearned(ctx, u)
	case command.Exercise:
		return h.handleExercise(ctx, u)
	case command.DictionaryInfo:
		return h.handleDictionaryInfo(ctx, u)
	case command.ClearVocabulary:
		return h.handleClearVocabulary(ctx, u)
	case command.Stats:
		return h.handleStats(ctx, u)
	case command.Status:
		return h.handleStatus(ctx, u)
	case command.ClearCache:
		return h.handleClearCache(ctx, u)
	case command.Users:
		return h.handleUsers(ctx, u)
	case command.UsersList:
		return h.handleUsersList(ctx, u)
	}
	return h.send(ctx, u.ChatID, msgUnknownCommand)
}

// HandleCallback routes an inline button tap
func (h *Handler) HandleCallback(ctx context.Context, u Update) error {
	h.metrics.Update("callback")

	cb := command.ParseCallback(cleanCallbackData(u.Data))
	if cb.Action == command.ActionUnknown {
		h.logger.Warn("Unknown callback", zap.Int64("chat_id", u.ChatID), zap.String("data", u.Data))
		return h.somethingWentWrong(ctx, u.ChatID)
	}

	if cb.Action.AdminOnly() && !h.auth.IsAdmin(u.ChatID) {
		h.logger.Warn("Unauthorized callback",
			zap.Int64("chat_id", u.ChatID),
			zap.String("action", string(cb.Action)),
		)
		return h.send(ctx, u.ChatID, msgUnauthorized)
	}

	return h.dispatchCallback(ctx, u, cb)
}

func (h *Handler) handlePending(ctx context.Context, u Update, pending *domain.PendingInteraction) error {
	h.logger.Debug("Handling pending interaction",
		zap.Int64("chat_id", u.ChatID),
		zap.String("kind", string(pending.Kind)),
	)

	switch pending.Kind {
	case domain.InteractionOwnTranslation:
		return h.handleOwnTranslationReply(ctx, u, pending.Payload)
	case domain.InteractionBanUserID:
		return h.handleBanUserIDReply(ctx, u)
	}

	h.logger.Warn("Unknown pending interaction", zap.String("kind", string(pending.Kind)))
	return h.somethingWentWrong(ctx, u.ChatID)
}

func replyText(u Update) string {
	return strings.TrimSpace(u.Text)
}
