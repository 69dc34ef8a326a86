package handler

import (
	"context"
	"fmt"
	"strings"

	"vocabu/internal/domain"

	"go.uber.org/zap"
)

func (h *Handler) handleStart(ctx context.Context, u Update) error {
	if u.Sender != nil {
		created, err := h.auth.EnsureUserExists(ctx, u.Sender)
		if err != nil {
			h.logger.Error("Failed to ensure user exists", zap.Int64("chat_id", u.ChatID), zap.Error(err))
			return h.somethingWentWrong(ctx, u.ChatID)
		}
		if created {
			h.logger.Info("New user started bot",
				zap.Int64("chat_id", u.ChatID),
				zap.String("username", u.Sender.UserName),
			)
		}
	}

	if h.auth.IsAdmin(u.ChatID) {
		return h.send(ctx, u.ChatID, startAdminText)
	}
	return h.send(ctx, u.ChatID, startText)
}

func (h *Handler) handleHelp(ctx context.Context, u Update) error {
	if h.auth.IsAdmin(u.ChatID) {
		return h.send(ctx, u.ChatID, helpAdminText)
	}
	return h.send(ctx, u.ChatID, helpText)
}

func (h *Handler) handleVocabulary(ctx context.Context, u Update) error {
	words, err := h.words.Vocabulary(ctx, u.ChatID)
	if err != nil {
		h.logger.Error("Failed to load vocabulary", zap.Int64("chat_id", u.ChatID), zap.Error(err))
		return h.somethingWentWrong(ctx, u.ChatID)
	}
	return h.send(ctx, u.ChatID, wordsTable(vocabularyHeader, words, true))
}

func (h *Handler) handleLearned(ctx context.Context, u Update) error {
	words, err := h.words.Learned(ctx, u.ChatID)
	if err != nil {
		h.logger.Error("Failed to load learned words", zap.Int64("chat_id", u.ChatID), zap.Error(err))
		return h.somethingWentWrong(ctx, u.ChatID)
	}
	return h.send(ctx, u.ChatID, wordsTable(learnedHeader, words, false))
}

func wordsTable(header string, words []domain.Word, withScore bool) string {
	if len(words) == 0 {
		return header + "\n" + msgNothingYet
	}

	var sb strings.Builder
	sb.WriteString(header)
	for _, w := range words {
		sb.WriteString(w.English)
		sb.WriteString("  ➜  ")
		sb.WriteString(w.Translation)
		if withScore {
			fmt.Fprintf(&sb, "  -  %d%%", w.Score)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (h *Handler) handleDictionaryInfo(ctx context.Context, u Update) error {
	count, err := h.stats.DictionarySize(ctx)
	if err != nil {
		h.logger.Error("Failed to count dictionary", zap.Error(err))
		return h.somethingWentWrong(ctx, u.ChatID)
	}
	return h.send(ctx, u.ChatID, fmt.Sprintf("🔧 Dictionary Info\n\nWords count: %d", count))
}

func (h *Handler) handleClearVocabulary(ctx context.Context, u Update) error {
	if err := h.words.ClearVocabulary(ctx, u.ChatID); err != nil {
		h.logger.Error("Failed to clear vocabulary", zap.Int64("chat_id", u.ChatID), zap.Error(err))
		return h.somethingWentWrong(ctx, u.ChatID)
	}
	return h.send(ctx, u.ChatID, "🗑️ Vocabulary Cleared\n\nYour vocabulary has been cleared successfully.")
}
