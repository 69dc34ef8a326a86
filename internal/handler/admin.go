package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"vocabu/internal/command"
	"vocabu/internal/domain"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

func (h *Handler) handleUsers(ctx context.Context, u Update) error {
	count, err := h.stats.UserCount(ctx)
	if err != nil {
		h.logger.Error("Failed to count users", zap.Error(err))
		return h.somethingWentWrong(ctx, u.ChatID)
	}
	return h.send(ctx, u.ChatID, fmt.Sprintf("Users count: %d", count),
		[]Button{{Text: "Ban by ID", Data: string(command.ActionBanUser)}},
	)
}

func (h *Handler) handleUsersList(ctx context.Context, u Update) error {
	users, err := h.stats.Users(ctx)
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err))
		return h.somethingWentWrong(ctx, u.ChatID)
	}

	entries := lo.Map(users, func(user domain.User, _ int) string {
		entry := fmt.Sprintf("ID: %d\nUsername: @%s\nRegion: %s\nBot: %t",
			user.ID, user.UserName, user.LanguageCode, user.IsBot)
		if user.Banned {
			entry += "\nBanned: true"
		}
		return entry + "\n--------------------\n"
	})
	return h.send(ctx, u.ChatID, "User List:\n\n"+strings.Join(entries, ""))
}

func (h *Handler) handleStatus(ctx context.Context, u Update) error {
	status := h.stats.TranslatorStatus(ctx)

	var text string
	if status.Available {
		text = fmt.Sprintf("✅ Google Translate: ONLINE\nResponse time: %dms\nIs Available: true",
			status.ResponseTime.Milliseconds())
	} else {
		text = "❌ Google Translate: OFFLINE\nError: " + lo.Ternary(status.Err != nil, fmt.Sprint(status.Err), "empty response")
	}

	return h.send(ctx, u.ChatID, "🔧 Service Status\n\n"+text+
		"\n\n💡 If offline, try again in a few minutes. Google may temporarily limit requests.")
}

func (h *Handler) handleStats(ctx context.Context, u Update) error {
	stats := h.stats.CacheStats()
	caching := lo.Ternary(stats.CachingEnabled, "Enabled ✅", "Disabled ❌")

	return h.send(ctx, u.ChatID, fmt.Sprintf(
		"📊 Translation Statistics\n\nProvider: %s\nCache Size: %d translations\nCaching: %s",
		stats.Provider, stats.Size, caching,
	))
}

func (h *Handler) handleClearCache(ctx context.Context, u Update) error {
	h.stats.ClearCache()
	return h.send(ctx, u.ChatID,
		"🗑️ Cache Cleared\n\nTranslation cache has been cleared successfully.\n"+
			"Next translations will be fetched fresh from Google Translate.")
}

// handleBanUserIDReply runs after the pending interaction was consumed
func (h *Handler) handleBanUserIDReply(ctx context.Context, u Update) error {
	if !h.auth.IsAdmin(u.ChatID) {
		return h.send(ctx, u.ChatID, msgUnauthorized)
	}

	userID, err := strconv.ParseInt(replyText(u), 10, 64)
	if err != nil {
		return h.send(ctx, u.ChatID, msgInvalidUserID)
	}
	return h.handleBan(ctx, u.ChatID, userID, true)
}
