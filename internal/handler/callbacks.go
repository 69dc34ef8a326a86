package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"vocabu/internal/command"
	"vocabu/internal/domain"
	"vocabu/internal/service"

	"go.uber.org/zap"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

func (h *Handler) dispatchCallback(ctx context.Context, u Update, cb command.Callback) error {
	switch cb.Action {
	case command.ActionStartExercise:
		return h.handleExercise(ctx, u)
	case command.ActionSkipExercise:
		return h.handleSkipExercise(ctx, u)
	case command.ActionCorrectAnswer:
		return h.handleExerciseAnswer(ctx, u, domain.OutcomeCorrect)
	case command.ActionWrongAnswer:
		return h.handleExerciseAnswer(ctx, u, domain.OutcomeWrong)
	case command.ActionBanUser:
		if !cb.HasID {
			return h.handleBanUserPrompt(ctx, u)
		}
		return h.handleBan(ctx, u.ChatID, cb.ID, true)
	}

	if !cb.HasID {
		h.logger.Warn("Callback without id", zap.String("action", string(cb.Action)))
		return h.somethingWentWrong(ctx, u.ChatID)
	}

	switch cb.Action {
	case command.ActionAddToVocabulary:
		return h.handleAddToVocabulary(ctx, u, cb.ID)
	case command.ActionAddOwnTranslation:
		return h.handleAddOwnTranslation(ctx, u, cb.ID)
	case command.ActionAddToDictionary:
		return h.handleAddToDictionary(ctx, u, cb.ID)
	case command.ActionUnbanUser:
		return h.handleBan(ctx, u.ChatID, cb.ID, false)
	}

	return h.somethingWentWrong(ctx, u.ChatID)
}

func (h *Handler) handleAddToVocabulary(ctx context.Context, u Update, stagedID int64) error {
	added, err := h.words.AddStaged(ctx, u.ChatID, stagedID)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return h.send(ctx, u.ChatID, msgAlreadyExists)
	}
	if err != nil {
		h.logFailure("Failed to add staged translation", u.ChatID, err)
		return h.somethingWentWrong(ctx, u.ChatID)
	}

	h.suggest(ctx, u.ChatID, added)

	return h.send(ctx, u.ChatID,
		"Added new word to vocabulary:\n\n"+domain.FormatPair(added.Word.English, added.Word.Translation))
}

func (h *Handler) handleAddOwnTranslation(ctx context.Context, u Update, stagedID int64) error {
	err := h.words.RequestOwnTranslation(ctx, u.ChatID, stagedID)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return h.send(ctx, u.ChatID, msgAlreadyExists)
	}
	if err != nil {
		h.logFailure("Failed to request own translation", u.ChatID, err)
		return h.somethingWentWrong(ctx, u.ChatID)
	}
	return h.send(ctx, u.ChatID, msgSendOwn)
}

// handleOwnTranslationReply runs after the pending interaction was consumed
func (h *Handler) handleOwnTranslationReply(ctx context.Context, u Update, stagedID int64) error {
	translation := replyText(u)
	if translation == "" {
		return h.somethingWentWrong(ctx, u.ChatID)
	}

	added, err := h.words.AddOwnTranslation(ctx, u.ChatID, stagedID, translation)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return h.send(ctx, u.ChatID, msgAlreadyExists)
	}
	if err != nil {
		h.logFailure("Failed to add own translation", u.ChatID, err)
		return h.somethingWentWrong(ctx, u.ChatID)
	}

	h.suggest(ctx, u.ChatID, added)

	return h.send(ctx, u.ChatID,
		"Added word with own translation to vocabulary:\n\n"+domain.FormatPair(added.Word.English, added.Word.Translation))
}

// suggest forwards externally translated words to the admin. Failures only get logged.
func (h *Handler) suggest(ctx context.Context, chatID int64, added *service.AddedWord) {
	suggestion, err := h.moderation.Suggest(ctx, chatID, added)
	if err != nil {
		h.logger.Error("Failed to build word suggestion", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}
	if suggestion == nil {
		return
	}

	text := fmt.Sprintf("New word suggestion from user: @%s\nID: %d\n\n%s",
		suggestion.UserName, suggestion.UserID,
		domain.FormatPair(suggestion.Word.English, suggestion.Word.Translation))

	err = h.send(ctx, h.auth.AdminChatID(), text,
		[]Button{{Text: "Add to dictionary", Data: command.Data(command.ActionAddToDictionary, suggestion.Word.ID)}},
		[]Button{{Text: "Ban user", Data: command.Data(command.ActionBanUser, suggestion.UserID)}},
	)
	if err != nil {
		h.logger.Error("Failed to send word suggestion to admin", zap.Error(err))
	}
}

func (h *Handler) handleAddToDictionary(ctx context.Context, u Update, wordID int64) error {
	entry, err := h.moderation.ApproveWord(ctx, wordID)
	if err != nil {
		h.logFailure("Failed to add word to dictionary", u.ChatID, err)
		return h.somethingWentWrong(ctx, u.ChatID)
	}
	return h.send(ctx, u.ChatID,
		"The word has been added to the dictionary:\n\n"+domain.FormatPair(entry.English, entry.Translation))
}

func (h *Handler) handleBan(ctx context.Context, chatID, userID int64, ban bool) error {
	action := h.moderation.Unban
	if ban {
		action = h.moderation.Ban
	}

	result, err := action(ctx, userID)
	if err != nil {
		h.logFailure("Failed to update ban", chatID, err)
		return h.somethingWentWrong(ctx, chatID)
	}
	if !result.Exists {
		return h.send(ctx, chatID, fmt.Sprintf("User with ID: %d, does not exist.", userID))
	}

	if !ban {
		return h.send(ctx, chatID, fmt.Sprintf("User:\n@%s\nID: %d\n\nhas been unbanned", result.UserName, userID))
	}
	return h.send(ctx, chatID,
		fmt.Sprintf("User:\n@%s\nID: %d\n\nhas been banned", result.UserName, userID),
		[]Button{{Text: "Unban", Data: command.Data(command.ActionUnbanUser, userID)}},
	)
}

func (h *Handler) handleBanUserPrompt(ctx context.Context, u Update) error {
	err := h.pendingRepo.Put(ctx, domain.PendingInteraction{ChatID: u.ChatID, Kind: domain.InteractionBanUserID})
	if err != nil {
		h.logFailure("Failed to store pending interaction", u.ChatID, err)
		return h.somethingWentWrong(ctx, u.ChatID)
	}
	return h.send(ctx, u.ChatID, msgSendBanUserID)
}

func (h *Handler) logFailure(msg string, chatID int64, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.logger.Warn(msg, zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}
	h.logger.Error(msg, zap.Int64("chat_id", chatID), zap.Error(err))
}
