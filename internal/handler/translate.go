package handler

import (
	"context"
	"errors"
	"html"

	"vocabu/internal/command"
	"vocabu/internal/domain"

	"go.uber.org/zap"
)

func (h *Handler) handleTranslate(ctx context.Context, u Update) error {
	staged, detected, err := h.words.Translate(ctx, u.ChatID, u.Text)

	var te *domain.TranslationError
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrTooManyWords):
		return h.send(ctx, u.ChatID, msgTooManyWords)
	case errors.Is(err, domain.ErrUnsupportedLanguage):
		h.logger.Debug("Unsupported language detected", zap.Int64("chat_id", u.ChatID))
		return h.send(ctx, u.ChatID, msgUnsupported)
	case errors.As(err, &te):
		h.logger.Warn("Translation failed",
			zap.Int64("chat_id", u.ChatID),
			zap.String("kind", string(te.Kind)),
			zap.Error(err),
		)
		return h.send(ctx, u.ChatID, "❌ Translation Failed\n\nError: "+te.Error())
	default:
		h.logger.Error("Failed to translate", zap.Int64("chat_id", u.ChatID), zap.Error(err))
		return h.somethingWentWrong(ctx, u.ChatID)
	}

	rows := [][]Button{
		{{Text: "Add to vocabulary", Data: command.Data(command.ActionAddToVocabulary, staged.ID)}},
	}
	if detected == domain.LanguageEnglish {
		rows = append(rows, []Button{
			{Text: "Add with own translation", Data: command.Data(command.ActionAddOwnTranslation, staged.ID)},
		})
	}

	text := html.EscapeString(domain.FormatPair(staged.English, staged.Translation)) +
		"\n\n<i>Note: Translated by " + staged.Method.DisplayName() + "</i>"
	return h.sendHTML(ctx, u.ChatID, text, rows...)
}
