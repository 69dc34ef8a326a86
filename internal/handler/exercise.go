package handler

import (
	"context"
	"errors"

	"vocabu/internal/command"
	"vocabu/internal/domain"
	"vocabu/internal/service"

	"github.com/samber/lo"
)

func (h *Handler) handleExercise(ctx context.Context, u Update) error {
	exercise, err := h.exercises.StartOrResume(ctx, u.ChatID)
	switch {
	case errors.Is(err, domain.ErrEmptyVocabulary):
		return h.send(ctx, u.ChatID, msgEmptyVocabulary)
	case errors.Is(err, domain.ErrNotEnoughOptions):
		return h.send(ctx, u.ChatID, msgNotEnoughOptions)
	case err != nil:
		h.logFailure("Failed to start exercise", u.ChatID, err)
		return h.somethingWentWrong(ctx, u.ChatID)
	}

	return h.send(ctx, u.ChatID, exerciseQuestion(exercise), exerciseKeyboard(exercise)...)
}

func exerciseQuestion(e *domain.Exercise) string {
	flag := domain.LanguageUkrainian.Flag()
	if e.EngToTarget {
		flag = domain.LanguageEnglish.Flag()
	}
	return "Choose the correct translation for:\n\n     " + flag + " " + e.Question()
}

// exerciseKeyboard lays options out two per row with a skip row below
func exerciseKeyboard(e *domain.Exercise) [][]Button {
	buttons := make([]Button, 0, len(e.Options))
	for i, option := range e.Options {
		buttons = append(buttons, Button{Text: option, Data: string(e.Outcomes[i])})
	}

	rows := lo.Chunk(buttons, 2)
	return append(rows, []Button{{Text: "Skip ->", Data: string(command.ActionSkipExercise)}})
}

func (h *Handler) handleExerciseAnswer(ctx context.Context, u Update, outcome domain.Outcome) error {
	result, err := h.exercises.Answer(ctx, u.ChatID, outcome)
	if err != nil {
		h.logFailure("Failed to resolve exercise", u.ChatID, err)
		return h.somethingWentWrong(ctx, u.ChatID)
	}
	return h.sendExerciseResult(ctx, u.ChatID, result)
}

func (h *Handler) handleSkipExercise(ctx context.Context, u Update) error {
	result, err := h.exercises.Skip(ctx, u.ChatID)
	if err != nil {
		h.logFailure("Failed to skip exercise", u.ChatID, err)
		return h.somethingWentWrong(ctx, u.ChatID)
	}
	return h.sendExerciseResult(ctx, u.ChatID, result)
}

func (h *Handler) sendExerciseResult(ctx context.Context, chatID int64, result *service.ExerciseResult) error {
	return h.send(ctx, chatID, exerciseResultText(result),
		[]Button{{Text: "Continue ->", Data: string(command.ActionStartExercise)}},
	)
}

func exerciseResultText(result *service.ExerciseResult) string {
	pair := domain.FormatPair(result.Exercise.English, result.Exercise.Translation)

	switch result.Outcome {
	case service.ExerciseCorrect:
		text := "✅ Correct!\n\n" + pair + "     + 10%"
		if result.Learned {
			text += "\n\nMarked as /learned! 🎉"
		}
		return text
	case service.ExerciseWrong:
		return "❌ Incorrect. The correct answer is:\n\n" + pair + "     - 10%"
	default:
		return "⏭ Skipped\nThe correct answer is:\n\n" + pair + "     - 5%"
	}
}
