package postgres

import (
	"context"
	"database/sql"
	"testing"

	"vocabu/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exerciseRowColumns = []string{"chat_id", "word_id", "eng_to_target", "english", "translation", "options", "outcomes"}

func newTestExercise() *domain.Exercise {
	return &domain.Exercise{
		ChatID:      1,
		WordID:      3,
		EngToTarget: true,
		English:     "cat",
		Translation: "кіт",
		Options:     []string{"Пес", "Кіт", "Сонце", "Дім"},
		Outcomes: []domain.Outcome{
			domain.OutcomeWrong, domain.OutcomeCorrect, domain.OutcomeWrong, domain.OutcomeWrong,
		},
	}
}

func TestExerciseRepo_Create(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "stored", affected: 1, expected: true},
		{name: "chat already has one", affected: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewExerciseRepo(db)

			mock.ExpectExec("INSERT INTO exercises (.+) ON CONFLICT \\(chat_id\\) DO NOTHING").
				WithArgs(int64(1), int64(3), true, "cat", "кіт", sqlmock.AnyArg(), sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			created, err := repo.Create(context.Background(), newTestExercise())

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, created)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestExerciseRepo_Find(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExerciseRepo(db)

	rows := sqlmock.NewRows(exerciseRowColumns).AddRow(
		1, 3, true, "cat", "кіт",
		"{Пес,Кіт,Сонце,Дім}",
		"{WRONG_EXERCISE_ANSWER,CORRECT_EXERCISE_ANSWER,WRONG_EXERCISE_ANSWER,WRONG_EXERCISE_ANSWER}",
	)

	mock.ExpectQuery("SELECT (.+) FROM exercises WHERE chat_id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	exercise, err := repo.Find(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, newTestExercise(), exercise)
	assert.Equal(t, 1, exercise.CorrectIndex())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExerciseRepo_Take_None(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExerciseRepo(db)

	mock.ExpectQuery("DELETE FROM exercises WHERE chat_id = \\$1 RETURNING").
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)

	exercise, err := repo.Take(context.Background(), 1)

	assert.NoError(t, err)
	assert.Nil(t, exercise)
	assert.NoError(t, mock.ExpectationsWereMet())
}
