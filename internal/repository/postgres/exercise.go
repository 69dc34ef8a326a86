package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vocabu/internal/domain"

	"github.com/lib/pq"
)

// ExerciseRepo implements repository.ExerciseRepository
type ExerciseRepo struct {
	db *sql.DB
}

// NewExerciseRepo creates a new exercise repository
func NewExerciseRepo(db *sql.DB) *ExerciseRepo {
	return &ExerciseRepo{db: db}
}

const exerciseColumns = `chat_id, word_id, eng_to_target, english, translation, options, outcomes`

// Create stores the exercise unless the chat already has an active one
func (r *ExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (bool, error) {
	query := `
		INSERT INTO exercises (` + exerciseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (chat_id) DO NOTHING
	`
	outcomes := make([]string, len(exercise.Outcomes))
	for i, o := range exercise.Outcomes {
		outcomes[i] = string(o)
	}

	res, err := r.db.ExecContext(ctx, query,
		exercise.ChatID, exercise.WordID, exercise.EngToTarget, exercise.English, exercise.Translation,
		pq.Array(exercise.Options), pq.Array(outcomes),
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// Find returns the chat's active exercise or nil
func (r *ExerciseRepo) Find(ctx context.Context, chatID int64) (*domain.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE chat_id = $1`
	return scanExercise(r.db.QueryRowContext(ctx, query, chatID))
}

// Take deletes and returns the chat's active exercise or nil
func (r *ExerciseRepo) Take(ctx context.Context, chatID int64) (*domain.Exercise, error) {
	query := `DELETE FROM exercises WHERE chat_id = $1 RETURNING ` + exerciseColumns
	return scanExercise(r.db.QueryRowContext(ctx, query, chatID))
}

func scanExercise(row *sql.Row) (*domain.Exercise, error) {
	var e domain.Exercise
	var outcomes []string
	err := row.Scan(
		&e.ChatID, &e.WordID, &e.EngToTarget, &e.English, &e.Translation,
		pq.Array(&e.Options), pq.Array(&outcomes),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	e.Outcomes = make([]domain.Outcome, len(outcomes))
	for i, o := range outcomes {
		e.Outcomes[i] = domain.Outcome(o)
	}
	return &e, nil
}
