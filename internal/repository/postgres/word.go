package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vocabu/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// Save inserts a new word or updates score and learned flag of an existing one.
// New words get their generated id assigned.
func (r *WordRepo) Save(ctx context.Context, word *domain.Word) error {
	if word.ID != 0 {
		query := `UPDATE words SET score = $1, learned = $2 WHERE id = $3`
		_, err := r.db.ExecContext(ctx, query, word.Score, word.Learned, word.ID)
		return err
	}

	query := `
		INSERT INTO words (chat_id, english, translation, score, learned)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		word.ChatID, word.English, word.Translation, word.Score, word.Learned,
	).Scan(&word.ID)
}

// FindByID returns a word by id
func (r *WordRepo) FindByID(ctx context.Context, id int64) (*domain.Word, error) {
	var w domain.Word
	query := `SELECT id, chat_id, english, translation, score, learned FROM words WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.ChatID, &w.English, &w.Translation, &w.Score, &w.Learned,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// FindByChatIDAndLearned returns the chat's words with the given learned flag
func (r *WordRepo) FindByChatIDAndLearned(ctx context.Context, chatID int64, learned bool) ([]domain.Word, error) {
	query := `
		SELECT id, chat_id, english, translation, score, learned
		FROM words
		WHERE chat_id = $1 AND learned = $2
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, chatID, learned)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.ChatID, &w.English, &w.Translation, &w.Score, &w.Learned); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// ExistsByEnglishOrTranslation checks the chat's vocabulary for either side of a pair
func (r *WordRepo) ExistsByEnglishOrTranslation(ctx context.Context, chatID int64, english, translation string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM words
			WHERE chat_id = $1 AND (LOWER(english) = LOWER($2) OR LOWER(translation) = LOWER($3))
		)
	`
	err := r.db.QueryRowContext(ctx, query, chatID, english, translation).Scan(&exists)
	return exists, err
}

// ExistsByEnglish checks the chat's vocabulary for an English word
func (r *WordRepo) ExistsByEnglish(ctx context.Context, chatID int64, english string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM words WHERE chat_id = $1 AND LOWER(english) = LOWER($2))`
	err := r.db.QueryRowContext(ctx, query, chatID, english).Scan(&exists)
	return exists, err
}

// DeleteByChatID removes the chat's whole vocabulary
func (r *WordRepo) DeleteByChatID(ctx context.Context, chatID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE chat_id = $1`, chatID)
	return err
}
