package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vocabu/internal/domain"

	"github.com/lib/pq"
)

// DictionaryRepo implements repository.DictionaryRepository
type DictionaryRepo struct {
	db *sql.DB
}

// NewDictionaryRepo creates a new dictionary repository
func NewDictionaryRepo(db *sql.DB) *DictionaryRepo {
	return &DictionaryRepo{db: db}
}

// FindTranslation matches text case-insensitively against both columns
// and returns the opposite one. The first match wins.
func (r *DictionaryRepo) FindTranslation(ctx context.Context, text string) (string, error) {
	query := `
		SELECT CASE WHEN LOWER(english) = LOWER($1) THEN translation ELSE english END
		FROM dictionary
		WHERE LOWER(english) = LOWER($1) OR LOWER(translation) = LOWER($1)
		ORDER BY id
		LIMIT 1
	`
	var translation string
	err := r.db.QueryRowContext(ctx, query, text).Scan(&translation)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	return translation, err
}

// FindRandom returns a random dictionary pair
func (r *DictionaryRepo) FindRandom(ctx context.Context) (*domain.DictionaryWord, error) {
	var w domain.DictionaryWord
	query := `SELECT id, english, translation FROM dictionary ORDER BY RANDOM() LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&w.ID, &w.English, &w.Translation)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Count returns the number of dictionary pairs
func (r *DictionaryRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dictionary`).Scan(&count)
	return count, err
}

// Save inserts a single pair
func (r *DictionaryRepo) Save(ctx context.Context, word *domain.DictionaryWord) error {
	query := `INSERT INTO dictionary (english, translation) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, word.English, word.Translation).Scan(&word.ID)
}

// SaveBatch inserts pairs in one transaction using COPY
func (r *DictionaryRepo) SaveBatch(ctx context.Context, words []domain.DictionaryWord) error {
	if len(words) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("dictionary", "english", "translation"))
	if err != nil {
		return fmt.Errorf("failed to prepare copy: %w", err)
	}

	for _, w := range words {
		if _, err := stmt.ExecContext(ctx, w.English, w.Translation); err != nil {
			stmt.Close()
			return fmt.Errorf("failed to copy row: %w", err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("failed to flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("failed to close copy: %w", err)
	}

	return tx.Commit()
}

// DeleteAll empties the dictionary
func (r *DictionaryRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM dictionary`)
	return err
}
