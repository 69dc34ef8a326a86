package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vocabu/internal/domain"
)

// StagedTranslationRepo implements repository.StagedTranslationRepository
type StagedTranslationRepo struct {
	db *sql.DB
}

// NewStagedTranslationRepo creates a new staged translation repository
func NewStagedTranslationRepo(db *sql.DB) *StagedTranslationRepo {
	return &StagedTranslationRepo{db: db}
}

// Save inserts a staged translation and assigns its id
func (r *StagedTranslationRepo) Save(ctx context.Context, staged *domain.StagedTranslation) error {
	query := `
		INSERT INTO staged_translations (chat_id, english, translation, method)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		staged.ChatID, staged.English, staged.Translation, string(staged.Method),
	).Scan(&staged.ID)
}

// FindByID returns a staged translation without consuming it
func (r *StagedTranslationRepo) FindByID(ctx context.Context, id int64) (*domain.StagedTranslation, error) {
	query := `SELECT id, chat_id, english, translation, method FROM staged_translations WHERE id = $1`
	return r.scan(r.db.QueryRowContext(ctx, query, id))
}

// Take deletes a staged translation of the chat and returns it
func (r *StagedTranslationRepo) Take(ctx context.Context, chatID, id int64) (*domain.StagedTranslation, error) {
	query := `DELETE FROM staged_translations WHERE id = $1 AND chat_id = $2 RETURNING id, chat_id, english, translation, method`
	return r.scan(r.db.QueryRowContext(ctx, query, id, chatID))
}

func (r *StagedTranslationRepo) scan(row *sql.Row) (*domain.StagedTranslation, error) {
	var s domain.StagedTranslation
	var method string
	err := row.Scan(&s.ID, &s.ChatID, &s.English, &s.Translation, &method)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.Method = domain.TranslationMethod(method)
	return &s, nil
}
