package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vocabu/internal/domain"
)

// PendingInteractionRepo implements repository.PendingInteractionRepository
type PendingInteractionRepo struct {
	db *sql.DB
}

// NewPendingInteractionRepo creates a new pending interaction repository
func NewPendingInteractionRepo(db *sql.DB) *PendingInteractionRepo {
	return &PendingInteractionRepo{db: db}
}

// Put stores the interaction, replacing the chat's previous one
func (r *PendingInteractionRepo) Put(ctx context.Context, pending domain.PendingInteraction) error {
	query := `
		INSERT INTO pending_interactions (chat_id, kind, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (chat_id)
		DO UPDATE SET kind = EXCLUDED.kind, payload = EXCLUDED.payload, created_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, pending.ChatID, string(pending.Kind), pending.Payload)
	return err
}

// Take deletes and returns the chat's interaction in a single statement,
// so two concurrent replies cannot both consume it.
func (r *PendingInteractionRepo) Take(ctx context.Context, chatID int64) (*domain.PendingInteraction, error) {
	query := `DELETE FROM pending_interactions WHERE chat_id = $1 RETURNING chat_id, kind, payload`

	var p domain.PendingInteraction
	var kind string
	err := r.db.QueryRowContext(ctx, query, chatID).Scan(&p.ChatID, &kind, &p.Payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Kind = domain.InteractionKind(kind)
	return &p, nil
}

// Delete removes the chat's interaction if any
func (r *PendingInteractionRepo) Delete(ctx context.Context, chatID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pending_interactions WHERE chat_id = $1`, chatID)
	return err
}
