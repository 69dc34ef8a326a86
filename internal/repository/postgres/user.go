package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vocabu/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Save creates the user if it doesn't exist yet
func (r *UserRepo) Save(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, chat_id, first_name, last_name, user_name, language_code, is_bot)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.ChatID, user.FirstName, user.LastName, user.UserName, user.LanguageCode, user.IsBot,
	)
	return err
}

// ExistsByChatID checks if a user with the chat id is registered
func (r *UserRepo) ExistsByChatID(ctx context.Context, chatID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE chat_id = $1)`
	err := r.db.QueryRowContext(ctx, query, chatID).Scan(&exists)
	return exists, err
}

// ExistsByID checks if a user with the id is registered
func (r *UserRepo) ExistsByID(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&exists)
	return exists, err
}

// FindByChatID returns the user registered for the chat
func (r *UserRepo) FindByChatID(ctx context.Context, chatID int64) (*domain.User, error) {
	query := `
		SELECT id, chat_id, first_name, last_name, user_name, language_code, is_bot, banned, created_at
		FROM users
		WHERE chat_id = $1
	`
	var u domain.User
	err := r.db.QueryRowContext(ctx, query, chatID).Scan(
		&u.ID, &u.ChatID, &u.FirstName, &u.LastName, &u.UserName, &u.LanguageCode, &u.IsBot, &u.Banned, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindUserNameByID returns the username of a user
func (r *UserRepo) FindUserNameByID(ctx context.Context, userID int64) (string, error) {
	var name string
	query := `SELECT user_name FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	return name, err
}

// IsBanned checks the ban flag of the chat's user.
// Unknown chats are not banned.
func (r *UserRepo) IsBanned(ctx context.Context, chatID int64) (bool, error) {
	var banned bool
	query := `SELECT banned FROM users WHERE chat_id = $1`
	err := r.db.QueryRowContext(ctx, query, chatID).Scan(&banned)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return banned, err
}

// Ban sets the ban flag. Missing users are a no-op.
func (r *UserRepo) Ban(ctx context.Context, userID int64) error {
	return r.setBanned(ctx, userID, true)
}

// Unban clears the ban flag. Missing users are a no-op.
func (r *UserRepo) Unban(ctx context.Context, userID int64) error {
	return r.setBanned(ctx, userID, false)
}

func (r *UserRepo) setBanned(ctx context.Context, userID int64, banned bool) error {
	query := `UPDATE users SET banned = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, banned, userID)
	return err
}

// Count returns the number of registered users
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

// FindAll returns all registered users ordered by registration
func (r *UserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, chat_id, first_name, last_name, user_name, language_code, is_bot, banned, created_at
		FROM users
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.ChatID, &u.FirstName, &u.LastName, &u.UserName, &u.LanguageCode, &u.IsBot, &u.Banned, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
