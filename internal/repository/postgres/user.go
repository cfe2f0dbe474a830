package postgres

import (
	"database/sql"
	"errors"
	"fmt"
)

const (
	queryIsAuthorized = `SELECT authorized FROM users WHERE user_id = $1`

	queryAuthorizeUser = `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`

	queryEnsureUser = `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized reports whether the user entered the bot password.
// Unknown users are not authorized.
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	err := r.db.QueryRow(queryIsAuthorized, userID).Scan(&authorized)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check authorization: %w", err)
	}
	return authorized, nil
}

// AuthorizeUser marks user as authorized, creating the record if needed
func (r *UserRepo) AuthorizeUser(userID int64) error {
	if _, err := r.db.Exec(queryAuthorizeUser, userID); err != nil {
		return fmt.Errorf("failed to authorize user: %w", err)
	}
	return nil
}

// EnsureUserExists creates an unauthorized user record if missing
func (r *UserRepo) EnsureUserExists(userID int64) error {
	if _, err := r.db.Exec(queryEnsureUser, userID); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
