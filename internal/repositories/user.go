package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/models"
)

const userColumns = `user_id, username, email, password_hash, created_at, updated_at`

// UserReadRepository reads users.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns nil, nil when no user has that username.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user models.UserDB
	found, err := getOne(ctx, r.db, &user, query, username)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// GetByID returns nil, nil when the user does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user models.UserDB
	found, err := getOne(ctx, r.db, &user, query, userID)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository writes users.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. A taken username yields models.ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	args := []any{user.UserID, user.Username, user.Email, user.PasswordHash}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&user.CreatedAt, &user.UpdatedAt)
	logQuery(query, []any{user.UserID, user.Username, user.Email}, err == nil, err)

	return mapError(err)
}
