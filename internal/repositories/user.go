package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-tweets/internal/models"
)

// UserReadRepository handles account lookups
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the account or nil when it does not exist.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT username, password
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username)

	logQuery(query, []any{username}, user.Username, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// UserWriteRepository handles account creation
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new account. The primary key on username is the source of
// truth for uniqueness: a duplicate yields ErrAlreadyExists.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) error {
	const query = `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, username, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// the hash is not logged
	logQuery(query, []any{username}, rowsAffected, err)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}
