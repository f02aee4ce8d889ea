package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-tweets/internal/models"
)

const postColumns = "id, username, content, created, likes"

// PostReadRepository handles post read operations
type PostReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPostReadRepository(db *sqlx.DB, txGetter TxGetter) *PostReadRepository {
	return &PostReadRepository{db: db, txGetter: txGetter}
}

// List returns every post, newest first.
func (r *PostReadRepository) List(ctx context.Context) ([]models.Post, error) {
	const query = `
		SELECT ` + postColumns + `
		FROM tweets
		ORDER BY created DESC, id DESC
	`

	posts := make([]models.Post, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &posts, query)

	logQuery(query, nil, len(posts), err)

	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// GetByID returns the post or nil when it does not exist.
func (r *PostReadRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	const query = `
		SELECT ` + postColumns + `
		FROM tweets
		WHERE id = $1
	`
	return getPost(ctx, executor(ctx, r.db, r.txGetter), query, id)
}

// PostWriteRepository handles post write operations
type PostWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPostWriteRepository(db *sqlx.DB, txGetter TxGetter) *PostWriteRepository {
	return &PostWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a post with zero likes and returns the stored row.
func (r *PostWriteRepository) Save(ctx context.Context, username, content string) (*models.Post, error) {
	const query = `
		INSERT INTO tweets (username, content)
		VALUES ($1, $2)
		RETURNING ` + postColumns

	return getPost(ctx, executor(ctx, r.db, r.txGetter), query, username, content)
}

// LockByID reads the post and locks its row until the surrounding
// transaction ends. Returns nil when the post does not exist.
func (r *PostWriteRepository) LockByID(ctx context.Context, id int64) (*models.Post, error) {
	const query = `
		SELECT ` + postColumns + `
		FROM tweets
		WHERE id = $1
		FOR UPDATE
	`
	return getPost(ctx, executor(ctx, r.db, r.txGetter), query, id)
}

// UpdateContent replaces the content of a post. Returns nil when the post
// does not exist.
func (r *PostWriteRepository) UpdateContent(ctx context.Context, id int64, content string) (*models.Post, error) {
	const query = `
		UPDATE tweets
		SET content = $2
		WHERE id = $1
		RETURNING ` + postColumns

	return getPost(ctx, executor(ctx, r.db, r.txGetter), query, id, content)
}

// IncrementLikes adds one like in a single statement so concurrent likes are
// never lost. Returns nil when the post does not exist.
func (r *PostWriteRepository) IncrementLikes(ctx context.Context, id int64) (*models.Post, error) {
	const query = `
		UPDATE tweets
		SET likes = likes + 1
		WHERE id = $1
		RETURNING ` + postColumns

	return getPost(ctx, executor(ctx, r.db, r.txGetter), query, id)
}

// Delete removes a post and reports whether a row was deleted.
func (r *PostWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `
		DELETE FROM tweets
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	return rowsAffected > 0, nil
}

func getPost(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) (*models.Post, error) {
	var post models.Post
	err := sqlx.GetContext(ctx, q, &post, query, args...)

	logQuery(query, args, post.ID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("post query: %w", err)
	}
	return &post, nil
}
