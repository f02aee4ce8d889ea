package handlers

import (
	"context"

	"github.com/sbilibin2017/gw-tweets/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=interfaces_mock_test.go -package=handlers

// Signuper creates accounts.
type Signuper interface {
	Signup(ctx context.Context, username, password string) error
}

// Loginer exchanges credentials for an access token.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// PostLister lists posts newest first.
type PostLister interface {
	List(ctx context.Context) ([]models.Post, error)
}

// PostCreator creates posts on behalf of the caller.
type PostCreator interface {
	Create(ctx context.Context, identity, author, content string) (*models.Post, error)
}

// PostEditor edits posts owned by the caller.
type PostEditor interface {
	UpdateContent(ctx context.Context, identity string, id int64, content string) (*models.Post, error)
}

// PostDeleter deletes posts owned by the caller.
type PostDeleter interface {
	Delete(ctx context.Context, identity string, id int64) error
}

// PostLiker likes posts.
type PostLiker interface {
	Like(ctx context.Context, identity string, id int64) (*models.Post, error)
}
