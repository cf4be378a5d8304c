package post

import (
	"context"

	"github.com/orgball2608/socialhub/internal/domain"
)

// Kind names posts in not found errors.
const Kind = "post"

// TrendingLimit caps the number of posts returned by GetTrending.
const TrendingLimit = 6

//go:generate go run go.uber.org/mock/mockgen -source=post.go -destination=mocks/mock.go
type Service interface {
	// List returns all posts, newest first
	List(ctx context.Context) ([]domain.Post, error)

	GetByID(ctx context.Context, id int) (domain.Post, error)

	// Create stores a post with zeroed engagement counters. Hashtags are taken as given.
	Create(ctx context.Context, draft domain.PostDraft) (domain.Post, error)

	Update(ctx context.Context, id int, patch domain.PostPatch) (domain.Post, error)

	Delete(ctx context.Context, id int) (domain.Post, error)

	Like(ctx context.Context, id int) (domain.Post, error)

	// Unlike removes one like, never going below zero
	Unlike(ctx context.Context, id int) (domain.Post, error)

	// GetTrending returns up to TrendingLimit posts carrying at least one hashtag, in collection order
	GetTrending(ctx context.Context) ([]domain.Post, error)
}
