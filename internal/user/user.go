package user

import (
	"context"

	"github.com/orgball2608/socialhub/internal/domain"
)

// Kind names users in not found errors.
const Kind = "user"

//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=mocks/mock.go
type Service interface {
	// List returns every user in insertion order
	List(ctx context.Context) ([]domain.User, error)

	GetByID(ctx context.Context, id int) (domain.User, error)

	// Create appends a user with zeroed counters who starts out online
	Create(ctx context.Context, draft domain.UserDraft) (domain.User, error)

	Update(ctx context.Context, id int, patch domain.UserPatch) (domain.User, error)

	Delete(ctx context.Context, id int) (domain.User, error)

	// GetSuggested returns the first three users
	GetSuggested(ctx context.Context) ([]domain.User, error)

	GetOnlineUsers(ctx context.Context) ([]domain.User, error)

	// Follow adds one follower to the user
	Follow(ctx context.Context, id int) (domain.User, error)

	// Unfollow removes one follower, never going below zero
	Unfollow(ctx context.Context, id int) (domain.User, error)
}
