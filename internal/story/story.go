package story

import (
	"context"

	"github.com/orgball2608/socialhub/internal/domain"
)

// Kind names stories in not found errors.
const Kind = "story"

//go:generate go run go.uber.org/mock/mockgen -source=story.go -destination=mocks/mock.go
type Service interface {
	// List returns the stories that have not expired yet. Expired stories stay stored.
	List(ctx context.Context) ([]domain.Story, error)

	// GetByID returns the story whether or not it has expired
	GetByID(ctx context.Context, id int) (domain.Story, error)

	// Create stores a story that expires 24 hours from now
	Create(ctx context.Context, draft domain.StoryDraft) (domain.Story, error)

	Update(ctx context.Context, id int, patch domain.StoryPatch) (domain.Story, error)

	Delete(ctx context.Context, id int) (domain.Story, error)

	// View counts one more view of the story
	View(ctx context.Context, id int) (domain.Story, error)

	// Count returns the number of active and stored stories without any delay
	Count(ctx context.Context) (active, total int, err error)
}
