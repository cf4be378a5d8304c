package storyimpl

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/socialhub/internal/domain"
	"github.com/orgball2608/socialhub/internal/latency"
	"github.com/orgball2608/socialhub/internal/seed"
	"github.com/orgball2608/socialhub/internal/store"
	"github.com/orgball2608/socialhub/internal/story"
	"github.com/orgball2608/socialhub/pkg/errors"
	"github.com/orgball2608/socialhub/pkg/logger"
	"go.uber.org/fx"
)

const (
	listDelay   = 300 * time.Millisecond
	getDelay    = 200 * time.Millisecond
	createDelay = 400 * time.Millisecond
	writeDelay  = 300 * time.Millisecond
	viewDelay   = 200 * time.Millisecond
)

type Opts struct {
	fx.In

	Seed    *seed.Data
	Latency latency.Injector
	Clock   clockwork.Clock
	Logger  logger.Logger
}

type StoryImpl struct {
	stories *store.Collection[domain.Story]
	latency latency.Injector
	clock   clockwork.Clock
	logger  logger.Logger
}

func New(opts Opts) *StoryImpl {
	var stories []domain.Story
	if opts.Seed != nil {
		stories = opts.Seed.Stories
	}
	return &StoryImpl{
		stories: store.NewCollection(stories,
			func(s *domain.Story) *int { return &s.ID },
			domain.Story.Clone,
		),
		latency: opts.Latency,
		clock:   opts.Clock,
		logger:  opts.Logger.WithComponent("StoryService"),
	}
}

var _ story.Service = (*StoryImpl)(nil)

func (s *StoryImpl) List(ctx context.Context) ([]domain.Story, error) {
	if err := s.latency.Delay(ctx, listDelay); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	return s.stories.Filter(func(st domain.Story) bool {
		return st.ActiveAt(now)
	}, 0), nil
}

func (s *StoryImpl) GetByID(ctx context.Context, id int) (domain.Story, error) {
	if err := s.latency.Delay(ctx, getDelay); err != nil {
		return domain.Story{}, err
	}
	st, ok := s.stories.Get(id)
	if !ok {
		return domain.Story{}, errors.NotFound(story.Kind, id)
	}
	return st, nil
}

func (s *StoryImpl) Create(ctx context.Context, draft domain.StoryDraft) (domain.Story, error) {
	if err := s.latency.Delay(ctx, createDelay); err != nil {
		return domain.Story{}, err
	}
	now := s.clock.Now().UTC()
	created := s.stories.Insert(func(id int) domain.Story {
		return domain.Story{
			ID:        id,
			UserID:    draft.UserID,
			Media:     draft.Media,
			CreatedAt: now,
			ExpiresAt: now.Add(domain.StoryLifetime),
		}
	}, store.Front)

	s.logger.Info("Story created", "story_id", created.ID, "user_id", created.UserID, "expires_at", created.ExpiresAt)
	return created, nil
}

func (s *StoryImpl) Update(ctx context.Context, id int, patch domain.StoryPatch) (domain.Story, error) {
	if err := patch.Validate(); err != nil {
		return domain.Story{}, err
	}
	if err := s.latency.Delay(ctx, writeDelay); err != nil {
		return domain.Story{}, err
	}
	return s.mutate(id, func(st *domain.Story) {
		patch.Apply(st)
	})
}

func (s *StoryImpl) Delete(ctx context.Context, id int) (domain.Story, error) {
	if err := s.latency.Delay(ctx, writeDelay); err != nil {
		return domain.Story{}, err
	}
	removed, ok := s.stories.Delete(id)
	if !ok {
		return domain.Story{}, errors.NotFound(story.Kind, id)
	}
	s.logger.Info("Story deleted", "story_id", id)
	return removed, nil
}

func (s *StoryImpl) View(ctx context.Context, id int) (domain.Story, error) {
	if err := s.latency.Delay(ctx, viewDelay); err != nil {
		return domain.Story{}, err
	}
	return s.mutate(id, func(st *domain.Story) {
		st.ViewCount++
	})
}

func (s *StoryImpl) Count(ctx context.Context) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	now := s.clock.Now()
	all := s.stories.All()
	active := 0
	for _, st := range all {
		if st.ActiveAt(now) {
			active++
		}
	}
	return active, len(all), nil
}

func (s *StoryImpl) mutate(id int, fn func(*domain.Story)) (domain.Story, error) {
	st, ok, err := s.stories.Update(id, func(st *domain.Story) error {
		fn(st)
		return nil
	})
	if err != nil {
		return domain.Story{}, err
	}
	if !ok {
		return domain.Story{}, errors.NotFound(story.Kind, id)
	}
	return st, nil
}
