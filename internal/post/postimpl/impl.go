package postimpl

import (
	"context"
	"slices"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/socialhub/internal/domain"
	"github.com/orgball2608/socialhub/internal/latency"
	"github.com/orgball2608/socialhub/internal/post"
	"github.com/orgball2608/socialhub/internal/seed"
	"github.com/orgball2608/socialhub/internal/store"
	"github.com/orgball2608/socialhub/pkg/errors"
	"github.com/orgball2608/socialhub/pkg/logger"
	"go.uber.org/fx"
)

const (
	listDelay     = 400 * time.Millisecond
	getDelay      = 200 * time.Millisecond
	createDelay   = 500 * time.Millisecond
	writeDelay    = 300 * time.Millisecond
	likeDelay     = 200 * time.Millisecond
	trendingDelay = 300 * time.Millisecond
)

type Opts struct {
	fx.In

	Seed    *seed.Data
	Latency latency.Injector
	Clock   clockwork.Clock
	Logger  logger.Logger
}

type PostImpl struct {
	posts   *store.Collection[domain.Post]
	latency latency.Injector
	clock   clockwork.Clock
	logger  logger.Logger
}

func New(opts Opts) *PostImpl {
	var posts []domain.Post
	if opts.Seed != nil {
		posts = opts.Seed.Posts
	}
	return &PostImpl{
		posts: store.NewCollection(posts,
			func(p *domain.Post) *int { return &p.ID },
			domain.Post.Clone,
		),
		latency: opts.Latency,
		clock:   opts.Clock,
		logger:  opts.Logger.WithComponent("PostService"),
	}
}

var _ post.Service = (*PostImpl)(nil)

func (s *PostImpl) List(ctx context.Context) ([]domain.Post, error) {
	if err := s.latency.Delay(ctx, listDelay); err != nil {
		return nil, err
	}
	posts := s.posts.All()
	slices.SortStableFunc(posts, func(a, b domain.Post) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return posts, nil
}

func (s *PostImpl) GetByID(ctx context.Context, id int) (domain.Post, error) {
	if err := s.latency.Delay(ctx, getDelay); err != nil {
		return domain.Post{}, err
	}
	p, ok := s.posts.Get(id)
	if !ok {
		return domain.Post{}, errors.NotFound(post.Kind, id)
	}
	return p, nil
}

func (s *PostImpl) Create(ctx context.Context, draft domain.PostDraft) (domain.Post, error) {
	if err := s.latency.Delay(ctx, createDelay); err != nil {
		return domain.Post{}, err
	}
	now := s.clock.Now().UTC()
	created := s.posts.Insert(func(id int) domain.Post {
		return domain.Post{
			ID:        id,
			AuthorID:  draft.AuthorID,
			Content:   draft.Content,
			Location:  draft.Location,
			Hashtags:  nonNil(draft.Hashtags),
			Media:     nonNil(draft.Media),
			CreatedAt: now,
		}
	}, store.Front)

	s.logger.Info("Post created", "post_id", created.ID, "author_id", created.AuthorID, "hashtags", len(created.Hashtags))
	return created, nil
}

func (s *PostImpl) Update(ctx context.Context, id int, patch domain.PostPatch) (domain.Post, error) {
	if err := patch.Validate(); err != nil {
		return domain.Post{}, err
	}
	if err := s.latency.Delay(ctx, writeDelay); err != nil {
		return domain.Post{}, err
	}
	return s.mutate(id, func(p *domain.Post) {
		patch.Apply(p)
	})
}

func (s *PostImpl) Delete(ctx context.Context, id int) (domain.Post, error) {
	if err := s.latency.Delay(ctx, writeDelay); err != nil {
		return domain.Post{}, err
	}
	removed, ok := s.posts.Delete(id)
	if !ok {
		return domain.Post{}, errors.NotFound(post.Kind, id)
	}
	s.logger.Info("Post deleted", "post_id", id)
	return removed, nil
}

func (s *PostImpl) Like(ctx context.Context, id int) (domain.Post, error) {
	if err := s.latency.Delay(ctx, likeDelay); err != nil {
		return domain.Post{}, err
	}
	return s.mutate(id, func(p *domain.Post) {
		p.Likes++
	})
}

func (s *PostImpl) Unlike(ctx context.Context, id int) (domain.Post, error) {
	if err := s.latency.Delay(ctx, likeDelay); err != nil {
		return domain.Post{}, err
	}
	return s.mutate(id, func(p *domain.Post) {
		if p.Likes > 0 {
			p.Likes--
		}
	})
}

func (s *PostImpl) GetTrending(ctx context.Context) ([]domain.Post, error) {
	if err := s.latency.Delay(ctx, trendingDelay); err != nil {
		return nil, err
	}
	return s.posts.Filter(domain.Post.HasHashtags, post.TrendingLimit), nil
}

func (s *PostImpl) mutate(id int, fn func(*domain.Post)) (domain.Post, error) {
	p, ok, err := s.posts.Update(id, func(p *domain.Post) error {
		fn(p)
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}
	if !ok {
		return domain.Post{}, errors.NotFound(post.Kind, id)
	}
	return p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
