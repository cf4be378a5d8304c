package feedimpl

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/socialhub/internal/domain"
	"github.com/orgball2608/socialhub/internal/feed"
	"github.com/orgball2608/socialhub/internal/post"
	"github.com/orgball2608/socialhub/internal/story"
	"github.com/orgball2608/socialhub/internal/user"
	"github.com/orgball2608/socialhub/pkg/errors"
	"github.com/orgball2608/socialhub/pkg/formatter"
	"github.com/orgball2608/socialhub/pkg/logger"
	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Users   user.Service
	Posts   post.Service
	Stories story.Service
	Pool    *ants.Pool
	Clock   clockwork.Clock
	Logger  logger.Logger
}

type FeedImpl struct {
	users   user.Service
	posts   post.Service
	stories story.Service
	pool    *ants.Pool
	clock   clockwork.Clock
	logger  logger.Logger
}

func New(opts Opts) *FeedImpl {
	return &FeedImpl{
		users:   opts.Users,
		posts:   opts.Posts,
		stories: opts.Stories,
		pool:    opts.Pool,
		clock:   opts.Clock,
		logger:  opts.Logger.WithComponent("FeedService"),
	}
}

var _ feed.Service = (*FeedImpl)(nil)

func (f *FeedImpl) Home(ctx context.Context) ([]feed.Item, error) {
	var (
		posts []domain.Post
		users []domain.User
	)
	err := f.parallel(ctx,
		func(ctx context.Context) (err error) {
			posts, err = f.posts.List(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			users, err = f.users.List(ctx)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("Home feed loaded", "posts", len(posts), "users", len(users))
	return f.join(posts, users), nil
}

func (f *FeedImpl) Explore(ctx context.Context, filter feed.Filter) ([]feed.Item, error) {
	var (
		posts []domain.Post
		users []domain.User
	)
	err := f.parallel(ctx,
		func(ctx context.Context) (err error) {
			posts, err = f.posts.GetTrending(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			users, err = f.users.List(ctx)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	return f.join(applyFilter(posts, filter), users), nil
}

func (f *FeedImpl) Profile(ctx context.Context, userID int, filter feed.Filter) (feed.Profile, error) {
	var (
		owner domain.User
		posts []domain.Post
	)
	err := f.parallel(ctx,
		func(ctx context.Context) (err error) {
			owner, err = f.users.GetByID(ctx, userID)
			return err
		},
		func(ctx context.Context) (err error) {
			posts, err = f.posts.List(ctx)
			return err
		},
	)
	if err != nil {
		return feed.Profile{}, err
	}

	own := lo.Filter(posts, func(p domain.Post, _ int) bool {
		return p.AuthorID == userID
	})

	return feed.Profile{
		Card: feed.ProfileCard{
			User:      owner,
			Posts:     formatter.FormatNumber(owner.Posts),
			Followers: formatter.FormatNumber(owner.Followers),
			Following: formatter.FormatNumber(owner.Following),
		},
		Posts: f.join(applyFilter(own, filter), []domain.User{owner}),
	}, nil
}

func (f *FeedImpl) Stories(ctx context.Context) ([]feed.StoryItem, error) {
	var (
		stories []domain.Story
		users   []domain.User
	)
	err := f.parallel(ctx,
		func(ctx context.Context) (err error) {
			stories, err = f.stories.List(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			users, err = f.users.List(ctx)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	latest := make(map[int]domain.Story, len(stories))
	for _, st := range stories {
		if cur, ok := latest[st.UserID]; !ok || st.CreatedAt.After(cur.CreatedAt) {
			latest[st.UserID] = st
		}
	}

	picked := lo.Values(latest)
	slices.SortStableFunc(picked, func(a, b domain.Story) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return a.ID - b.ID
	})

	byID := lo.KeyBy(users, func(u domain.User) int { return u.ID })
	return lo.Map(picked, func(st domain.Story, _ int) feed.StoryItem {
		return feed.StoryItem{Story: st, User: lookup(byID, st.UserID)}
	}), nil
}

func (f *FeedImpl) Search(ctx context.Context, query string) (feed.SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return feed.SearchResult{Users: []domain.User{}, Posts: []feed.Item{}}, nil
	}

	var (
		posts []domain.Post
		users []domain.User
	)
	err := f.parallel(ctx,
		func(ctx context.Context) (err error) {
			posts, err = f.posts.List(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			users, err = f.users.List(ctx)
			return err
		},
	)
	if err != nil {
		return feed.SearchResult{}, err
	}

	matchedUsers := lo.Filter(users, func(u domain.User, _ int) bool {
		return contains(u.DisplayName, q) || contains(u.Username, q)
	})
	matchedPosts := lo.Filter(posts, func(p domain.Post, _ int) bool {
		return contains(p.Content, q) || lo.SomeBy(p.Hashtags, func(tag string) bool {
			return contains(tag, q)
		})
	})

	f.logger.Debug("Search finished", "query", q, "users", len(matchedUsers), "posts", len(matchedPosts))
	return feed.SearchResult{
		Users: matchedUsers,
		Posts: f.join(matchedPosts, users),
	}, nil
}

func (f *FeedImpl) Publish(ctx context.Context, authorID int, content, location string) (domain.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Post{}, errors.Invalid("please write something to share")
	}

	created, err := f.posts.Create(ctx, domain.PostDraft{
		AuthorID: authorID,
		Content:  content,
		Location: strings.TrimSpace(location),
		Hashtags: feed.ExtractHashtags(content),
		Media:    []string{},
	})
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to publish post: %w", err)
	}
	return created, nil
}

func (f *FeedImpl) join(posts []domain.Post, users []domain.User) []feed.Item {
	byID := lo.KeyBy(users, func(u domain.User) int { return u.ID })
	now := f.clock.Now()
	return lo.Map(posts, func(p domain.Post, _ int) feed.Item {
		return feed.Item{
			Post:      p,
			Author:    lookup(byID, p.AuthorID),
			PostedAgo: formatter.TimeAgo(p.CreatedAt, now),
		}
	})
}

// parallel runs the loads on the worker pool and returns the first failure.
func (f *FeedImpl) parallel(ctx context.Context, loads ...func(context.Context) error) error {
	var wg sync.WaitGroup
	errs := make([]error, len(loads))

	for i, load := range loads {
		wg.Add(1)
		err := f.pool.Submit(func() {
			defer wg.Done()
			errs[i] = load(ctx)
		})
		if err != nil {
			wg.Done()
			errs[i] = errors.WrapWithCode(errors.ErrServiceUnavailable, "pool", fmt.Sprintf("failed to submit load: %v", err))
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func applyFilter(posts []domain.Post, filter feed.Filter) []domain.Post {
	if filter != feed.FilterMedia {
		return posts
	}
	return lo.Filter(posts, func(p domain.Post, _ int) bool { return p.HasMedia() })
}

func lookup(users map[int]domain.User, id int) *domain.User {
	u, ok := users[id]
	if !ok {
		return nil
	}
	return &u
}

func contains(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}
