package postimpl_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgball2608/socialhub/internal/domain"
	"github.com/orgball2608/socialhub/internal/latency"
	"github.com/orgball2608/socialhub/internal/post"
	"github.com/orgball2608/socialhub/internal/post/postimpl"
	"github.com/orgball2608/socialhub/internal/seed"
	"github.com/orgball2608/socialhub/pkg/errors"
	"github.com/orgball2608/socialhub/pkg/logger"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func seededPosts() []domain.Post {
	return []domain.Post{
		{ID: 1, AuthorID: 1, Content: "old", Hashtags: []string{"#Design"}, Media: []string{}, Likes: 3, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: 2, AuthorID: 2, Content: "newest", Hashtags: []string{}, Media: []string{"a.jpg"}, Likes: 0, CreatedAt: now.Add(-time.Hour)},
		{ID: 3, AuthorID: 1, Content: "middle", Hashtags: []string{"#Travel"}, Media: []string{}, Likes: 1, CreatedAt: now.Add(-2 * time.Hour)},
	}
}

func newService(posts []domain.Post) (*postimpl.PostImpl, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(now)
	svc := postimpl.New(postimpl.Opts{
		Seed:    &seed.Data{Posts: posts},
		Latency: latency.Off{},
		Clock:   clock,
		Logger:  logger.Nop(),
	})
	return svc, clock
}

func ids(posts []domain.Post) []int {
	out := make([]int, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newService(seededPosts())

	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, ids(posts))
}

func TestListOrderIgnoresInsertionOrder(t *testing.T) {
	svc, clock := newService(seededPosts())
	ctx := context.Background()

	clock.Advance(time.Minute)
	_, err := svc.Create(ctx, domain.PostDraft{Content: "fresh"})
	require.NoError(t, err)

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt), "posts out of order at %d", i)
	}
	assert.Equal(t, 4, posts[0].ID)
}

func TestListIsolation(t *testing.T) {
	svc, _ := newService(seededPosts())
	ctx := context.Background()

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	posts[0].Media[0] = "hacked.jpg"
	posts[0].Likes = 500

	p, err := svc.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg"}, p.Media)
	assert.Zero(t, p.Likes)
}

func TestCreate(t *testing.T) {
	svc, _ := newService(seededPosts())
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.PostDraft{Content: "hi"})
	require.NoError(t, err)

	assert.Equal(t, 4, created.ID)
	assert.Zero(t, created.Likes)
	assert.Zero(t, created.Comments)
	assert.Zero(t, created.Shares)
	assert.Equal(t, now, created.CreatedAt)
	assert.Empty(t, created.Hashtags)
	assert.NotNil(t, created.Hashtags)
}

func TestCreateKeepsHashtagsVerbatim(t *testing.T) {
	svc, _ := newService(nil)

	created, err := svc.Create(context.Background(), domain.PostDraft{
		Content:  "no tags in the text",
		Hashtags: []string{"#Coding"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, []string{"#Coding"}, created.Hashtags)
}

func TestUpdate(t *testing.T) {
	svc, _ := newService(seededPosts())
	ctx := context.Background()
	content := "edited"
	tags := []string{"#Edited"}

	updated, err := svc.Update(ctx, 3, domain.PostPatch{Content: &content, Hashtags: &tags})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.ID)
	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, []string{"#Edited"}, updated.Hashtags)
	assert.Equal(t, 1, updated.Likes)

	_, err = svc.Update(ctx, 30, domain.PostPatch{Content: &content})
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, post.Kind, errors.KindOf(err))
}

func TestDelete(t *testing.T) {
	svc, _ := newService(seededPosts())
	ctx := context.Background()

	removed, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "old", removed.Content)

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, ids(posts))

	_, err = svc.Delete(ctx, 1)
	assert.True(t, errors.IsNotFound(err))
}

func TestLikeUnlike(t *testing.T) {
	svc, _ := newService(seededPosts())
	ctx := context.Background()

	p, err := svc.Like(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Likes)

	for i := 0; i < 4; i++ {
		p, err = svc.Unlike(ctx, 2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.Likes, 0)
	}
	assert.Zero(t, p.Likes)

	_, err = svc.Like(ctx, 77)
	assert.True(t, errors.IsNotFound(err))
	_, err = svc.Unlike(ctx, 77)
	assert.True(t, errors.IsNotFound(err))
}

func TestGetTrending(t *testing.T) {
	svc, _ := newService(seededPosts())

	trending, err := svc.GetTrending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids(trending))
}

func TestGetTrendingCapsAtSix(t *testing.T) {
	var posts []domain.Post
	for i := 1; i <= 10; i++ {
		posts = append(posts, domain.Post{ID: i, Hashtags: []string{"#tag"}, CreatedAt: now})
	}
	svc, _ := newService(posts)

	trending, err := svc.GetTrending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(trending))
}
