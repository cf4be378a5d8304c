package feedimpl_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/orgball2608/socialhub/internal/domain"
	"github.com/orgball2608/socialhub/internal/feed"
	"github.com/orgball2608/socialhub/internal/feed/feedimpl"
	mock_post "github.com/orgball2608/socialhub/internal/post/mocks"
	mock_story "github.com/orgball2608/socialhub/internal/story/mocks"
	mock_user "github.com/orgball2608/socialhub/internal/user/mocks"
	"github.com/orgball2608/socialhub/pkg/errors"
	"github.com/orgball2608/socialhub/pkg/logger"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	users   *mock_user.MockService
	posts   *mock_post.MockService
	stories *mock_story.MockService
	feed    *feedimpl.FeedImpl
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	pool, err := ants.NewPool(4)
	require.NoError(t, err)
	t.Cleanup(pool.Release)

	f := &fixture{
		users:   mock_user.NewMockService(ctrl),
		posts:   mock_post.NewMockService(ctrl),
		stories: mock_story.NewMockService(ctrl),
	}
	f.feed = feedimpl.New(feedimpl.Opts{
		Users:   f.users,
		Posts:   f.posts,
		Stories: f.stories,
		Pool:    pool,
		Clock:   clockwork.NewFakeClockAt(now),
		Logger:  logger.Nop(),
	})
	return f
}

var users = []domain.User{
	{ID: 1, DisplayName: "Sarah Chen", Username: "sarahchen", Posts: 142, Followers: 2847, Following: 312},
	{ID: 2, DisplayName: "Marcus Johnson", Username: "marcusj"},
}

var posts = []domain.Post{
	{ID: 3, AuthorID: 1, Content: "Sunrise hike", Hashtags: []string{"#Travel"}, Media: []string{"a.jpg"}, CreatedAt: now.Add(-time.Hour)},
	{ID: 2, AuthorID: 2, Content: "Migrated the monolith", Hashtags: []string{}, Media: []string{}, CreatedAt: now.Add(-2 * time.Hour)},
	{ID: 1, AuthorID: 9, Content: "orphaned", Hashtags: []string{"#Design"}, Media: []string{}, CreatedAt: now.Add(-3 * time.Hour)},
}

func TestHomeJoinsAuthors(t *testing.T) {
	f := newFixture(t)
	f.posts.EXPECT().List(gomock.Any()).Return(posts, nil)
	f.users.EXPECT().List(gomock.Any()).Return(users, nil)

	items, err := f.feed.Home(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, 3, items[0].Post.ID)
	require.NotNil(t, items[0].Author)
	assert.Equal(t, "sarahchen", items[0].Author.Username)
	assert.Equal(t, "about 1 hour ago", items[0].PostedAgo)
	assert.Equal(t, "marcusj", items[1].Author.Username)
	assert.Nil(t, items[2].Author)
}

func TestHomePropagatesErrors(t *testing.T) {
	f := newFixture(t)
	f.posts.EXPECT().List(gomock.Any()).Return(nil, errors.ErrServiceUnavailable)
	f.users.EXPECT().List(gomock.Any()).Return(users, nil)

	_, err := f.feed.Home(context.Background())
	assert.ErrorIs(t, err, errors.ErrServiceUnavailable)
}

func TestExploreMediaFilter(t *testing.T) {
	f := newFixture(t)
	trending := []domain.Post{posts[0], posts[2]}
	f.posts.EXPECT().GetTrending(gomock.Any()).Return(trending, nil).Times(2)
	f.users.EXPECT().List(gomock.Any()).Return(users, nil).Times(2)

	all, err := f.feed.Explore(context.Background(), feed.FilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	media, err := f.feed.Explore(context.Background(), feed.FilterMedia)
	require.NoError(t, err)
	require.Len(t, media, 1)
	assert.Equal(t, 3, media[0].Post.ID)
}

func TestProfile(t *testing.T) {
	f := newFixture(t)
	f.users.EXPECT().GetByID(gomock.Any(), 1).Return(users[0], nil)
	f.posts.EXPECT().List(gomock.Any()).Return(posts, nil)

	profile, err := f.feed.Profile(context.Background(), 1, feed.FilterAll)
	require.NoError(t, err)

	assert.Equal(t, "2,847", profile.Card.Followers)
	assert.Equal(t, "312", profile.Card.Following)
	assert.Equal(t, "142", profile.Card.Posts)
	require.Len(t, profile.Posts, 1)
	assert.Equal(t, 3, profile.Posts[0].Post.ID)
	assert.Equal(t, "Sarah Chen", profile.Posts[0].Author.DisplayName)
}

func TestProfileNotFound(t *testing.T) {
	f := newFixture(t)
	f.users.EXPECT().GetByID(gomock.Any(), 50).Return(domain.User{}, errors.NotFound("user", 50))
	f.posts.EXPECT().List(gomock.Any()).Return(posts, nil)

	_, err := f.feed.Profile(context.Background(), 50, feed.FilterMedia)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "user", errors.KindOf(err))
}

func TestStoriesLatestPerUser(t *testing.T) {
	f := newFixture(t)
	stories := []domain.Story{
		{ID: 1, UserID: 1, CreatedAt: now.Add(-5 * time.Hour)},
		{ID: 2, UserID: 2, CreatedAt: now.Add(-4 * time.Hour)},
		{ID: 3, UserID: 1, CreatedAt: now.Add(-time.Hour)},
		{ID: 4, UserID: 7, CreatedAt: now.Add(-10 * time.Hour)},
	}
	f.stories.EXPECT().List(gomock.Any()).Return(stories, nil)
	f.users.EXPECT().List(gomock.Any()).Return(users, nil)

	items, err := f.feed.Stories(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, 3, items[0].Story.ID)
	assert.Equal(t, "sarahchen", items[0].User.Username)
	assert.Equal(t, 2, items[1].Story.ID)
	assert.Equal(t, 4, items[2].Story.ID)
	assert.Nil(t, items[2].User)
}

func TestSearch(t *testing.T) {
	f := newFixture(t)
	f.posts.EXPECT().List(gomock.Any()).Return(posts, nil).Times(2)
	f.users.EXPECT().List(gomock.Any()).Return(users, nil).Times(2)

	res, err := f.feed.Search(context.Background(), "  MARCUS ")
	require.NoError(t, err)
	require.Len(t, res.Users, 1)
	assert.Equal(t, 2, res.Users[0].ID)
	assert.Empty(t, res.Posts)

	res, err = f.feed.Search(context.Background(), "#travel")
	require.NoError(t, err)
	assert.Empty(t, res.Users)
	require.Len(t, res.Posts, 1)
	assert.Equal(t, 3, res.Posts[0].Post.ID)
}

func TestSearchEmptyQuerySkipsLoads(t *testing.T) {
	f := newFixture(t)

	res, err := f.feed.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, res.Users)
	assert.Empty(t, res.Posts)
}

func TestPublish(t *testing.T) {
	f := newFixture(t)
	want := domain.PostDraft{
		AuthorID: 1,
		Content:  "Loving #Go and #Coding",
		Location: "Berlin",
		Hashtags: []string{"#Go", "#Coding"},
		Media:    []string{},
	}
	f.posts.EXPECT().Create(gomock.Any(), want).Return(domain.Post{ID: 10, AuthorID: 1, Content: want.Content, Hashtags: want.Hashtags}, nil)

	created, err := f.feed.Publish(context.Background(), 1, "  Loving #Go and #Coding \n", " Berlin ")
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)
}

func TestPublishRejectsEmptyContent(t *testing.T) {
	f := newFixture(t)

	_, err := f.feed.Publish(context.Background(), 1, "   ", "")
	assert.True(t, errors.IsInvalidInput(err))
}
