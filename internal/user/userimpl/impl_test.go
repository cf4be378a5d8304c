package userimpl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgball2608/socialhub/internal/domain"
	"github.com/orgball2608/socialhub/internal/latency"
	"github.com/orgball2608/socialhub/internal/seed"
	"github.com/orgball2608/socialhub/internal/user/userimpl"
	"github.com/orgball2608/socialhub/pkg/errors"
	"github.com/orgball2608/socialhub/pkg/logger"
)

func seededUsers() []domain.User {
	return []domain.User{
		{ID: 1, DisplayName: "Sarah Chen", Username: "sarahchen", Followers: 10, IsOnline: true},
		{ID: 2, DisplayName: "Marcus Johnson", Username: "marcusj", Followers: 1, IsOnline: false},
		{ID: 3, DisplayName: "Elena Rodriguez", Username: "elena", Followers: 0, IsOnline: true},
	}
}

func newService(users []domain.User) *userimpl.UserImpl {
	return userimpl.New(userimpl.Opts{
		Seed:    &seed.Data{Users: users},
		Latency: latency.Off{},
		Logger:  logger.Nop(),
	})
}

func TestList(t *testing.T) {
	svc := newService(seededUsers())

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seededUsers(), users)
}

func TestListIsolation(t *testing.T) {
	svc := newService(seededUsers())
	ctx := context.Background()

	users, err := svc.List(ctx)
	require.NoError(t, err)
	users[0].Followers = 1000
	users[1] = domain.User{}

	again, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seededUsers(), again)
}

func TestGetByID(t *testing.T) {
	svc := newService(seededUsers())
	ctx := context.Background()

	u, err := svc.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "marcusj", u.Username)

	_, err = svc.GetByID(ctx, 42)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "user", errors.KindOf(err))
}

func TestCreate(t *testing.T) {
	svc := newService(seededUsers())
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.UserDraft{DisplayName: "New Person", Username: "newbie"})
	require.NoError(t, err)

	assert.Equal(t, 4, created.ID)
	assert.Zero(t, created.Followers)
	assert.Zero(t, created.Following)
	assert.Zero(t, created.Posts)
	assert.True(t, created.IsOnline)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, users[len(users)-1].ID)
}

func TestCreateOnEmptyCollection(t *testing.T) {
	svc := newService(nil)

	created, err := svc.Create(context.Background(), domain.UserDraft{Username: "first"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestCreateNeverReusesIds(t *testing.T) {
	svc := newService(seededUsers())
	ctx := context.Background()

	_, err := svc.Delete(ctx, 3)
	require.NoError(t, err)

	seen := map[int]bool{1: true, 2: true, 3: true}
	for i := 0; i < 5; i++ {
		u, err := svc.Create(ctx, domain.UserDraft{})
		require.NoError(t, err)
		assert.False(t, seen[u.ID], "id %d reused", u.ID)
		seen[u.ID] = true
	}
}

func TestUpdate(t *testing.T) {
	svc := newService(seededUsers())
	ctx := context.Background()
	bio := "hello"

	updated, err := svc.Update(ctx, 1, domain.UserPatch{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "hello", updated.Bio)
	assert.Equal(t, "sarahchen", updated.Username)

	got, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = svc.Update(ctx, 99, domain.UserPatch{Bio: &bio})
	assert.True(t, errors.IsNotFound(err))

	neg := -5
	_, err = svc.Update(ctx, 1, domain.UserPatch{Followers: &neg})
	assert.True(t, errors.IsInvalidInput(err))
}

func TestDelete(t *testing.T) {
	svc := newService(seededUsers())
	ctx := context.Background()

	removed, err := svc.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "marcusj", removed.Username)

	_, err = svc.GetByID(ctx, 2)
	assert.True(t, errors.IsNotFound(err))

	_, err = svc.Delete(ctx, 2)
	assert.True(t, errors.IsNotFound(err))
}

func TestGetSuggested(t *testing.T) {
	users := append(seededUsers(), domain.User{ID: 4, Username: "fourth"})
	svc := newService(users)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.UserDraft{Username: "later"})
	require.NoError(t, err)

	suggested, err := svc.GetSuggested(ctx)
	require.NoError(t, err)
	assert.Equal(t, seededUsers(), suggested)
}

func TestGetOnlineUsers(t *testing.T) {
	svc := newService(seededUsers())

	online, err := svc.GetOnlineUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, online, 2)
	assert.Equal(t, 1, online[0].ID)
	assert.Equal(t, 3, online[1].ID)
}

func TestFollowUnfollow(t *testing.T) {
	svc := newService(seededUsers())
	ctx := context.Background()

	u, err := svc.Follow(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 11, u.Followers)

	u, err = svc.Unfollow(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, u.Followers)
}

func TestUnfollowClampsAtZero(t *testing.T) {
	svc := newService(seededUsers())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		u, err := svc.Unfollow(ctx, 2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, u.Followers, 0)
	}

	u, err := svc.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, u.Followers)
}

func TestFollowMissingUser(t *testing.T) {
	svc := newService(seededUsers())
	ctx := context.Background()

	_, err := svc.Follow(ctx, 999)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "user", errors.KindOf(err))

	_, err = svc.Unfollow(ctx, 999)
	assert.True(t, errors.IsNotFound(err))
}

func TestCancelledContextSkipsMutation(t *testing.T) {
	svc := newService(seededUsers())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Follow(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)

	u, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 10, u.Followers)
}
