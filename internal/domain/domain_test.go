package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgball2608/socialhub/internal/domain"
	"github.com/orgball2608/socialhub/pkg/errors"
)

func TestPostCloneIsDeep(t *testing.T) {
	p := domain.Post{ID: 1, Hashtags: []string{"#go"}, Media: []string{"a.jpg"}}

	c := p.Clone()
	c.Hashtags[0] = "#rust"
	c.Media[0] = "b.jpg"

	assert.Equal(t, "#go", p.Hashtags[0])
	assert.Equal(t, "a.jpg", p.Media[0])
}

func TestStoryActiveAt(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := domain.Story{CreatedAt: created, ExpiresAt: created.Add(domain.StoryLifetime)}

	assert.True(t, s.ActiveAt(created))
	assert.True(t, s.ActiveAt(s.ExpiresAt.Add(-time.Nanosecond)))
	assert.False(t, s.ActiveAt(s.ExpiresAt))
	assert.False(t, s.ActiveAt(s.ExpiresAt.Add(time.Hour)))
}

func TestUserPatch(t *testing.T) {
	name := "Sarah J."
	online := false
	u := domain.User{ID: 1, DisplayName: "Sarah", Followers: 10, IsOnline: true}

	patch := domain.UserPatch{DisplayName: &name, IsOnline: &online}
	require.NoError(t, patch.Validate())
	patch.Apply(&u)

	assert.Equal(t, "Sarah J.", u.DisplayName)
	assert.False(t, u.IsOnline)
	assert.Equal(t, 10, u.Followers)
}

func TestPatchRejectsNegativeCounters(t *testing.T) {
	neg := -1

	assert.True(t, errors.IsInvalidInput(domain.UserPatch{Followers: &neg}.Validate()))
	assert.True(t, errors.IsInvalidInput(domain.PostPatch{Likes: &neg}.Validate()))
	assert.True(t, errors.IsInvalidInput(domain.StoryPatch{ViewCount: &neg}.Validate()))
}

func TestPostPatchCopiesSlices(t *testing.T) {
	tags := []string{"#a"}
	p := domain.Post{ID: 2}

	domain.PostPatch{Hashtags: &tags}.Apply(&p)
	tags[0] = "#b"

	assert.Equal(t, []string{"#a"}, p.Hashtags)
}
