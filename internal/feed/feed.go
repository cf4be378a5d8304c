package feed

import (
	"context"
	"regexp"

	"github.com/orgball2608/socialhub/internal/domain"
)

// Filter narrows a list of posts.
type Filter string

const (
	FilterAll   Filter = "all"
	FilterMedia Filter = "media"
)

func ParseFilter(s string) (Filter, bool) {
	switch Filter(s) {
	case "", FilterAll:
		return FilterAll, true
	case FilterMedia:
		return FilterMedia, true
	}
	return "", false
}

// Item is a post joined with its author. Author is nil when the author no longer exists.
type Item struct {
	Post      domain.Post  `json:"post"`
	Author    *domain.User `json:"author"`
	PostedAgo string       `json:"postedAgo"`
}

type StoryItem struct {
	Story domain.Story `json:"story"`
	User  *domain.User `json:"user"`
}

type ProfileCard struct {
	User      domain.User `json:"user"`
	Posts     string      `json:"postsLabel"`
	Followers string      `json:"followersLabel"`
	Following string      `json:"followingLabel"`
}

type Profile struct {
	Card  ProfileCard `json:"card"`
	Posts []Item      `json:"posts"`
}

type SearchResult struct {
	Users []domain.User `json:"users"`
	Posts []Item        `json:"posts"`
}

//go:generate go run go.uber.org/mock/mockgen -source=feed.go -destination=mocks/mock.go
type Service interface {
	// Home returns every post, newest first, with its author
	Home(ctx context.Context) ([]Item, error)

	// Explore returns the trending posts with their authors
	Explore(ctx context.Context, filter Filter) ([]Item, error)

	// Profile returns a user together with the posts they wrote
	Profile(ctx context.Context, userID int, filter Filter) (Profile, error)

	// Stories returns the most recent active story of each user, newest first
	Stories(ctx context.Context) ([]StoryItem, error)

	// Search matches users by name or handle and posts by content or hashtag, ignoring case
	Search(ctx context.Context, query string) (SearchResult, error)

	// Publish creates a post from raw composer input, extracting its hashtags
	Publish(ctx context.Context, authorID int, content, location string) (domain.Post, error)
}

var hashtagPattern = regexp.MustCompile(`#\w+`)

// ExtractHashtags returns the hashtags in content in order of appearance.
func ExtractHashtags(content string) []string {
	tags := hashtagPattern.FindAllString(content, -1)
	if tags == nil {
		return []string{}
	}
	return tags
}
