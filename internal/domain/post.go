package domain

import (
	"slices"
	"time"
)

type Post struct {
	ID        int       `json:"Id" yaml:"id"`
	AuthorID  int       `json:"authorId" yaml:"authorId"`
	Content   string    `json:"content" yaml:"content"`
	Location  string    `json:"location,omitempty" yaml:"location"`
	Hashtags  []string  `json:"hashtags" yaml:"hashtags"`
	Media     []string  `json:"media" yaml:"media"`
	Likes     int       `json:"likes" yaml:"likes"`
	Comments  int       `json:"comments" yaml:"comments"`
	Shares    int       `json:"shares" yaml:"shares"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Clone returns a deep copy; hashtag and media slices are not shared.
func (p Post) Clone() Post {
	p.Hashtags = slices.Clone(p.Hashtags)
	p.Media = slices.Clone(p.Media)
	return p
}

func (p Post) HasHashtags() bool {
	return len(p.Hashtags) > 0
}

func (p Post) HasMedia() bool {
	return len(p.Media) > 0
}

type PostDraft struct {
	AuthorID int      `json:"authorId"`
	Content  string   `json:"content"`
	Location string   `json:"location"`
	Hashtags []string `json:"hashtags"`
	Media    []string `json:"media"`
}

type PostPatch struct {
	Content  *string   `json:"content"`
	Location *string   `json:"location"`
	Hashtags *[]string `json:"hashtags"`
	Media    *[]string `json:"media"`
	Likes    *int      `json:"likes"`
	Comments *int      `json:"comments"`
	Shares   *int      `json:"shares"`
}

func (p PostPatch) Validate() error {
	if err := nonNegative("likes", p.Likes); err != nil {
		return err
	}
	if err := nonNegative("comments", p.Comments); err != nil {
		return err
	}
	return nonNegative("shares", p.Shares)
}

func (p PostPatch) Apply(post *Post) {
	setIf(&post.Content, p.Content)
	setIf(&post.Location, p.Location)
	if p.Hashtags != nil {
		post.Hashtags = slices.Clone(*p.Hashtags)
	}
	if p.Media != nil {
		post.Media = slices.Clone(*p.Media)
	}
	setIf(&post.Likes, p.Likes)
	setIf(&post.Comments, p.Comments)
	setIf(&post.Shares, p.Shares)
}
