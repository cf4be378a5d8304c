package domain

import "time"

// StoryLifetime is how long a story stays visible after it is created.
const StoryLifetime = 24 * time.Hour

type Story struct {
	ID        int       `json:"Id" yaml:"id"`
	UserID    int       `json:"userId" yaml:"userId"`
	Media     string    `json:"media" yaml:"media"`
	ViewCount int       `json:"viewCount" yaml:"viewCount"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt" yaml:"expiresAt"`
}

func (s Story) Clone() Story {
	return s
}

// ActiveAt reports whether the story is still visible at now.
func (s Story) ActiveAt(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

type StoryDraft struct {
	UserID int    `json:"userId"`
	Media  string `json:"media"`
}

type StoryPatch struct {
	Media     *string `json:"media"`
	ViewCount *int    `json:"viewCount"`
}

func (p StoryPatch) Validate() error {
	return nonNegative("viewCount", p.ViewCount)
}

func (p StoryPatch) Apply(s *Story) {
	setIf(&s.Media, p.Media)
	setIf(&s.ViewCount, p.ViewCount)
}
