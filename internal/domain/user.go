package domain

import "github.com/orgball2608/socialhub/pkg/errors"

type User struct {
	ID          int    `json:"Id" yaml:"id"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	Username    string `json:"username" yaml:"username"`
	Avatar      string `json:"avatar" yaml:"avatar"`
	Bio         string `json:"bio,omitempty" yaml:"bio"`
	Posts       int    `json:"posts" yaml:"posts"`
	Followers   int    `json:"followers" yaml:"followers"`
	Following   int    `json:"following" yaml:"following"`
	IsOnline    bool   `json:"isOnline" yaml:"isOnline"`
}

func (u User) Clone() User {
	return u
}

// UserDraft holds the caller supplied attributes of a new user.
type UserDraft struct {
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar"`
	Bio         string `json:"bio"`
}

// UserPatch is a partial update; nil fields are left unchanged.
type UserPatch struct {
	DisplayName *string `json:"displayName"`
	Username    *string `json:"username"`
	Avatar      *string `json:"avatar"`
	Bio         *string `json:"bio"`
	Posts       *int    `json:"posts"`
	Followers   *int    `json:"followers"`
	Following   *int    `json:"following"`
	IsOnline    *bool   `json:"isOnline"`
}

func (p UserPatch) Validate() error {
	if err := nonNegative("posts", p.Posts); err != nil {
		return err
	}
	if err := nonNegative("followers", p.Followers); err != nil {
		return err
	}
	return nonNegative("following", p.Following)
}

func (p UserPatch) Apply(u *User) {
	setIf(&u.DisplayName, p.DisplayName)
	setIf(&u.Username, p.Username)
	setIf(&u.Avatar, p.Avatar)
	setIf(&u.Bio, p.Bio)
	setIf(&u.Posts, p.Posts)
	setIf(&u.Followers, p.Followers)
	setIf(&u.Following, p.Following)
	setIf(&u.IsOnline, p.IsOnline)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func nonNegative(field string, v *int) error {
	if v != nil && *v < 0 {
		return errors.Invalid(field + " must not be negative")
	}
	return nil
}
