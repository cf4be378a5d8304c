package userimpl

import (
	"context"
	"time"

	"github.com/orgball2608/socialhub/internal/domain"
	"github.com/orgball2608/socialhub/internal/latency"
	"github.com/orgball2608/socialhub/internal/seed"
	"github.com/orgball2608/socialhub/internal/store"
	"github.com/orgball2608/socialhub/internal/user"
	"github.com/orgball2608/socialhub/pkg/errors"
	"github.com/orgball2608/socialhub/pkg/logger"
	"go.uber.org/fx"
)

const suggestedCount = 3

const (
	listDelay      = 300 * time.Millisecond
	getDelay       = 200 * time.Millisecond
	createDelay    = 400 * time.Millisecond
	writeDelay     = 300 * time.Millisecond
	suggestedDelay = 250 * time.Millisecond
	onlineDelay    = 200 * time.Millisecond
	followDelay    = 300 * time.Millisecond
)

type Opts struct {
	fx.In

	Seed    *seed.Data
	Latency latency.Injector
	Logger  logger.Logger
}

type UserImpl struct {
	users   *store.Collection[domain.User]
	latency latency.Injector
	logger  logger.Logger
}

func New(opts Opts) *UserImpl {
	var users []domain.User
	if opts.Seed != nil {
		users = opts.Seed.Users
	}
	return &UserImpl{
		users: store.NewCollection(users,
			func(u *domain.User) *int { return &u.ID },
			domain.User.Clone,
		),
		latency: opts.Latency,
		logger:  opts.Logger.WithComponent("UserService"),
	}
}

var _ user.Service = (*UserImpl)(nil)

func (s *UserImpl) List(ctx context.Context) ([]domain.User, error) {
	if err := s.latency.Delay(ctx, listDelay); err != nil {
		return nil, err
	}
	return s.users.All(), nil
}

func (s *UserImpl) GetByID(ctx context.Context, id int) (domain.User, error) {
	if err := s.latency.Delay(ctx, getDelay); err != nil {
		return domain.User{}, err
	}
	u, ok := s.users.Get(id)
	if !ok {
		return domain.User{}, errors.NotFound(user.Kind, id)
	}
	return u, nil
}

func (s *UserImpl) Create(ctx context.Context, draft domain.UserDraft) (domain.User, error) {
	if err := s.latency.Delay(ctx, createDelay); err != nil {
		return domain.User{}, err
	}
	created := s.users.Insert(func(id int) domain.User {
		return domain.User{
			ID:          id,
			DisplayName: draft.DisplayName,
			Username:    draft.Username,
			Avatar:      draft.Avatar,
			Bio:         draft.Bio,
			IsOnline:    true,
		}
	}, store.Back)

	s.logger.Info("User created", "user_id", created.ID, "username", created.Username)
	return created, nil
}

func (s *UserImpl) Update(ctx context.Context, id int, patch domain.UserPatch) (domain.User, error) {
	if err := patch.Validate(); err != nil {
		return domain.User{}, err
	}
	if err := s.latency.Delay(ctx, writeDelay); err != nil {
		return domain.User{}, err
	}
	return s.mutate(id, func(u *domain.User) {
		patch.Apply(u)
	})
}

func (s *UserImpl) Delete(ctx context.Context, id int) (domain.User, error) {
	if err := s.latency.Delay(ctx, writeDelay); err != nil {
		return domain.User{}, err
	}
	removed, ok := s.users.Delete(id)
	if !ok {
		return domain.User{}, errors.NotFound(user.Kind, id)
	}
	s.logger.Info("User deleted", "user_id", id)
	return removed, nil
}

func (s *UserImpl) GetSuggested(ctx context.Context) ([]domain.User, error) {
	if err := s.latency.Delay(ctx, suggestedDelay); err != nil {
		return nil, err
	}
	return s.users.Filter(nil, suggestedCount), nil
}

func (s *UserImpl) GetOnlineUsers(ctx context.Context) ([]domain.User, error) {
	if err := s.latency.Delay(ctx, onlineDelay); err != nil {
		return nil, err
	}
	return s.users.Filter(func(u domain.User) bool { return u.IsOnline }, 0), nil
}

func (s *UserImpl) Follow(ctx context.Context, id int) (domain.User, error) {
	if err := s.latency.Delay(ctx, followDelay); err != nil {
		return domain.User{}, err
	}
	return s.mutate(id, func(u *domain.User) {
		u.Followers++
	})
}

func (s *UserImpl) Unfollow(ctx context.Context, id int) (domain.User, error) {
	if err := s.latency.Delay(ctx, followDelay); err != nil {
		return domain.User{}, err
	}
	return s.mutate(id, func(u *domain.User) {
		if u.Followers > 0 {
			u.Followers--
		}
	})
}

func (s *UserImpl) mutate(id int, fn func(*domain.User)) (domain.User, error) {
	u, ok, err := s.users.Update(id, func(u *domain.User) error {
		fn(u)
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		return domain.User{}, errors.NotFound(user.Kind, id)
	}
	return u, nil
}
