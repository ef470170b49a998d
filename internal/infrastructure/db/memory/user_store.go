// Package memory holds the process-local user store. State is lost on restart.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/simpletest/user-api/internal/core/domain"
)

// UserStore keeps users in an id-keyed map plus the ids in insertion order.
// Ids come from a counter that only grows, so insertion order is id order.
type UserStore struct {
	mu     sync.RWMutex
	byID   map[int64]*domain.User
	order  []int64
	nextID int64
}

// NewUserStore returns an empty store whose first id is 1.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:   make(map[int64]*domain.User),
		nextID: 1,
	}
}

// Ping always succeeds.
func (s *UserStore) Ping(context.Context) error {
	return nil
}

func (s *UserStore) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailOwner(u.Email) != 0 {
		return nil, domain.ErrEmailConflict
	}

	stored := u.Clone()
	stored.ID = s.nextID
	s.nextID++

	s.byID[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	return stored.Clone(), nil
}

func (s *UserStore) FindByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (s *UserStore) List(_ context.Context, filter domain.UserFilter) ([]*domain.User, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*domain.User, 0, len(s.order))
	for _, id := range s.order {
		if u := s.byID[id]; filter.Matches(u) {
			matched = append(matched, u)
		}
	}

	page := filter.Paginate(matched)
	out := make([]*domain.User, len(page))
	for i, u := range page {
		out[i] = u.Clone()
	}
	return out, int64(len(matched)), nil
}

func (s *UserStore) Update(_ context.Context, id int64, patch domain.UserPatch, now time.Time) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Email != nil {
		if owner := s.emailOwner(*patch.Email); owner != 0 && owner != id {
			return nil, domain.ErrEmailConflict
		}
	}

	patch.Apply(u, now)
	return u.Clone(), nil
}

func (s *UserStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.byID, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return nil
}

func (s *UserStore) Count(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.byID)), nil
}

// emailOwner returns the id holding email, or 0. Caller holds mu.
func (s *UserStore) emailOwner(email string) int64 {
	for _, id := range s.order {
		if s.byID[id].Email == email {
			return id
		}
	}
	return 0
}
