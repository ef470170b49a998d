package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/simpletest/user-api/internal/pkg/metrics"
	"github.com/simpletest/user-api/internal/core/domain"
	"github.com/simpletest/user-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type UserService struct {
	store  ports.UserStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewUserService(store ports.UserStore, logger zerolog.Logger) *UserService {
	return &UserService{store: store, logger: logger, now: time.Now}
}

// Seed loads users into the store when it is empty. It is a no-op otherwise,
// so restarting against a persistent backend does not duplicate the seed.
func (s *UserService) Seed(ctx context.Context, users []*domain.User) error {
	n, err := s.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed users: count: %w", err)
	}
	if n > 0 {
		s.logger.Debug().Int64("stored", n).Msg("store not empty, skipping seed")
		return nil
	}

	for _, u := range users {
		if _, err := s.store.Create(ctx, u); err != nil {
			return fmt.Errorf("seed users: %s: %w", u.Email, err)
		}
	}
	s.logger.Info().Int("count", len(users)).Msg("seed users loaded")
	s.refreshStoredGauge(ctx)
	return nil
}

// CreateUser stores a new active user. The password is not kept.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	s.logger.Info().Str("email", input.Email).Msg("creating user")

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("create user: %w: %q", domain.ErrInvalidRole, role)
	}

	now := s.timestamp()
	created, err := s.store.Create(ctx, &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		Role:      role,
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.recordError("create", err)
		if errors.Is(err, domain.ErrEmailConflict) {
			s.logger.Warn().Str("email", input.Email).Msg("create rejected: email already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(created.Role)).Inc()
	s.refreshStoredGauge(ctx)
	s.logger.Info().Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

// ListUsers applies search, role filter and pagination in that order.
func (s *UserService) ListUsers(ctx context.Context, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	page := input.Page
	if page <= 0 {
		page = defaultPage
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if input.Role != "" && !input.Role.Valid() {
		return nil, fmt.Errorf("list users: %w: %q", domain.ErrInvalidRole, input.Role)
	}

	users, total, err := s.store.List(ctx, domain.UserFilter{
		Search: input.Search,
		Role:   input.Role,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &ports.ListUsersResult{
		Users: users,
		Pagination: ports.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: domain.TotalPages(total, limit),
		},
	}, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		s.recordError("get", err)
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

// UpdateUser replaces only the supplied fields and refreshes UpdatedAt.
func (s *UserService) UpdateUser(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, fmt.Errorf("update user %d: %w: %q", id, domain.ErrInvalidStatus, *input.Status)
	}

	updated, err := s.store.Update(ctx, id, domain.UserPatch{
		Name:   input.Name,
		Email:  input.Email,
		Status: input.Status,
	}, s.timestamp())
	if err != nil {
		s.recordError("update", err)
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}

	s.logger.Info().Int64("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.recordError("delete", err)
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	s.refreshStoredGauge(ctx)
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

// timestamp is truncated to milliseconds so every backend round-trips it unchanged.
func (s *UserService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *UserService) recordError(op string, err error) {
	reason := "internal"
	switch {
	case errors.Is(err, domain.ErrEmailConflict):
		reason = "conflict"
	case errors.Is(err, domain.ErrUserNotFound):
		reason = "not_found"
	default:
		s.logger.Error().Err(err).Str("operation", op).Msg("user store failure")
	}
	metrics.UserOperationErrorsTotal.WithLabelValues(op, reason).Inc()
}

func (s *UserService) refreshStoredGauge(ctx context.Context) {
	n, err := s.store.Count(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to count stored users")
		return
	}
	metrics.UsersStored.Set(float64(n))
}
