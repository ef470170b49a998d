package ports

import (
	"context"
	"time"

	"github.com/simpletest/user-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted when creating a user.
// Password is validated at the boundary and never stored.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role // empty = domain.RoleUser
}

// UpdateUserInput carries a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Name   *string
	Email  *string
	Status *domain.Status
}

// ListUsersInput carries the list query. Zero Page/Limit select the defaults.
type ListUsersInput struct {
	Page   int
	Limit  int
	Search string
	Role   domain.Role
}

// Pagination describes the window returned by ListUsers.
type Pagination struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListUsersResult is returned by ListUsers.
type ListUsersResult struct {
	Users      []*domain.User
	Pagination Pagination
}

// UserService defines the user directory use cases.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// Greeting is the result of a personalised greeting.
type Greeting struct {
	Message   string
	Language  domain.Language
	Timestamp time.Time
}

// GreetingService renders greetings.
type GreetingService interface {
	Hello() string
	Greet(name, language string) Greeting
}

// SystemInfo describes the running process.
type SystemInfo struct {
	AppName     string
	Version     string
	Environment string
	StartedAt   time.Time
	Uptime      time.Duration
	HeapMB      float64
}

// SystemService reports process metadata.
type SystemService interface {
	Info() SystemInfo
}
