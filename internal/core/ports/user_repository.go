package ports

import (
	"context"
	"time"

	"github.com/simpletest/user-api/internal/core/domain"
)

// UserStore defines persistence operations for user records.
//
// Implementations run every read-modify-write sequence as a single critical
// section so email uniqueness and id monotonicity hold under concurrent calls.
type UserStore interface {
	// Create assigns the next id to u and stores it.
	// Returns domain.ErrEmailConflict when the email is already taken.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound for unknown ids.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// List returns a page of users matching filter, in id order, and the total match count.
	List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, int64, error)
	// Update merges patch into the record and stamps UpdatedAt with now.
	Update(ctx context.Context, id int64, patch domain.UserPatch, now time.Time) (*domain.User, error)
	// Delete removes the record permanently.
	Delete(ctx context.Context, id int64) error
	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)
}

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
