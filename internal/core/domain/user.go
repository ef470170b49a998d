package domain

import (
	"errors"
	"math"
	"strings"
	"time"
)

// Role is the access level attached to a user record.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Status is the lifecycle state of a user account.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailConflict = errors.New("email already exists")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidStatus = errors.New("invalid status")
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

// User is a single entry of the user directory.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a copy that shares no state with u.
func (u *User) Clone() *User {
	c := *u
	return &c
}

// UserPatch lists the fields an update may replace. Nil fields are left untouched.
type UserPatch struct {
	Name   *string
	Email  *string
	Status *Status
}

// Apply merges the supplied fields into u and stamps UpdatedAt.
func (p UserPatch) Apply(u *User, now time.Time) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	u.UpdatedAt = now
}

// UserFilter selects and pages user records. Page is 1-based.
type UserFilter struct {
	Search string
	Role   Role
	Page   int
	Limit  int
}

// Matches reports whether u passes the search and role filters.
// The search gate trims whitespace; the comparison itself uses the term as given.
func (f UserFilter) Matches(u *User) bool {
	if strings.TrimSpace(f.Search) != "" &&
		!strings.Contains(strings.ToLower(u.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	return true
}

// Paginate returns the [(page-1)*limit, page*limit) window of users.
// Out-of-range pages yield an empty, non-nil slice.
func (f UserFilter) Paginate(users []*User) []*User {
	if !f.InRange(int64(len(users))) {
		return []*User{}
	}
	start := (f.Page - 1) * f.Limit
	end := start + f.Limit
	if end > len(users) || end < start {
		end = len(users)
	}
	return users[start:end]
}

// InRange reports whether the page selects at least one of total records.
// The bound is checked by division so huge page numbers cannot overflow.
func (f UserFilter) InRange(total int64) bool {
	if f.Limit <= 0 || f.Page < 1 || total <= 0 {
		return false
	}
	return int64(f.Page-1) <= (total-1)/int64(f.Limit)
}

// TotalPages is ceil(total/limit), zero when limit is not positive.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

var seedTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// SeedUsers is the fixed dataset loaded into an empty store at startup.
// IDs are left zero; the store assigns them in order.
func SeedUsers() []*User {
	return []*User{
		{Name: "관리자", Email: "admin@example.com", Role: RoleAdmin, Status: StatusActive, CreatedAt: seedTime, UpdatedAt: seedTime},
		{Name: "홍길동", Email: "hong@example.com", Role: RoleUser, Status: StatusActive, CreatedAt: seedTime, UpdatedAt: seedTime},
	}
}
