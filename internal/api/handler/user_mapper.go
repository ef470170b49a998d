package handler

import (
	"github.com/simpletest/user-api/internal/core/domain"
	"github.com/simpletest/user-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(r createUserRequest) ports.CreateUserInput {
	in := ports.CreateUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
	if r.Role != nil {
		in.Role = domain.Role(*r.Role)
	}
	return in
}

func toUpdateInput(r updateUserRequest) ports.UpdateUserInput {
	in := ports.UpdateUserInput{Name: r.Name, Email: r.Email}
	if r.Status != nil {
		st := domain.Status(*r.Status)
		in.Status = &st
	}
	return in
}

func toListInput(r listUsersRequest) ports.ListUsersInput {
	return ports.ListUsersInput{
		Page:   r.Page,
		Limit:  r.Limit,
		Search: r.Search,
		Role:   domain.Role(r.Role),
	}
}

// --- Service result → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: FormatTimestamp(u.CreatedAt),
		UpdatedAt: FormatTimestamp(u.UpdatedAt),
	}
}

func toListResponse(r *ports.ListUsersResult) listUsersResponse {
	users := make([]userResponse, len(r.Users))
	for i, u := range r.Users {
		users[i] = toUserResponse(u)
	}
	return listUsersResponse{
		Users: users,
		Pagination: paginationResponse{
			Total:      r.Pagination.Total,
			Page:       r.Pagination.Page,
			Limit:      r.Pagination.Limit,
			TotalPages: r.Pagination.TotalPages,
		},
	}
}
