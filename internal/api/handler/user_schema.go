package handler

// --- Request types ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=50"          example:"홍길동"`
	Email    string `json:"email"    validate:"required,email"                 example:"hong@example.com"`
	Password string `json:"password" validate:"required,min=8"                 example:"password123"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin user guest" example:"user" enums:"admin,user,guest"`
} // @name CreateUserRequest

// updateUserRequest has pointer fields so absent keys are distinguishable from empty values.
type updateUserRequest struct {
	Name   *string `json:"name,omitempty"   validate:"omitempty,min=2,max=50"                     example:"김철수"`
	Email  *string `json:"email,omitempty"  validate:"omitempty,email"                            example:"kim@example.com"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended" example:"active" enums:"active,inactive,suspended"`
} // @name UpdateUserRequest

type listUsersRequest struct {
	Page   int    `query:"page"   validate:"omitempty,gte=1"`
	Limit  int    `query:"limit"  validate:"omitempty,gte=1"`
	Search string `query:"search"`
	Role   string `query:"role"   validate:"omitempty,oneof=admin user guest"`
}

// --- Response types ---

type userResponse struct {
	ID        int64  `json:"id"        example:"1"`
	Name      string `json:"name"      example:"홍길동"`
	Email     string `json:"email"     example:"hong@example.com"`
	Role      string `json:"role"      example:"user" enums:"admin,user,guest"`
	Status    string `json:"status"    example:"active" enums:"active,inactive,suspended"`
	CreatedAt string `json:"createdAt" example:"2024-01-01T00:00:00.000Z"`
	UpdatedAt string `json:"updatedAt" example:"2024-01-01T00:00:00.000Z"`
} // @name UserResponse

type paginationResponse struct {
	Total      int64 `json:"total"      example:"100"`
	Page       int   `json:"page"       example:"1"`
	Limit      int   `json:"limit"      example:"10"`
	TotalPages int   `json:"totalPages" example:"10"`
} // @name PaginationResponse

type listUsersResponse struct {
	Users      []userResponse     `json:"users"`
	Pagination paginationResponse `json:"pagination"`
} // @name UserListResponse
