package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simpletest/user-api/internal/core/ports"
)

const (
	msgUserCreated = "사용자가 성공적으로 생성되었습니다."
	msgUsersListed = "사용자 목록을 성공적으로 조회했습니다."
	msgUserFound   = "사용자 정보를 성공적으로 조회했습니다."
	msgUserUpdated = "사용자 정보가 성공적으로 업데이트되었습니다."
	msgUserDeleted = "사용자가 성공적으로 삭제되었습니다."
)

// UserHandler handles HTTP requests for user directory operations.
// Domain errors are returned as-is and rendered by the central error handler.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /users.
//
// @Summary      사용자 생성
// @Description  새로운 사용자를 생성합니다.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "생성할 사용자 정보"
// @Success      201   {object}  envelope{data=userResponse}
// @Failure      400   {object}  ErrorEnvelope
// @Failure      409   {object}  ErrorEnvelope
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	user, err := h.service.CreateUser(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, msgUserCreated, toUserResponse(user))
}

// List handles GET /users.
//
// @Summary      사용자 목록 조회
// @Description  페이지네이션과 필터링을 지원하는 사용자 목록을 조회합니다.
// @Tags         users
// @Produce      json
// @Param        page    query     int     false  "페이지 번호"       minimum(1)  default(1)
// @Param        limit   query     int     false  "페이지당 항목 수"  minimum(1)  default(10)
// @Param        search  query     string  false  "이름 검색"
// @Param        role    query     string  false  "역할 필터"  Enums(admin, user, guest)
// @Success      200     {object}  envelope{data=listUsersResponse}
// @Failure      400     {object}  ErrorEnvelope
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	var req listUsersRequest
	if err := bindQuery(c, &req, "page", "limit", "search", "role"); err != nil {
		return err
	}
	if blankQuery(c, "role") {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be one of the following values: admin, user, guest")
	}

	result, err := h.service.ListUsers(c.Request().Context(), toListInput(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, msgUsersListed, toListResponse(result))
}

// Get handles GET /users/:id.
//
// @Summary      사용자 상세 조회
// @Description  특정 사용자의 상세 정보를 조회합니다.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "사용자 ID"
// @Success      200  {object}  envelope{data=userResponse}
// @Failure      400  {object}  ErrorEnvelope
// @Failure      404  {object}  ErrorEnvelope
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, msgUserFound, toUserResponse(user))
}

// Update handles PUT /users/:id. Only the supplied fields change.
//
// @Summary      사용자 정보 수정
// @Description  특정 사용자의 정보를 수정합니다.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "사용자 ID"
// @Param        body  body      updateUserRequest  true  "수정할 사용자 정보"
// @Success      200   {object}  envelope{data=userResponse}
// @Failure      400   {object}  ErrorEnvelope
// @Failure      404   {object}  ErrorEnvelope
// @Failure      409   {object}  ErrorEnvelope
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	user, err := h.service.UpdateUser(c.Request().Context(), id, toUpdateInput(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, msgUserUpdated, toUserResponse(user))
}

// Delete handles DELETE /users/:id.
//
// @Summary      사용자 삭제
// @Description  특정 사용자를 삭제합니다.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "사용자 ID"
// @Success      200  {object}  envelope
// @Failure      400  {object}  ErrorEnvelope
// @Failure      404  {object}  ErrorEnvelope
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, msgUserDeleted, nil)
}
