// File: internal/handler/users/user.go
package users

import (
	"net/http"
	"strings"

	"timeclock/internal/api"
	"timeclock/internal/database"
	"timeclock/internal/model"
	"timeclock/internal/service"
	"timeclock/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	listUsers    = store.ListUsers
	createUser   = store.CreateUser
	deleteUser   = store.DeleteUser
	newID        = uuid.NewString
)

func toResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

// @Summary     List users
// @Description 回傳所有使用者（僅管理員）
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, toResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a new user
// @Description 建立新帳號；Email 重複回 409（僅管理員）
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.CreateUserRequest true "使用者資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		role := model.UserRole(req.Role)
		if req.Role == "" {
			role = model.RoleEmployee
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			ID:           newID(),
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			Name:         req.Name,
			Role:         role,
			Status:       "active",
		})
		if store.IsUniqueViolation(err) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "email already registered"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, toResponse(user))
	}
}

// @Summary     Delete a user
// @Description 刪除使用者；其工時紀錄一併刪除（僅管理員）
// @Tags        users
// @Param       user_id path string true "使用者 ID"
// @Success     204 "No Content"
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := deleteUser(c.Request().Context(), db, c.Param("user_id"))
		if store.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
