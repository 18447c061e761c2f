// File: internal/handler/auth/auth.go
package auth

import (
	"net/http"
	"strings"
	"time"

	"timeclock/internal/api"
	"timeclock/internal/cache"
	"timeclock/internal/database"
	"timeclock/internal/middleware"
	"timeclock/internal/service"
	"timeclock/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

var (
	getUserByEmail       = store.GetUserByEmail
	getUserByID          = store.GetUserByID
	authenticateUser     = service.AuthenticateUser
	issueAccessToken     = service.IssueAccessToken
	issueRefreshToken    = service.IssueRefreshToken
	validateRefreshToken = service.ValidateRefreshToken
	revokeRefreshToken   = service.RevokeRefreshToken
)

// @Summary     登入使用者
// @Description 使用 Email 與 Password 驗證，回傳存取令牌、refresh token 與使用者摘要
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資訊"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid email or password"})
		}
		if err := authenticateUser(*user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid email or password"})
		}

		token, err := issueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		refreshToken, err := issueRefreshToken(c.Request().Context(), rdb, *user, refreshTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue refresh token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Token:        token,
			RefreshToken: refreshToken,
			User: api.UserResponse{
				ID:    user.ID,
				Email: user.Email,
				Name:  user.Name,
				Role:  string(user.Role),
			},
		})
	}
}

// @Summary     換發存取令牌
// @Description 以仍存活的 refresh token 換發新的存取令牌；舊 refresh token 作廢
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RefreshRequest true "refresh token"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/refresh [post]
func RefreshHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		sess, err := validateRefreshToken(c.Request().Context(), rdb, req.RefreshToken)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid refresh token"})
		}
		user, err := getUserByID(c.Request().Context(), db, sess.UserID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "user not found"})
		}

		token, err := issueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		// 換發即輪替：舊 token 撤銷後發新 token
		if err := revokeRefreshToken(c.Request().Context(), rdb, req.RefreshToken); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to rotate refresh token"})
		}
		refreshToken, err := issueRefreshToken(c.Request().Context(), rdb, *user, refreshTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue refresh token"})
		}

		return c.JSON(http.StatusOK, api.TokenResponse{Token: token, RefreshToken: refreshToken})
	}
}

// @Summary     取得當前使用者
// @Description 透過 JWT 取得當前使用者摘要；使用者已被刪除時視為未認證
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func MeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == "" {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "user not found"})
		}
		return c.JSON(http.StatusOK, api.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  string(user.Role),
		})
	}
}
