package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"timeclock/internal/database"
	"timeclock/internal/service"
	"timeclock/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var getUserByID = store.GetUserByID

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	tokenString := parts[1]
	claims, err := service.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAuth 驗證 bearer token 並確認其指涉的使用者仍然存在；
// 帳號被刪除後，既有 token 立即失效
func RequireAuth(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c)
			if err != nil {
				return err
			}
			if _, err := getUserByID(c.Request().Context(), db, claims.UserID); err != nil {
				if store.IsNotFound(err) {
					return echo.NewHTTPError(http.StatusUnauthorized, "user no longer exists")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to resolve user")
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

func RequireAdmin(db database.DB) echo.MiddlewareFunc {
	auth := RequireAuth(db)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.CustomClaims)
			if !claims.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		})
	}
}
