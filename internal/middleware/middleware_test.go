package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"timeclock/internal/database"
	"timeclock/internal/model"
	"timeclock/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	origGetUserByID := getUserByID
	t.Cleanup(func() {
		getUserByID = origGetUserByID
	})
}

func userExists(u model.User) func(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	return func(ctx context.Context, db database.DB, userID string) (*model.User, error) {
		cp := u
		return &cp, nil
	}
}

func userMissing(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	return nil, fmt.Errorf("GetUserByID: %w", pgx.ErrNoRows)
}

func issueToken(t *testing.T, role model.UserRole) string {
	t.Helper()
	token, err := service.IssueAccessToken(model.User{
		ID:    "u1",
		Email: "user@example.com",
		Role:  role,
	}, time.Hour)
	require.NoError(t, err)
	return token
}

func newContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	restoreGlobals(t)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	db := &database.FakeDB{}

	t.Run("missing header", func(t *testing.T) {
		err := RequireAuth(db)(next)(newContext(t, ""))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
		require.Equal(t, "missing token", he.Message)
	})

	t.Run("malformed header", func(t *testing.T) {
		err := RequireAuth(db)(next)(newContext(t, "Token abc"))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
		require.Equal(t, "invalid authorization header format", he.Message)
	})

	t.Run("invalid token", func(t *testing.T) {
		err := RequireAuth(db)(next)(newContext(t, "Bearer not-a-jwt"))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("valid token stores claims", func(t *testing.T) {
		getUserByID = userExists(model.User{ID: "u1", Role: model.RoleEmployee})
		c := newContext(t, "Bearer "+issueToken(t, model.RoleEmployee))
		var seen *service.CustomClaims
		err := RequireAuth(db)(func(c echo.Context) error {
			seen = c.Get(ContextUserKey).(*service.CustomClaims)
			return c.NoContent(http.StatusOK)
		})(c)
		require.NoError(t, err)
		require.Equal(t, "u1", seen.UserID)
		require.Equal(t, model.RoleEmployee, seen.Role)
	})

	t.Run("lowercase bearer accepted", func(t *testing.T) {
		getUserByID = userExists(model.User{ID: "u1", Role: model.RoleEmployee})
		c := newContext(t, "bearer "+issueToken(t, model.RoleEmployee))
		require.NoError(t, RequireAuth(db)(next)(c))
	})

	// 帳號刪除後，尚未過期的 token 也必須失效
	t.Run("deleted user is unauthorized", func(t *testing.T) {
		getUserByID = userMissing
		nextCalled := false
		err := RequireAuth(db)(func(c echo.Context) error {
			nextCalled = true
			return c.NoContent(http.StatusOK)
		})(newContext(t, "Bearer "+issueToken(t, model.RoleEmployee)))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
		require.Equal(t, "user no longer exists", he.Message)
		require.False(t, nextCalled)
	})

	t.Run("lookup failure is a 500", func(t *testing.T) {
		getUserByID = func(ctx context.Context, db database.DB, userID string) (*model.User, error) {
			return nil, errors.New("connection reset")
		}
		err := RequireAuth(db)(next)(newContext(t, "Bearer "+issueToken(t, model.RoleEmployee)))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusInternalServerError, he.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	restoreGlobals(t)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	db := &database.FakeDB{}

	t.Run("admin passes", func(t *testing.T) {
		getUserByID = userExists(model.User{ID: "u1", Role: model.RoleAdmin})
		c := newContext(t, "Bearer "+issueToken(t, model.RoleAdmin))
		require.NoError(t, RequireAdmin(db)(next)(c))
	})

	t.Run("employee forbidden", func(t *testing.T) {
		getUserByID = userExists(model.User{ID: "u1", Role: model.RoleEmployee})
		c := newContext(t, "Bearer "+issueToken(t, model.RoleEmployee))
		err := RequireAdmin(db)(next)(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusForbidden, he.Code)
		require.Equal(t, "admin privileges required", he.Message)
	})

	t.Run("no token still unauthorized", func(t *testing.T) {
		err := RequireAdmin(db)(next)(newContext(t, ""))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("deleted admin is unauthorized", func(t *testing.T) {
		getUserByID = userMissing
		err := RequireAdmin(db)(next)(newContext(t, "Bearer "+issueToken(t, model.RoleAdmin)))
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})
}
