package projects

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"timeclock/internal/database"
	"timeclock/internal/middleware"
	"timeclock/internal/model"
	"timeclock/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	origList := listProjects
	origCreate := createProject
	origUpdate := updateProject
	origDelete := deleteProject
	origNewID := newID
	t.Cleanup(func() {
		listProjects = origList
		createProject = origCreate
		updateProject = origUpdate
		deleteProject = origDelete
		newID = origNewID
	})
}

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func newCtx(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = okValidator{}
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListProjectsHandler(t *testing.T) {
	restoreGlobals(t)

	listProjects = func(ctx context.Context, db database.DB) ([]model.Project, error) {
		return []model.Project{{ID: "p1", Name: "Alpha", Status: "active"}}, nil
	}
	ctx, rec := newCtx(http.MethodGet, "/projects", "")
	require.NoError(t, ListProjectsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Alpha")

	// empty list serializes as [] not null
	listProjects = func(ctx context.Context, db database.DB) ([]model.Project, error) {
		return nil, nil
	}
	ctx, rec = newCtx(http.MethodGet, "/projects", "")
	require.NoError(t, ListProjectsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, "[]\n", rec.Body.String())

	listProjects = func(ctx context.Context, db database.DB) ([]model.Project, error) {
		return nil, errors.New("boom")
	}
	ctx, rec = newCtx(http.MethodGet, "/projects", "")
	require.NoError(t, ListProjectsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateProjectHandler(t *testing.T) {
	restoreGlobals(t)

	newID = func() string { return "fixed-id" }
	var got *model.Project
	createProject = func(ctx context.Context, db database.DB, p *model.Project) (*model.Project, error) {
		got = p
		return p, nil
	}
	ctx, rec := newCtx(http.MethodPost, "/projects", `{"name":"Alpha"}`)
	ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: "admin-1", Role: model.RoleAdmin})
	require.NoError(t, CreateProjectHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "fixed-id", got.ID)
	require.Equal(t, "active", got.Status)
	require.Equal(t, "admin-1", *got.CreatedBy)

	// explicit status kept
	ctx, _ = newCtx(http.MethodPost, "/projects", `{"name":"Alpha","status":"archived"}`)
	ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: "admin-1"})
	require.NoError(t, CreateProjectHandler(&database.FakeDB{})(ctx))
	require.Equal(t, "archived", got.Status)
}

func TestUpdateProjectHandler(t *testing.T) {
	restoreGlobals(t)

	updateProject = func(ctx context.Context, db database.DB, p *model.Project) error {
		require.Equal(t, "p1", p.ID)
		return nil
	}
	ctx, rec := newCtx(http.MethodPut, "/projects/p1", `{"name":"Alpha"}`)
	ctx.SetParamNames("project_id")
	ctx.SetParamValues("p1")
	require.NoError(t, UpdateProjectHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)

	updateProject = func(ctx context.Context, db database.DB, p *model.Project) error {
		return fmt.Errorf("UpdateProject: %w", pgx.ErrNoRows)
	}
	ctx, rec = newCtx(http.MethodPut, "/projects/missing", `{"name":"Alpha"}`)
	ctx.SetParamNames("project_id")
	ctx.SetParamValues("missing")
	require.NoError(t, UpdateProjectHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "project not found")
}

func TestDeleteProjectHandler(t *testing.T) {
	restoreGlobals(t)

	deleteProject = func(ctx context.Context, db database.DB, id string) error {
		require.Equal(t, "p1", id)
		return nil
	}
	ctx, rec := newCtx(http.MethodDelete, "/projects/p1", "")
	ctx.SetParamNames("project_id")
	ctx.SetParamValues("p1")
	require.NoError(t, DeleteProjectHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)

	deleteProject = func(ctx context.Context, db database.DB, id string) error {
		return fmt.Errorf("DeleteProject: %w", pgx.ErrNoRows)
	}
	ctx, rec = newCtx(http.MethodDelete, "/projects/missing", "")
	ctx.SetParamNames("project_id")
	ctx.SetParamValues("missing")
	require.NoError(t, DeleteProjectHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
