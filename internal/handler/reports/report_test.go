package reports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"timeclock/internal/database"
	"timeclock/internal/middleware"
	"timeclock/internal/model"
	"timeclock/internal/service"
	"timeclock/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	origEntries := listTimeEntries
	origProjects := listProjects
	t.Cleanup(func() {
		listTimeEntries = origEntries
		listProjects = origProjects
	})
}

func newCtx(path string, claims *service.CustomClaims) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(middleware.ContextUserKey, claims)
	return ctx, rec
}

var (
	adminClaims    = &service.CustomClaims{UserID: "admin-1", Role: model.RoleAdmin}
	employeeClaims = &service.CustomClaims{UserID: "emp-1", Role: model.RoleEmployee}
)

func TestTimesheetsHandler(t *testing.T) {
	restoreGlobals(t)

	day := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("entries grouped by day ascending", func(t *testing.T) {
		var got store.EntryFilter
		listTimeEntries = func(ctx context.Context, db database.DB, f store.EntryFilter) ([]model.TimeEntry, error) {
			got = f
			return []model.TimeEntry{
				{ID: "e1", UserID: "emp-1", StartTime: day, EndTime: day.Add(time.Hour), Duration: 3600},
				{ID: "e2", UserID: "emp-1", StartTime: day.Add(2 * time.Hour), EndTime: day.Add(3 * time.Hour), Duration: 3600},
			}, nil
		}
		ctx, rec := newCtx("/timesheets", employeeClaims)
		require.NoError(t, TimesheetsHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, got.Ascending)
		require.NotNil(t, got.UserID)
		require.Equal(t, "emp-1", *got.UserID)
		require.Contains(t, rec.Body.String(), `"date":"2024-01-01"`)
		require.Contains(t, rec.Body.String(), `"total_duration":7200`)
	})

	t.Run("admin may target another user", func(t *testing.T) {
		var got store.EntryFilter
		listTimeEntries = func(ctx context.Context, db database.DB, f store.EntryFilter) ([]model.TimeEntry, error) {
			got = f
			return nil, nil
		}
		ctx, _ := newCtx("/timesheets?user_id=emp-2", adminClaims)
		require.NoError(t, TimesheetsHandler(&database.FakeDB{})(ctx))
		require.NotNil(t, got.UserID)
		require.Equal(t, "emp-2", *got.UserID)
	})

	t.Run("employee user_id query is ignored", func(t *testing.T) {
		var got store.EntryFilter
		listTimeEntries = func(ctx context.Context, db database.DB, f store.EntryFilter) ([]model.TimeEntry, error) {
			got = f
			return nil, nil
		}
		ctx, _ := newCtx("/timesheets?user_id=emp-2", employeeClaims)
		require.NoError(t, TimesheetsHandler(&database.FakeDB{})(ctx))
		require.Equal(t, "emp-1", *got.UserID)
	})

	t.Run("bad date range is a 400", func(t *testing.T) {
		ctx, rec := newCtx("/timesheets?start_date=garbage", adminClaims)
		require.NoError(t, TimesheetsHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty result is an array", func(t *testing.T) {
		listTimeEntries = func(ctx context.Context, db database.DB, f store.EntryFilter) ([]model.TimeEntry, error) {
			return nil, nil
		}
		ctx, rec := newCtx("/timesheets", adminClaims)
		require.NoError(t, TimesheetsHandler(&database.FakeDB{})(ctx))
		require.Equal(t, "[]\n", rec.Body.String())
	})
}

func TestReportsHandler(t *testing.T) {
	restoreGlobals(t)

	day := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	p1 := "p1"

	t.Run("totals and project breakdown", func(t *testing.T) {
		listTimeEntries = func(ctx context.Context, db database.DB, f store.EntryFilter) ([]model.TimeEntry, error) {
			return []model.TimeEntry{
				{ID: "e1", UserID: "emp-1", ProjectID: &p1, StartTime: day, Duration: 300},
				{ID: "e2", UserID: "emp-1", StartTime: day, Duration: 60},
			}, nil
		}
		listProjects = func(ctx context.Context, db database.DB) ([]model.Project, error) {
			return []model.Project{{ID: "p1", Name: "Alpha"}}, nil
		}
		ctx, rec := newCtx("/reports", employeeClaims)
		require.NoError(t, ReportsHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"total_duration":360`)
		require.Contains(t, rec.Body.String(), `"total_entries":2`)
		require.Contains(t, rec.Body.String(), "Alpha")
	})

	t.Run("unresolved project labelled Unknown", func(t *testing.T) {
		listTimeEntries = func(ctx context.Context, db database.DB, f store.EntryFilter) ([]model.TimeEntry, error) {
			return []model.TimeEntry{
				{ID: "e1", UserID: "emp-1", ProjectID: &p1, StartTime: day, Duration: 120},
			}, nil
		}
		listProjects = func(ctx context.Context, db database.DB) ([]model.Project, error) {
			return nil, nil
		}
		ctx, rec := newCtx("/reports", adminClaims)
		require.NoError(t, ReportsHandler(&database.FakeDB{})(ctx))
		require.Contains(t, rec.Body.String(), "Unknown")
	})

	t.Run("employee is restricted to own entries", func(t *testing.T) {
		var got store.EntryFilter
		listTimeEntries = func(ctx context.Context, db database.DB, f store.EntryFilter) ([]model.TimeEntry, error) {
			got = f
			return nil, nil
		}
		listProjects = func(ctx context.Context, db database.DB) ([]model.Project, error) {
			return nil, nil
		}
		ctx, _ := newCtx("/reports", employeeClaims)
		require.NoError(t, ReportsHandler(&database.FakeDB{})(ctx))
		require.NotNil(t, got.UserID)
		require.Equal(t, "emp-1", *got.UserID)
	})
}
