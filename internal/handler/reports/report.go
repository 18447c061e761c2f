// File: internal/handler/reports/report.go
package reports

import (
	"net/http"

	"timeclock/internal/api"
	"timeclock/internal/database"
	"timeclock/internal/middleware"
	"timeclock/internal/service"
	"timeclock/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listTimeEntries = store.ListTimeEntries
	listProjects    = store.ListProjects
)

// @Summary     Get timesheets
// @Description 依 start_time 的日曆日期分組回傳日結表；非管理員僅能查自己，管理員可用 user_id 過濾
// @Tags        reports
// @Produce     json
// @Param       start_date query string false "起始日期 (YYYY-MM-DD 或 RFC3339)"
// @Param       end_date   query string false "結束日期，當日整天皆含在內"
// @Param       user_id    query string false "指定使用者（僅管理員）"
// @Success     200 {array} service.Timesheet
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /timesheets [get]
func TimesheetsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		from, until, err := service.ParseDateRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		filter := store.EntryFilter{From: from, Until: until, Ascending: true}
		if !claims.IsAdmin() {
			filter.UserID = &claims.UserID
		} else if v := c.QueryParam("user_id"); v != "" {
			filter.UserID = &v
		}

		entries, err := listTimeEntries(c.Request().Context(), db, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, service.BuildTimesheets(entries))
	}
}

// @Summary     Get reports
// @Description 回傳總工時、總筆數與各 project 小計；非管理員僅統計自己的紀錄
// @Tags        reports
// @Produce     json
// @Param       start_date query string false "起始日期 (YYYY-MM-DD 或 RFC3339)"
// @Param       end_date   query string false "結束日期，當日整天皆含在內"
// @Success     200 {object} service.Report
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reports [get]
func ReportsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		from, until, err := service.ParseDateRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		filter := store.EntryFilter{From: from, Until: until, Ascending: true}
		if !claims.IsAdmin() {
			filter.UserID = &claims.UserID
		}

		entries, err := listTimeEntries(c.Request().Context(), db, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		projects, err := listProjects(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		names := make(map[string]string, len(projects))
		for _, p := range projects {
			names[p.ID] = p.Name
		}

		return c.JSON(http.StatusOK, service.BuildReport(entries, names))
	}
}
