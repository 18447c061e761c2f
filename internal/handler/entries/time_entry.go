// File: internal/handler/entries/time_entry.go
package entries

import (
	"context"
	"net/http"

	"timeclock/internal/api"
	"timeclock/internal/database"
	"timeclock/internal/middleware"
	"timeclock/internal/model"
	"timeclock/internal/service"
	"timeclock/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	listTimeEntries  = store.ListTimeEntries
	getTimeEntryByID = store.GetTimeEntryByID
	createTimeEntry  = store.CreateTimeEntry
	updateTimeEntry  = store.UpdateTimeEntry
	deleteTimeEntry  = store.DeleteTimeEntry
	getTaskByID      = store.GetTaskByID
	newID            = uuid.NewString
)

func toResponse(e *model.TimeEntry) api.TimeEntryResponse {
	return api.TimeEntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		ProjectID: e.ProjectID,
		TaskID:    e.TaskID,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Duration:  e.Duration,
		EntryType: string(e.EntryType),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}

// fkReferent 依違反的外鍵約束指出缺席的參照對象；
// 約束名稱來自 schema 的預設命名 (<table>_<column>_fkey)
func fkReferent(err error) string {
	switch store.ViolatedConstraint(err) {
	case "time_entries_task_id_fkey":
		return "task not found"
	case "time_entries_user_id_fkey":
		return "user not found"
	default:
		return "project not found"
	}
}

// checkTaskProject 驗證 task 存在且隸屬指定 project。
// 回傳 status 0 表示通過。
func checkTaskProject(ctx context.Context, db database.DB, projectID, taskID *string) (int, string) {
	if taskID == nil {
		return 0, ""
	}
	task, err := getTaskByID(ctx, db, *taskID)
	if store.IsNotFound(err) {
		return http.StatusNotFound, "task not found"
	}
	if err != nil {
		return http.StatusInternalServerError, err.Error()
	}
	if projectID == nil || *projectID != task.ProjectID {
		return http.StatusBadRequest, "task does not belong to the given project"
	}
	return 0, ""
}

// @Summary     List time entries
// @Description 依 start_time 降冪回傳工時紀錄；非管理員只會看到自己的紀錄
// @Tags        time-entries
// @Produce     json
// @Param       start_date query string false "起始日期 (YYYY-MM-DD 或 RFC3339)"
// @Param       end_date   query string false "結束日期，當日整天皆含在內"
// @Success     200 {array} api.TimeEntryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /time-entries [get]
func ListTimeEntriesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		from, until, err := service.ParseDateRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		filter := store.EntryFilter{From: from, Until: until}
		if !claims.IsAdmin() {
			filter.UserID = &claims.UserID
		}

		entries, err := listTimeEntries(c.Request().Context(), db, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.TimeEntryResponse, 0, len(entries))
		for i := range entries {
			resp = append(resp, toResponse(&entries[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a manual time entry
// @Description 以明確起訖時間建立工時紀錄；duration 由區間推導，end 不晚於 start 回 400
// @Tags        time-entries
// @Accept      json
// @Produce     json
// @Param       request body api.TimeEntryRequest true "工時紀錄"
// @Success     201 {object} api.TimeEntryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /time-entries/manual [post]
func CreateManualEntryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		var req api.TimeEntryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		duration, err := service.IntervalDuration(req.StartTime, req.EndTime)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if status, msg := checkTaskProject(c.Request().Context(), db, req.ProjectID, req.TaskID); status != 0 {
			return c.JSON(status, api.ErrorResponse{Message: msg})
		}

		entry, err := createTimeEntry(c.Request().Context(), db, &model.TimeEntry{
			ID:        newID(),
			UserID:    claims.UserID,
			ProjectID: req.ProjectID,
			TaskID:    req.TaskID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Duration:  duration,
			EntryType: model.EntryManual,
			Notes:     req.Notes,
		})
		if store.IsForeignKeyViolation(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: fkReferent(err)})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, toResponse(entry))
	}
}

// @Summary     Update a time entry
// @Description 整段區間覆寫並重算 duration；僅本人或管理員可操作
// @Tags        time-entries
// @Accept      json
// @Produce     json
// @Param       entry_id path string true "紀錄 ID"
// @Param       request body api.TimeEntryRequest true "工時紀錄"
// @Success     200 {object} api.TimeEntryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /time-entries/{entry_id} [put]
func UpdateTimeEntryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		entry, err := getTimeEntryByID(c.Request().Context(), db, c.Param("entry_id"))
		if store.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "time entry not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if !service.CanWriteEntry(claims, entry) {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "not authorized to update this entry"})
		}

		var req api.TimeEntryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		duration, err := service.IntervalDuration(req.StartTime, req.EndTime)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if status, msg := checkTaskProject(c.Request().Context(), db, req.ProjectID, req.TaskID); status != 0 {
			return c.JSON(status, api.ErrorResponse{Message: msg})
		}

		entry.ProjectID = req.ProjectID
		entry.TaskID = req.TaskID
		entry.StartTime = req.StartTime
		entry.EndTime = req.EndTime
		entry.Duration = duration
		entry.Notes = req.Notes

		err = updateTimeEntry(c.Request().Context(), db, entry)
		if store.IsForeignKeyViolation(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: fkReferent(err)})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponse(entry))
	}
}

// @Summary     Delete a time entry
// @Description 刪除工時紀錄；僅本人或管理員可操作
// @Tags        time-entries
// @Param       entry_id path string true "紀錄 ID"
// @Success     204 "No Content"
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /time-entries/{entry_id} [delete]
func DeleteTimeEntryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		entry, err := getTimeEntryByID(c.Request().Context(), db, c.Param("entry_id"))
		if store.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "time entry not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if !service.CanWriteEntry(claims, entry) {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "not authorized to delete this entry"})
		}

		if err := deleteTimeEntry(c.Request().Context(), db, entry.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
