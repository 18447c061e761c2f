// File: internal/handler/tasks/task.go
package tasks

import (
	"net/http"

	"timeclock/internal/api"
	"timeclock/internal/database"
	"timeclock/internal/model"
	"timeclock/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	listTasks  = store.ListTasks
	createTask = store.CreateTask
	updateTask = store.UpdateTask
	deleteTask = store.DeleteTask
	newID      = uuid.NewString
)

func toResponse(t *model.Task) api.TaskResponse {
	return api.TaskResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		ProjectID:   t.ProjectID,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
}

// @Summary     List tasks
// @Description 回傳 tasks，可用 project_id 過濾
// @Tags        tasks
// @Produce     json
// @Param       project_id query string false "僅列出該 project 的 tasks"
// @Success     200 {array} api.TaskResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tasks [get]
func ListTasksHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var projectID *string
		if v := c.QueryParam("project_id"); v != "" {
			projectID = &v
		}
		tasks, err := listTasks(c.Request().Context(), db, projectID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.TaskResponse, 0, len(tasks))
		for i := range tasks {
			resp = append(resp, toResponse(&tasks[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a task
// @Description 在既有 project 底下建立 task；project 不存在回 404（僅管理員）
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       request body api.TaskRequest true "task 資料"
// @Success     201 {object} api.TaskResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tasks [post]
func CreateTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.TaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Status == "" {
			req.Status = "active"
		}

		// project 存在與否交給外鍵判定，插入即檢查
		task, err := createTask(c.Request().Context(), db, &model.Task{
			ID:          newID(),
			Name:        req.Name,
			Description: req.Description,
			ProjectID:   req.ProjectID,
			Status:      req.Status,
		})
		if store.IsForeignKeyViolation(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "project not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, toResponse(task))
	}
}

// @Summary     Update a task
// @Description 依 ID 整體覆寫 task；對應 project 不存在回 404（僅管理員）
// @Tags        tasks
// @Accept      json
// @Param       task_id path string true "task ID"
// @Param       request body api.TaskRequest true "task 資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tasks/{task_id} [put]
func UpdateTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.TaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Status == "" {
			req.Status = "active"
		}

		err := updateTask(c.Request().Context(), db, &model.Task{
			ID:          c.Param("task_id"),
			Name:        req.Name,
			Description: req.Description,
			ProjectID:   req.ProjectID,
			Status:      req.Status,
		})
		if store.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "task not found"})
		}
		if store.IsForeignKeyViolation(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "project not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete a task
// @Description 依 ID 刪除 task；引用它的工時紀錄改為未掛 task（僅管理員）
// @Tags        tasks
// @Param       task_id path string true "task ID"
// @Success     204 "No Content"
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tasks/{task_id} [delete]
func DeleteTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := deleteTask(c.Request().Context(), db, c.Param("task_id"))
		if store.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "task not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
