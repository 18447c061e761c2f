// File: internal/handler/projects/project.go
package projects

import (
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
	listProjects  = store.ListProjects
	createProject = store.CreateProject
	updateProject = store.UpdateProject
	deleteProject = store.DeleteProject
	newID         = uuid.NewString
)

func toResponse(p *model.Project) api.ProjectResponse {
	return api.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}

// @Summary     List projects
// @Description 回傳所有 projects（任何已登入使用者皆可讀取目錄）
// @Tags        projects
// @Produce     json
// @Success     200 {array} api.ProjectResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects [get]
func ListProjectsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		projects, err := listProjects(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.ProjectResponse, 0, len(projects))
		for i := range projects {
			resp = append(resp, toResponse(&projects[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a project
// @Description 建立新 project（僅管理員）
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       request body api.ProjectRequest true "project 資料"
// @Success     201 {object} api.ProjectResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects [post]
func CreateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ProjectRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Status == "" {
			req.Status = "active"
		}

		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		createdBy := claims.UserID
		project, err := createProject(c.Request().Context(), db, &model.Project{
			ID:          newID(),
			Name:        req.Name,
			Description: req.Description,
			Status:      req.Status,
			CreatedBy:   &createdBy,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, toResponse(project))
	}
}

// @Summary     Update a project
// @Description 依 ID 整體覆寫 project 名稱、描述與狀態（僅管理員）
// @Tags        projects
// @Accept      json
// @Param       project_id path string true "project ID"
// @Param       request body api.ProjectRequest true "project 資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{project_id} [put]
func UpdateProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ProjectRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Status == "" {
			req.Status = "active"
		}

		err := updateProject(c.Request().Context(), db, &model.Project{
			ID:          c.Param("project_id"),
			Name:        req.Name,
			Description: req.Description,
			Status:      req.Status,
		})
		if store.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "project not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete a project
// @Description 刪除 project；其 tasks 一併刪除，引用它的工時紀錄改為未掛 project（僅管理員）
// @Tags        projects
// @Param       project_id path string true "project ID"
// @Success     204 "No Content"
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /projects/{project_id} [delete]
func DeleteProjectHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := deleteProject(c.Request().Context(), db, c.Param("project_id"))
		if store.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "project not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
