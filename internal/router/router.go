// File: internal/router/router.go
package router

import (
	"timeclock/internal/cache"
	"timeclock/internal/database"
	"timeclock/internal/handler"
	"timeclock/internal/handler/auth"
	"timeclock/internal/handler/entries"
	"timeclock/internal/handler/projects"
	"timeclock/internal/handler/reports"
	"timeclock/internal/handler/tasks"
	"timeclock/internal/handler/users"
	"timeclock/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache) {
	api := e.Group("/api")

	requireAuth := middleware.RequireAuth(db)
	requireAdmin := middleware.RequireAdmin(db)

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	// 認證
	api.POST("/auth/login", auth.LoginHandler(db, rdb))
	api.POST("/auth/refresh", auth.RefreshHandler(db, rdb))
	api.GET("/auth/me", auth.MeHandler(db), requireAuth)

	// Projects：讀取開放給所有登入者，異動僅限管理員
	api.GET("/projects", projects.ListProjectsHandler(db), requireAuth)
	api.POST("/projects", projects.CreateProjectHandler(db), requireAdmin)
	api.PUT("/projects/:project_id", projects.UpdateProjectHandler(db), requireAdmin)
	api.DELETE("/projects/:project_id", projects.DeleteProjectHandler(db), requireAdmin)

	// Tasks：同 projects
	api.GET("/tasks", tasks.ListTasksHandler(db), requireAuth)
	api.POST("/tasks", tasks.CreateTaskHandler(db), requireAdmin)
	api.PUT("/tasks/:task_id", tasks.UpdateTaskHandler(db), requireAdmin)
	api.DELETE("/tasks/:task_id", tasks.DeleteTaskHandler(db), requireAdmin)

	// 工時紀錄：單筆授權在 handler 內判斷（本人或管理員）
	apiEntries := api.Group("/time-entries", requireAuth)
	apiEntries.GET("", entries.ListTimeEntriesHandler(db))
	apiEntries.POST("/manual", entries.CreateManualEntryHandler(db))
	apiEntries.PUT("/:entry_id", entries.UpdateTimeEntryHandler(db))
	apiEntries.DELETE("/:entry_id", entries.DeleteTimeEntryHandler(db))

	// 管理員專屬 Users
	apiUsers := api.Group("/users", requireAdmin)
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.DELETE("/:user_id", users.DeleteUserHandler(db))

	// 彙總檢視
	api.GET("/timesheets", reports.TimesheetsHandler(db), requireAuth)
	api.GET("/reports", reports.ReportsHandler(db), requireAuth)
}
