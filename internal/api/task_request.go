package api

// TaskRequest 同時用於建立與更新（更新為整體覆寫）
// swagger:model api.TaskRequest
type TaskRequest struct {
	Name        string  `json:"name" form:"name" validate:"required" example:"Code review"`
	Description *string `json:"description" form:"description"`
	ProjectID   string  `json:"project_id" form:"project_id" validate:"required"`
	Status      string  `json:"status" form:"status" validate:"omitempty" example:"active"`
}
