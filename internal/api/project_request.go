package api

// ProjectRequest 同時用於建立與更新（更新為整體覆寫）
// swagger:model api.ProjectRequest
type ProjectRequest struct {
	Name        string  `json:"name" form:"name" validate:"required" example:"Internal Tools"`
	Description *string `json:"description" form:"description"`
	Status      string  `json:"status" form:"status" validate:"omitempty" example:"active"`
}
