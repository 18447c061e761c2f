package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
	Name     string `json:"name" form:"name" validate:"required" example:"Alice"`
	Role     string `json:"role" form:"role" validate:"omitempty,oneof=admin employee" example:"employee"`
}
