package api

// swagger:model api.UserResponse
type UserResponse struct {
	ID    string `json:"id" example:"3f1e8a52-6d5b-4c1e-9f7a-2b8c4d0e6f11"`
	Email string `json:"email" example:"alice@example.com"`
	Name  string `json:"name" example:"Alice"`
	Role  string `json:"role" example:"employee"`
}
