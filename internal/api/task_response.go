package api

import "time"

// swagger:model api.TaskResponse
type TaskResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	ProjectID   string    `json:"project_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
