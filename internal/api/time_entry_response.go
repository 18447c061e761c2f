package api

import "time"

// swagger:model api.TimeEntryResponse
type TimeEntryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProjectID *string   `json:"project_id"`
	TaskID    *string   `json:"task_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Duration  int       `json:"duration"`
	EntryType string    `json:"entry_type"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
