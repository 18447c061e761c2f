package api

import "time"

// TimeEntryRequest 同時用於手動建立與更新；duration 不在欄位內，
// 一律由區間重新推導
// swagger:model api.TimeEntryRequest
type TimeEntryRequest struct {
	ProjectID *string   `json:"project_id" form:"project_id"`
	TaskID    *string   `json:"task_id" form:"task_id"`
	StartTime time.Time `json:"start_time" form:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" form:"end_time" validate:"required"`
	Notes     *string   `json:"notes" form:"notes"`
}
