// File: internal/model/time_entry.go
package model

import "time"

// EntryType 紀錄來源，timer 為計時器產生、manual 為手動輸入
type EntryType string

const (
	EntryTimer  EntryType = "timer"
	EntryManual EntryType = "manual"
)

// TimeEntry 的 Duration 一律由 start/end 推導（見 service.IntervalDuration），
// 不接受外部輸入。
type TimeEntry struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	ProjectID *string   `db:"project_id" json:"project_id,omitempty"`
	TaskID    *string   `db:"task_id" json:"task_id,omitempty"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`
	Duration  int       `db:"duration" json:"duration"`
	EntryType EntryType `db:"entry_type" json:"entry_type"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
