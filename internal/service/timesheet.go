// File: internal/service/timesheet.go
package service

import (
	"sort"
	"time"

	"timeclock/internal/model"
)

// TimesheetEntry 為日結表內單筆紀錄的摘要
type TimesheetEntry struct {
	ID        string    `json:"id"`
	ProjectID *string   `json:"project_id,omitempty"`
	TaskID    *string   `json:"task_id,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Duration  int       `json:"duration"`
	Notes     *string   `json:"notes,omitempty"`
}

// Timesheet 為單一日期的彙總：當日總秒數與依時間排序的紀錄清單
type Timesheet struct {
	Date          string           `json:"date"`
	TotalDuration int              `json:"total_duration"`
	Entries       []TimesheetEntry `json:"entries"`
}

// BuildTimesheets 將已過濾、已授權的紀錄依 start_time 的日曆日期分組。
// 先依 start_time 升冪排序，因此桶內清單按時間排列、桶序為日期順序；
// 沒有紀錄的日期不會產生空桶。
func BuildTimesheets(entries []model.TimeEntry) []Timesheet {
	sorted := make([]model.TimeEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	sheets := []Timesheet{}
	index := map[string]int{}
	for _, e := range sorted {
		key := e.StartTime.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(sheets)
			index[key] = i
			sheets = append(sheets, Timesheet{Date: key})
		}
		sheets[i].TotalDuration += e.Duration
		sheets[i].Entries = append(sheets[i].Entries, TimesheetEntry{
			ID:        e.ID,
			ProjectID: e.ProjectID,
			TaskID:    e.TaskID,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Duration:  e.Duration,
			Notes:     e.Notes,
		})
	}
	return sheets
}
