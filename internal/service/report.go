// File: internal/service/report.go
package service

import "timeclock/internal/model"

// UnknownProjectName 為無法解析的 project 顯示名稱
const UnknownProjectName = "Unknown"

// ProjectReport 為單一 project 的工時小計
type ProjectReport struct {
	ProjectID    string `json:"project_id"`
	ProjectName  string `json:"project_name"`
	Duration     int    `json:"duration"`
	EntriesCount int    `json:"entries_count"`
}

// Report 為整體報表：總秒數、總筆數與各 project 小計
type Report struct {
	TotalDuration int             `json:"total_duration"`
	TotalEntries  int             `json:"total_entries"`
	Projects      []ProjectReport `json:"projects"`
}

// BuildReport 彙總已過濾、已授權的紀錄。
// 未掛 project 的紀錄計入總計但不進小計；
// projectNames 查不到的 project 以 UnknownProjectName 顯示而非失敗。
// 小計順序為 project 首次出現的順序。
func BuildReport(entries []model.TimeEntry, projectNames map[string]string) Report {
	report := Report{
		TotalEntries: len(entries),
		Projects:     []ProjectReport{},
	}
	index := map[string]int{}
	for _, e := range entries {
		report.TotalDuration += e.Duration
		if e.ProjectID == nil {
			continue
		}
		pid := *e.ProjectID
		i, ok := index[pid]
		if !ok {
			name, ok := projectNames[pid]
			if !ok {
				name = UnknownProjectName
			}
			i = len(report.Projects)
			index[pid] = i
			report.Projects = append(report.Projects, ProjectReport{
				ProjectID:   pid,
				ProjectName: name,
			})
		}
		report.Projects[i].Duration += e.Duration
		report.Projects[i].EntriesCount++
	}
	return report
}
