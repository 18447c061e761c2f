// File: internal/service/daterange.go
package service

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// parseDateParam 接受 RFC3339 或純日期字串
func parseDateParam(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// ParseDateRange 將 start_date / end_date 查詢參數轉成 start_time 的過濾界線。
// 回傳的上界為 end_date + 1 天（開區間），因此 end_date 當天整日都算在範圍內。
// 空字串表示該端不設限，回傳 nil。
func ParseDateRange(startDate, endDate string) (from, until *time.Time, err error) {
	if startDate != "" {
		t, err := parseDateParam(startDate)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if endDate != "" {
		t, err := parseDateParam(endDate)
		if err != nil {
			return nil, nil, err
		}
		u := t.AddDate(0, 0, 1)
		until = &u
	}
	return from, until, nil
}
