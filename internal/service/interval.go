// File: internal/service/interval.go
package service

import (
	"errors"
	"time"
)

// ErrInvalidInterval 表示 end_time 不晚於 start_time
var ErrInvalidInterval = errors.New("end time must be after start time")

// IntervalDuration 計算整秒工時；建立與更新走同一條路，
// duration 只能由此推導，不接受外部輸入。
func IntervalDuration(start, end time.Time) (int, error) {
	seconds := int(end.Sub(start) / time.Second)
	if seconds <= 0 {
		return 0, ErrInvalidInterval
	}
	return seconds, nil
}
