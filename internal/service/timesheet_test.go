package service

import (
	"testing"
	"time"

	"timeclock/internal/model"

	"github.com/stretchr/testify/require"
)

func entry(id string, start, end time.Time) model.TimeEntry {
	return model.TimeEntry{
		ID:        id,
		UserID:    "u1",
		StartTime: start,
		EndTime:   end,
		Duration:  int(end.Sub(start) / time.Second),
	}
}

func TestBuildTimesheets(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("single day bucket", func(t *testing.T) {
		entries := []model.TimeEntry{
			entry("e2", day.Add(14*time.Hour), day.Add(15*time.Hour+30*time.Minute)),
			entry("e1", day.Add(9*time.Hour), day.Add(10*time.Hour)),
		}
		sheets := BuildTimesheets(entries)
		require.Len(t, sheets, 1)
		require.Equal(t, "2024-01-01", sheets[0].Date)
		require.Equal(t, 9000, sheets[0].TotalDuration)
		require.Len(t, sheets[0].Entries, 2)
		// 桶內依 start_time 升冪
		require.Equal(t, "e1", sheets[0].Entries[0].ID)
		require.Equal(t, "e2", sheets[0].Entries[1].ID)
	})

	t.Run("multiple days in date order", func(t *testing.T) {
		entries := []model.TimeEntry{
			entry("late", day.AddDate(0, 0, 2).Add(9*time.Hour), day.AddDate(0, 0, 2).Add(10*time.Hour)),
			entry("early", day.Add(9*time.Hour), day.Add(10*time.Hour)),
		}
		sheets := BuildTimesheets(entries)
		require.Len(t, sheets, 2)
		require.Equal(t, "2024-01-01", sheets[0].Date)
		require.Equal(t, "2024-01-03", sheets[1].Date)
	})

	t.Run("no bucket for empty input", func(t *testing.T) {
		sheets := BuildTimesheets(nil)
		require.Empty(t, sheets)
		require.NotNil(t, sheets)
	})

	t.Run("input slice not reordered", func(t *testing.T) {
		entries := []model.TimeEntry{
			entry("b", day.Add(14*time.Hour), day.Add(15*time.Hour)),
			entry("a", day.Add(9*time.Hour), day.Add(10*time.Hour)),
		}
		BuildTimesheets(entries)
		require.Equal(t, "b", entries[0].ID)
	})
}
