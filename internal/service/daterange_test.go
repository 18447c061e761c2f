package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	t.Run("empty params mean no bounds", func(t *testing.T) {
		from, until, err := ParseDateRange("", "")
		require.NoError(t, err)
		require.Nil(t, from)
		require.Nil(t, until)
	})

	t.Run("plain dates", func(t *testing.T) {
		from, until, err := ParseDateRange("2024-01-01", "2024-01-31")
		require.NoError(t, err)
		require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *from)
		// 上界為 end_date 的隔日零點（開區間）
		require.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *until)
	})

	t.Run("end date covers its whole day", func(t *testing.T) {
		_, until, err := ParseDateRange("", "2024-01-31")
		require.NoError(t, err)

		lastSecond := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
		nextMidnight := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		require.True(t, lastSecond.Before(*until))
		require.False(t, nextMidnight.Before(*until))
	})

	t.Run("rfc3339 accepted", func(t *testing.T) {
		from, _, err := ParseDateRange("2024-01-01T08:30:00Z", "")
		require.NoError(t, err)
		require.Equal(t, time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC), *from)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, _, err := ParseDateRange("yesterday", "")
		require.Error(t, err)
		_, _, err = ParseDateRange("", "01/31/2024")
		require.Error(t, err)
	})
}
