package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
)

func TestTimeframe_Contains(t *testing.T) {
	// Wednesday.
	now := time.Date(2024, 5, 15, 14, 0, 0, 0, time.UTC)

	type testCase struct {
		name  string
		tf    Timeframe
		at    time.Time
		valid bool
		want  bool
	}

	tests := []testCase{
		{name: "AllTimeKeepsUndated", tf: TimeframeAll, valid: false, want: true},
		{name: "TodayMorning", tf: TimeframeToday, at: now.Add(-10 * time.Hour), valid: true, want: true},
		{name: "Yesterday", tf: TimeframeToday, at: now.AddDate(0, 0, -1), valid: true, want: false},
		{name: "MondayInWeek", tf: TimeframeThisWeek, at: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), valid: true, want: true},
		{name: "SundayBefore", tf: TimeframeThisWeek, at: time.Date(2024, 5, 12, 23, 0, 0, 0, time.UTC), valid: true, want: false},
		{name: "MonthStart", tf: TimeframeThisMonth, at: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), valid: true, want: true},
		{name: "UndatedFiltered", tf: TimeframeThisMonth, valid: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tf.Contains(tt.at, tt.valid, now))
		})
	}
}

func TestTimeframe_NextCycles(t *testing.T) {
	tf := TimeframeAll
	for range len(timeframes) {
		tf = tf.Next()
	}

	assert.Equal(t, TimeframeAll, tf)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a b", truncate("a\n  b", 10))
	assert.Equal(t, "Cafe…", truncate("Cafeteria", 5))
}

func TestFormatTimestamp_Missing(t *testing.T) {
	assert.Equal(t, "-", FormatTimestamp(backoffice.Timestamp{}))
}

func TestBroadcast(t *testing.T) {
	assert.True(t, Broadcast(DashboardMsg{}))
	assert.True(t, Broadcast(actionDoneMsg{}))
	assert.False(t, Broadcast(BackMsg{}))
}
