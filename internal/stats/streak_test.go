package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name      string
		dates     []string
		wantLen   int
		wantStart string
	}{
		{
			name:      "run with a gap",
			dates:     []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"},
			wantLen:   3,
			wantStart: "2024-01-01",
		},
		{
			name:      "single date",
			dates:     []string{"2024-06-15"},
			wantLen:   1,
			wantStart: "2024-06-15",
		},
		{
			name:      "no dates",
			dates:     nil,
			wantLen:   0,
			wantStart: "",
		},
		{
			name:      "tie keeps first run found",
			dates:     []string{"2024-01-01", "2024-01-02", "2024-02-01", "2024-02-02"},
			wantLen:   2,
			wantStart: "2024-01-01",
		},
		{
			name:      "later longer run wins",
			dates:     []string{"2024-01-01", "2024-03-01", "2024-03-02"},
			wantLen:   2,
			wantStart: "2024-03-01",
		},
		{
			name:      "month boundary is consecutive",
			dates:     []string{"2024-01-31", "2024-02-01"},
			wantLen:   2,
			wantStart: "2024-01-31",
		},
		{
			name:      "unparsable date breaks the run",
			dates:     []string{"2024-01-01", "2024-01-02", "garbage", "x"},
			wantLen:   2,
			wantStart: "2024-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length, start := longestStreak(tt.dates)
			assert.Equal(t, tt.wantLen, length)
			assert.Equal(t, tt.wantStart, start)
		})
	}
}
