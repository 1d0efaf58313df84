package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   int
	}{
		{"top phrasing", "give me the top 5 for this role", 5},
		{"best phrasing", "who are the best 3 here?", 3},
		{"count before candidates", "shortlist 10 candidates please", 10},
		{"count before applicants", "I need 7 applicants to interview", 7},
		{"case insensitive", "TOP 4 please", 4},
		{"no count mentioned", "rank everyone by fit", 12},
		{"zero is ignored", "top 0 candidates", 12},
		{"clamped to max", "top 500 candidates", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLimit(tt.prompt, 12, 100))
		})
	}
}
