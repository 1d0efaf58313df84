package ranking

import (
	"regexp"
	"strconv"
)

var limitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\btop\s+(\d{1,3})\b`),
	regexp.MustCompile(`(?i)\bbest\s+(\d{1,3})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,3})\s+candidates?\b`),
	regexp.MustCompile(`(?i)\b(\d{1,3})\s+applicants?\b`),
}

// ParseLimit extracts how many results the prompt asks for ("top 5", "best 3",
// "10 candidates"). Returns defaultLimit when the prompt does not say, and
// clamps to maxLimit.
func ParseLimit(prompt string, defaultLimit, maxLimit int) int {
	for _, pattern := range limitPatterns {
		match := pattern.FindStringSubmatch(prompt)
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil || n < 1 {
			continue
		}
		if n > maxLimit {
			return maxLimit
		}
		return n
	}
	return defaultLimit
}
