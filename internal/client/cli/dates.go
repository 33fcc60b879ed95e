package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/common"
)

// resolveDate expands "today", "tomorrow" and "+Nd" relative to today.
// Anything else is passed through for the server to validate.
func resolveDate(s string, today time.Time) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "today":
		return today.Format(common.DateLayout)
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format(common.DateLayout)
	}
	if strings.HasPrefix(s, "+") && strings.HasSuffix(s, "d") {
		if n, err := strconv.Atoi(s[1 : len(s)-1]); err == nil && n >= 0 {
			return today.AddDate(0, 0, n).Format(common.DateLayout)
		}
	}
	return s
}
