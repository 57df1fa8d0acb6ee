package flights

import (
	"fmt"
	"strconv"
	"strings"
)

// formatDuration renders a journey duration the supplier gives in minutes
// as "2h 30m". Anything non-numeric comes back as "N/A".
func formatDuration(value interface{}) string {
	minutes, ok := toMinutes(value)
	if !ok {
		return "N/A"
	}

	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func toMinutes(value interface{}) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}

		return parsed, true
	default:
		return 0, false
	}
}
