package cmd

import (
	"fmt"
	"strings"
	"time"
)

// parseWeekdays parses a comma-separated list of day names such as
// "mon,Tuesday,sun". An empty string selects no filter.
func parseWeekdays(s string) (days []time.Weekday, err error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if len(name) < 3 {
			return nil, fmt.Errorf("Invalid day: %q", part)
		}
		found := false
		for d := time.Sunday; d <= time.Saturday; d++ {
			full := strings.ToLower(d.String())
			if strings.HasPrefix(full, name) {
				days = append(days, d)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("Invalid day: %q", part)
		}
	}
	return days, nil
}
