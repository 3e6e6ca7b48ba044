package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime12h converts a 24-hour "HH:MM" string to a 12-hour display
// string with AM/PM: hour 0 becomes 12 AM, hour 12 stays 12 PM, and minutes
// pass through unchanged. Unparseable input is returned as-is.
func FormatTime12h(s string) string {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return s
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return s
	}
	minutes := parts[1]

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hour12, minutes, suffix)
}

// FormatTimeRange renders "start – end" with both times in 12-hour form.
func FormatTimeRange(start, end string) string {
	return FormatTime12h(start) + " - " + FormatTime12h(end)
}
