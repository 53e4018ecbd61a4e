package shiftoverlap

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

var clockLayouts = []string{
	"15:04",
	"3:04PM",
	"3:04 PM",
}

// parseClockMinute converts clock text in 24-hour or 12-hour meridiem form
// into minutes since midnight.
func parseClockMinute(text string) (int64, error) {
	normalized := strings.ToUpper(strings.TrimSpace(text))

	for _, layout := range clockLayouts {
		parsed, errParse := time.Parse(layout, normalized)
		if errParse == nil {
			return int64(parsed.Hour()*MinutesPerHour + parsed.Minute()),
				nil
		}
	}

	return 0,
		fmt.Errorf(
			"%q is not a clock time",
			text,
		)
}

func formatClockMinute(minute int64) string {
	wrapped := minute % MinutesPerDay

	return fmt.Sprintf(
		"%02d:%02d",

		wrapped/MinutesPerHour,
		wrapped%MinutesPerHour,
	)
}

func formatClockMinute12(minute int64) string {
	wrapped := minute % MinutesPerDay
	hour := wrapped / MinutesPerHour

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf(
		"%d:%02d %s",

		hour12,
		wrapped%MinutesPerHour,
		ternary(hour >= 12, "PM", "AM"),
	)
}
