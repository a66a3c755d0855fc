package utils

import (
	"fmt"
	"lavanderia-service/internal/pkg/constvars"
	"regexp"
	"strconv"
	"strings"
)

var reTimeHHMM = regexp.MustCompile(constvars.RegexTimeHHMM)

// ParseClockMinutes converts an "HH:MM" string to minutes since midnight.
func ParseClockMinutes(timeOfDay string) (int, error) {
	if !reTimeHHMM.MatchString(strings.TrimSpace(timeOfDay)) {
		return 0, fmt.Errorf("not a valid HH:MM time: %q", timeOfDay)
	}
	parts := strings.SplitN(strings.TrimSpace(timeOfDay), ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return hour*60 + minute, nil
}

// FormatClockMinutes renders minutes since midnight as "HH:MM", wrapping
// values into a single day.
func FormatClockMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	minutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
