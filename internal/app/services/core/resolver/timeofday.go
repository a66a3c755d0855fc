package resolver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	regexHorasShorthand = regexp.MustCompile(`(?i)^(\d{1,2})\s+horas?$`)
	regexTimeFiller     = regexp.MustCompile(`(?i)^a\s+las?\s+`)
	regexTimePhrase     = regexp.MustCompile(`(?i)^(\d{1,2})(?:[:.](\d{2}))?\s*(?:([ap])\.?\s*m\.?)?$`)
)

// normalizeHourShorthand rewrites the "N horas" shorthand into "HH:00",
// e.g. "22 horas" becomes "22:00" and "3 horas" becomes "03:00".
func normalizeHourShorthand(fragment string) string {
	match := regexHorasShorthand.FindStringSubmatch(fragment)
	if match == nil {
		return fragment
	}
	hour, _ := strconv.Atoi(match[1])
	return fmt.Sprintf("%02d:00", hour)
}

// stripTimeFiller removes a leading "a la"/"a las" before the time phrase.
func stripTimeFiller(fragment string) string {
	return strings.TrimSpace(regexTimeFiller.ReplaceAllString(fragment, ""))
}

// parseTimeFragment resolves a Spanish free-text time phrase into minutes
// since midnight. It accepts "3pm", "15:00", "10:30", "10.30pm" and, after
// shorthand normalization, "22 horas". A bare hour without minutes or an
// am/pm marker is rejected rather than guessed.
func parseTimeFragment(fragment string) (int, bool) {
	fragment = stripTimeFiller(fragment)
	fragment = normalizeHourShorthand(fragment)

	match := regexTimePhrase.FindStringSubmatch(fragment)
	if match == nil {
		return 0, false
	}

	hour, _ := strconv.Atoi(match[1])
	meridiem := strings.ToLower(match[3])

	minute := 0
	if match[2] != "" {
		minute, _ = strconv.Atoi(match[2])
	} else if meridiem == "" {
		return 0, false
	}
	if minute > 59 {
		return 0, false
	}

	switch meridiem {
	case "a":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "p":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return 0, false
		}
	}

	return hour*60 + minute, true
}
