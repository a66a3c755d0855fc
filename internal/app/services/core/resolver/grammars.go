package resolver

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type grammar struct {
	name     SourceFormat
	tryParse func(text string, now time.Time) (time.Time, bool)
}

// grammars are tried in priority order; the first match wins.
var grammars = []grammar{
	{name: SourceWeekday, tryParse: parseWeekday},
	{name: SourceMonthDay, tryParse: parseMonthDay},
	{name: SourceRelativeDay, tryParse: parseRelativeDay},
	{name: SourceIsoExact, tryParse: parseIsoExact},
	{name: SourceDayOfMonth, tryParse: parseDayOfMonth},
}

var (
	regexWeekday     = regexp.MustCompile(`(?i)^(?:pr[óo]xim[ao]\s+)?(lunes|martes|mi[eé]rcoles|jueves|viernes|s[áa]bado|domingo)\s+(.+)$`)
	regexMonthDay    = regexp.MustCompile(`(?i)^(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre|ene|feb|mar|abr|may|jun|jul|ago|sep|oct|nov|dic)\s+(\d{1,2})\s+(.+)$`)
	regexRelativeDay = regexp.MustCompile(`(?i)^(hoy|mañana|manana|pasado\s+mañana|pasado\s+manana|pasadomañana|pasadomanana)\s+(.+)$`)
	regexIsoExact    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})\s+(\d{1,2}):(\d{2})$`)
	regexDayOfMonth  = regexp.MustCompile(`^(\d{1,2})\s+(.+)$`)
)

var weekdayByName = map[string]time.Weekday{
	"domingo":   time.Sunday,
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
}

var monthByName = map[string]time.Month{
	"enero": time.January, "ene": time.January,
	"febrero": time.February, "feb": time.February,
	"marzo": time.March, "mar": time.March,
	"abril": time.April, "abr": time.April,
	"mayo": time.May, "may": time.May,
	"junio": time.June, "jun": time.June,
	"julio": time.July, "jul": time.July,
	"agosto": time.August, "ago": time.August,
	"septiembre": time.September, "sep": time.September,
	"octubre": time.October, "oct": time.October,
	"noviembre": time.November, "nov": time.November,
	"diciembre": time.December, "dic": time.December,
}

var accentFolder = map[rune]rune{'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u'}

func foldAccents(s string) string {
	return strings.Map(func(r rune) rune {
		if folded, ok := accentFolder[r]; ok {
			return folded
		}
		return r
	}, s)
}

func applyTime(day time.Time, minutesOfDay int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutesOfDay/60, minutesOfDay%60, 0, 0, day.Location())
}

// parseWeekday handles "lunes 3pm" and "próximo lunes 3pm". Starting from
// today at midnight, it steps forward one day at a time until the weekday
// matches and the candidate midnight is strictly after now, so a weekday
// name always lands on a future date and never on today.
func parseWeekday(text string, now time.Time) (time.Time, bool) {
	match := regexWeekday.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}

	target, ok := weekdayByName[foldAccents(strings.ToLower(match[1]))]
	if !ok {
		return time.Time{}, false
	}
	minutes, ok := parseTimeFragment(match[2])
	if !ok {
		return time.Time{}, false
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for day.Weekday() != target || !day.After(now) {
		day = day.AddDate(0, 0, 1)
	}
	return applyTime(day, minutes), true
}

// parseMonthDay handles "nov 22 3pm". The date is built in the current year;
// if that calendar day has already started relative to now, it rolls over to
// the same month and day next year.
func parseMonthDay(text string, now time.Time) (time.Time, bool) {
	match := regexMonthDay.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}

	month, ok := monthByName[strings.ToLower(match[1])]
	if !ok {
		return time.Time{}, false
	}
	dayOfMonth, _ := strconv.Atoi(match[2])
	minutes, ok := parseTimeFragment(match[3])
	if !ok {
		return time.Time{}, false
	}

	day := time.Date(now.Year(), month, dayOfMonth, 0, 0, 0, 0, now.Location())
	if day.Before(now) {
		day = time.Date(now.Year()+1, month, dayOfMonth, 0, 0, 0, 0, now.Location())
	}
	return applyTime(day, minutes), true
}

// parseRelativeDay handles "hoy 3pm", "mañana 15:00" and "pasado mañana
// 10:30". The requested time is applied literally, so "hoy" with an hour
// already gone still resolves to today.
func parseRelativeDay(text string, now time.Time) (time.Time, bool) {
	match := regexRelativeDay.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}

	keyword := foldAccents(strings.ToLower(match[1]))
	minutes, ok := parseTimeFragment(match[2])
	if !ok {
		return time.Time{}, false
	}

	var offset int
	switch {
	case keyword == "hoy":
		offset = 0
	case keyword == "mañana" || keyword == "manana":
		offset = 1
	default:
		offset = 2
	}

	day := time.Date(now.Year(), now.Month(), now.Day()+offset, 0, 0, 0, 0, now.Location())
	return applyTime(day, minutes), true
}

// parseIsoExact handles the literal "2025-11-22 15:00" form. No relative
// reasoning is applied and no future-only guarantee holds; out-of-range
// components normalize the way time.Date does.
func parseIsoExact(text string, now time.Time) (time.Time, bool) {
	match := regexIsoExact.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}

	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	dayOfMonth, _ := strconv.Atoi(match[3])
	hour, _ := strconv.Atoi(match[4])
	minute, _ := strconv.Atoi(match[5])

	return time.Date(year, time.Month(month), dayOfMonth, hour, minute, 0, 0, now.Location()), true
}

// parseDayOfMonth handles "22 3pm", a bare day in the current month. If the
// resulting date and time are already past, it advances to the same day next
// month, wrapping December into January of the following year.
func parseDayOfMonth(text string, now time.Time) (time.Time, bool) {
	match := regexDayOfMonth.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}

	dayOfMonth, _ := strconv.Atoi(match[1])
	if dayOfMonth < 1 || dayOfMonth > 31 {
		return time.Time{}, false
	}
	minutes, ok := parseTimeFragment(match[2])
	if !ok {
		return time.Time{}, false
	}

	candidate := applyTime(time.Date(now.Year(), now.Month(), dayOfMonth, 0, 0, 0, 0, now.Location()), minutes)
	if candidate.Before(now) {
		candidate = applyTime(time.Date(now.Year(), now.Month()+1, dayOfMonth, 0, 0, 0, 0, now.Location()), minutes)
	}
	return candidate, true
}
