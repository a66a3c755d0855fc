// Package resolver turns free-form Spanish date/time phrases into concrete
// calendar instants. Five fixed grammars are recognized, tried in priority
// order: weekday ("lunes 3pm"), month plus day ("nov 22 3pm"), relative day
// ("mañana 15:00"), exact ISO ("2025-11-22 15:00") and bare day of month
// ("22 3pm"). Anything else is not recognized.
package resolver

import (
	"regexp"
	"strings"
	"time"
)

type SourceFormat string

const (
	SourceWeekday     SourceFormat = "weekday"
	SourceMonthDay    SourceFormat = "month_day"
	SourceRelativeDay SourceFormat = "relative_day"
	SourceIsoExact    SourceFormat = "iso_exact"
	SourceDayOfMonth  SourceFormat = "day_of_month"
)

type ParsedDateTime struct {
	Instant      time.Time
	SourceFormat SourceFormat
}

// DateKey returns the ISO date-only form (YYYY-MM-DD) used to group
// reservations by calendar day.
func (p *ParsedDateTime) DateKey() string {
	return p.Instant.Format("2006-01-02")
}

// TimeOfDay returns the 24-hour HH:MM form.
func (p *ParsedDateTime) TimeOfDay() string {
	return p.Instant.Format("15:04")
}

// SpanishDateTime returns the localized rendering shown to users,
// e.g. "22 de noviembre de 2025, 15:00".
func (p *ParsedDateTime) SpanishDateTime() string {
	return FormatSpanishDateTime(p.Instant)
}

// SpanishDate returns the locale date-only form (DD/MM/YYYY).
func (p *ParsedDateTime) SpanishDate() string {
	return FormatSpanishDate(p.Instant)
}

// StripMention removes every occurrence of the bot mention token,
// case-insensitively, and trims the remainder.
func StripMention(text, mentionToken string) string {
	if mentionToken == "" {
		return strings.TrimSpace(text)
	}
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(mentionToken))
	if err != nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(re.ReplaceAllString(text, ""))
}

// Resolve cleans the raw message and tries each grammar in priority order
// against the resolution instant now. The first grammar that matches wins;
// when none matches the second return value is false and the caller should
// show the accepted formats back to the user.
func Resolve(text, mentionToken string, now time.Time) (*ParsedDateTime, bool) {
	cleaned := StripMention(text, mentionToken)

	for _, g := range grammars {
		if instant, ok := g.tryParse(cleaned, now); ok {
			return &ParsedDateTime{Instant: instant, SourceFormat: g.name}, true
		}
	}
	return nil, false
}
