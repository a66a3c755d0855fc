package resolver

import (
	"fmt"
	"time"
)

var spanishMonths = [...]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// FormatSpanishDateTime renders an instant the way es-ES renders a long
// date, e.g. "22 de noviembre de 2025, 15:00".
func FormatSpanishDateTime(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d, %02d:%02d", t.Day(), spanishMonths[t.Month()], t.Year(), t.Hour(), t.Minute())
}

// FormatSpanishDate renders the date-only DD/MM/YYYY form.
func FormatSpanishDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%d", t.Day(), int(t.Month()), t.Year())
}
