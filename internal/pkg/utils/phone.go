package utils

import (
	"fmt"
	"lavanderia-service/internal/pkg/constvars"
	"regexp"
	"strings"
)

var (
	reDigitsOnly = regexp.MustCompile(constvars.RegexNumeric)
	reNonDigits  = regexp.MustCompile(`\D`)
)

// NormalizePhoneDigits strips everything that is not a digit. WhatsApp sender
// IDs arrive as "5215512345678@c.us" style strings, so the suffix and any
// formatting characters are dropped.
func NormalizePhoneDigits(input string) string {
	s := strings.TrimSpace(input)
	if at := strings.IndexByte(s, '@'); at >= 0 {
		s = s[:at]
	}
	return reNonDigits.ReplaceAllString(s, "")
}

// NormalizeLocalPhone prefixes the default country code when the number has
// the 10-digit local form. Numbers already carrying the country code pass
// through unchanged.
func NormalizeLocalPhone(phoneDigits string) string {
	if len(phoneDigits) == 10 {
		return constvars.DefaultCountryCode + phoneDigits
	}
	return phoneDigits
}

// ValidateInternationalPhoneDigits enforces "international digits" (E.164 without '+'):
// digits only, 10..15 digits, must not start with '0'.
func ValidateInternationalPhoneDigits(phoneDigits string) error {
	if strings.TrimSpace(phoneDigits) == "" {
		return fmt.Errorf("phone is required")
	}
	if !reDigitsOnly.MatchString(phoneDigits) {
		return fmt.Errorf("phone must contain digits only")
	}
	if strings.HasPrefix(phoneDigits, "0") {
		return fmt.Errorf("phone must include country code (must not start with 0)")
	}
	if len(phoneDigits) < 10 || len(phoneDigits) > 15 {
		return fmt.Errorf("phone must be 10 to 15 digits (international format without '+')")
	}
	return nil
}
