package constvars

const (
	RegexNumeric            = `^\d+$`
	RegexDateYYYYMMDD       = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM           = `^([01][0-9]|2[0-3]):[0-5][0-9]$`
	RegexPhoneNumberMX      = `^(?:\+?52)?\d{10}$`
	RegexPhoneNumberGeneral = `^\+[1-9]\d{9,14}$`
	// RegexPhoneNumberDigitsInternational matches "E.164 without plus", digits only.
	// 10-15 digits, cannot start with 0.
	RegexPhoneNumberDigitsInternational = `^[1-9]\d{9,14}$`
)
