package validator

import "regexp"

// emailPattern is deliberately loose: something@something.something without whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail fails unless value looks like local@domain.tld.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailPattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
		},
	}
}
