package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Allow letters, marks, numbers, spaces and common name punctuation: . ' - / & ( ) ,
var nameRegex = regexp.MustCompile(`^[\p{L}\p{M}0-9 .'/&(),-]+$`)

// New returns a validator with the custom rules registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("no_header_break", NoHeaderBreak)
	_ = v.RegisterValidation("not_blank", NotBlank)
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// NoHeaderBreak rejects values that would split a mail header line
func NoHeaderBreak(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}

// NotBlank rejects values made only of whitespace
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimFunc(fl.Field().String(), unicode.IsSpace) != ""
}
