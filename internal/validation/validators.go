package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	if err := Validate.RegisterValidation("notblank", validateNotBlank); err != nil {
		panic(fmt.Sprintf("failed to register notblank validator: %v", err))
	}
}

// validateNotBlank rejects strings that are empty after trimming whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// SanitizeText trims whitespace and removes control characters except newline and tab
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}

// SanitizeLine is SanitizeText for values stored one per line: newlines
// and tabs are replaced by spaces.
func SanitizeLine(text string) string {
	text = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(text)
	return SanitizeText(text)
}

// FirstError renders the first validation failure as a short message
func FirstError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return fmt.Sprintf("Invalid value for '%s' (%s)", jsonFieldName(fe), fe.Tag())
	}
	return "Validation failed"
}

func jsonFieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}
