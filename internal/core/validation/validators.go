// Package validation holds the pure format rules applied to record fields
// before anything reaches the persistence layer. No state, no I/O.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/frahmantamala/smart-records/internal"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-\(\)]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateEmail rejects anything that does not look like local@domain.tld.
func ValidateEmail(email string) *internal.AppError {
	if !emailPattern.MatchString(email) {
		return internal.NewValidationError("Invalid email format", internal.ErrCodeInvalidEmail)
	}
	return nil
}

// ValidatePhone accepts an empty phone (the field is optional). A non-empty
// phone may contain only digits, spaces, dashes and parentheses, and must
// carry at least 10 digits.
func ValidatePhone(phone string) *internal.AppError {
	if phone == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) {
		return internal.NewValidationError("Phone may only contain digits, spaces, dashes and parentheses", internal.ErrCodeInvalidPhone)
	}

	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 10 {
		return internal.NewValidationError("Phone must contain at least 10 digits", internal.ErrCodeInvalidPhone)
	}
	return nil
}

// ValidateRequired rejects empty or whitespace-only values.
func ValidateRequired(value, fieldName string) *internal.AppError {
	if strings.TrimSpace(value) == "" {
		return internal.NewValidationError(fmt.Sprintf("%s is required", fieldName), internal.ErrCodeFieldRequired)
	}
	return nil
}

// ValidateSalary parses an optional salary string. Empty input is valid and
// defaults to 0. A parsed salary must be non-negative.
func ValidateSalary(salaryStr string) (float64, *internal.AppError) {
	if strings.TrimSpace(salaryStr) == "" {
		return 0, nil
	}
	salary, err := strconv.ParseFloat(salaryStr, 64)
	if err != nil {
		return 0, internal.NewValidationError("Salary must be a valid number", internal.ErrCodeInvalidSalary)
	}
	if salary < 0 {
		return 0, internal.NewValidationError("Salary cannot be negative", internal.ErrCodeInvalidSalary)
	}
	return salary, nil
}

// ValidateDate accepts an empty date (optional field) or a real calendar
// date in YYYY-MM-DD form. 2024-02-29 passes, 2024-02-30 does not.
func ValidateDate(dateStr string) *internal.AppError {
	if strings.TrimSpace(dateStr) == "" {
		return nil
	}
	if !datePattern.MatchString(dateStr) {
		return internal.NewValidationError("Date must be in YYYY-MM-DD format", internal.ErrCodeInvalidDate)
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return internal.NewValidationError("Invalid date", internal.ErrCodeInvalidDate)
	}
	return nil
}
