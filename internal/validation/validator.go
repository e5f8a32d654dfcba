package validation

import (
	"regexp"
	"strings"

	"burger_club/internal/models"
)

// Quantity bounds of the widget's select list.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

var (
	// International format: optional leading +, first digit 1-9, at least
	// 10 digits total, nothing else.
	intlPhoneRegex = regexp.MustCompile(`^\+?[1-9][0-9]{9,15}$`)
	// Loose local format, checked after stripping whitespace: at least 10
	// characters drawn from digits and ()-.
	localPhoneRegex = regexp.MustCompile(`^[0-9()\-]{10,}$`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Validate checks raw form input against the field rules and returns the
// overall verdict plus one FieldError per failing field. It has no side
// effects; surfacing the errors is the caller's concern.
func Validate(input models.OrderInput) models.ValidationResult {
	var errs []models.FieldError

	if strings.TrimSpace(input.CustomerName) == "" {
		errs = append(errs, models.FieldError{
			Field:   "customer_name",
			Reason:  models.ReasonRequired,
			Message: "Customer name is required",
		})
	}

	phone := strings.TrimSpace(input.PhoneNumber)
	if phone == "" {
		errs = append(errs, models.FieldError{
			Field:   "phone_number",
			Reason:  models.ReasonRequired,
			Message: "Phone number is required",
		})
	} else if !validPhone(phone) {
		errs = append(errs, models.FieldError{
			Field:   "phone_number",
			Reason:  models.ReasonInvalidFormat,
			Message: "Please enter a valid phone number",
		})
	}

	if strings.TrimSpace(input.ItemType) == "" {
		errs = append(errs, models.FieldError{
			Field:   "item_type",
			Reason:  models.ReasonRequired,
			Message: "Please select an item",
		})
	}

	// The widget's quantity select offers 1-10; raw JSON is not so bounded.
	if input.Quantity < MinQuantity || input.Quantity > MaxQuantity {
		errs = append(errs, models.FieldError{
			Field:   "quantity",
			Reason:  models.ReasonInvalidFormat,
			Message: "Quantity must be between 1 and 10",
		})
	}

	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func validPhone(phone string) bool {
	if intlPhoneRegex.MatchString(phone) {
		return true
	}
	stripped := whitespaceRegex.ReplaceAllString(phone, "")
	return localPhoneRegex.MatchString(stripped)
}
