package models

// OrderInput is the raw form submission before validation. Quantity comes
// from a bounded select on the widget, so it arrives as an int already.
type OrderInput struct {
	CustomerName        string `json:"customer_name"`
	PhoneNumber         string `json:"phone_number"`
	ItemType            string `json:"item_type"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions"`
}

// FieldError describes why a single input field failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

const (
	ReasonRequired      = "required"
	ReasonInvalidFormat = "invalid_format"
)

// ValidationResult is the Validator's verdict for one OrderInput.
type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}
