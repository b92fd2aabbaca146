package dto

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	// Field names the offending input for validation errors.
	Field string `json:"field,omitempty"`
	// Details holds the exceeded-limit breakdown lines.
	Details []string `json:"details,omitempty"`
	// ExceededType is DAILY, MONTHLY or BOTH on limit rejections.
	ExceededType string `json:"exceededType,omitempty"`
}
