package http

// ErrorEnvelope is the uniform non-success reply body. Exactly one envelope
// per failed request, never mixed with payload data.
type ErrorEnvelope struct {
	Error *AppError `json:"error"`
}

// ValidationError represents a request binding failure detail.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}
