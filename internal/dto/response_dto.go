package dto

// ErrorResponse is the body of every non-2xx response. Details only ever
// carries request validation messages.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
