package dto

// ErrorResponse is the flat error body returned by every failing endpoint:
// a short message only, never stack traces or driver detail.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteResponse confirms a successful delete
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// HealthResponse is the liveness probe body
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Database  bool   `json:"database"`
}
