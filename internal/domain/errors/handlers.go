package errors

// ErrorInfo contains detailed error information for API responses.
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g. "USER_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Response is the unified API response envelope shared by the HTTP layer
// and the central error handler.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
