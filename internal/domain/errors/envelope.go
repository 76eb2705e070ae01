package errors

// Every API response is one of two envelopes: SuccessResponse{data, meta}
// or ErrorResponse{error, meta}. Meta always carries the request ID.

// ErrorInfo is the error body returned to API callers.
type ErrorInfo struct {
	Code    string `json:"code"`              // stable code from an AppError, e.g. "NOT_APPROVED"
	Message string `json:"message"`           // safe for end users
	Details any    `json:"details,omitempty"` // field lists and limits; dropped for 401, 403 and 5xx
}

// MetaInfo is attached to every response.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse wraps handler output.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failed request.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
