package dto

// Response represents a standard API error envelope.
// Success payloads are emitted directly by handlers in their
// resource-specific shapes; this envelope is for failures.
type Response struct {
	Success   bool       `json:"success"`
	Error     *ErrorInfo `json:"error,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithRequestID creates an error response carrying the request ID
func NewErrorResponseWithRequestID(code, message, requestID string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
		RequestID: requestID,
	}
}

// StatusResponse is the payload for delete operations
type StatusResponse struct {
	Status string `json:"status"`
}

// DeletedResponse returns the standard payload for a successful delete
func DeletedResponse() StatusResponse {
	return StatusResponse{Status: "deleted"}
}
