package models

// ErrorCode is the numeric code written as the response body when a request fails.
// Clients of the meals service match on these values, so they must not change.
type ErrorCode int

// Error code constants
const (
	// Request errors
	CodeUnsupportedMediaType ErrorCode = 0
	CodeInvalidBody          ErrorCode = -1

	// Catalog errors
	CodeDuplicateName       ErrorCode = -2
	CodeUnknownFood         ErrorCode = -3
	CodeUpstreamUnavailable ErrorCode = -4
	CodeNotFound            ErrorCode = -5
	CodeInvalidReference    ErrorCode = -6
)

// APIError represents a standardized error response for failures that have no numeric code
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// API error code constants
const (
	ErrInternalServer     = "INTERNAL_SERVER_ERROR"
	ErrMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrRepositoryCorrupt  = "REPOSITORY_CORRUPTION"
	ErrNotImplementedBulk = "Not implemented"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
