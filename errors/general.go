package errors

const (
	UnknownErrorCode    = 100_001
	ValidationErrorCode = 100_002
)

var UnknownError = new(UnknownErrorCode, "UnknownError", "unexpected error: %s")

// ValidationError indicates request input that failed validation rules. The message lists every failure.
var ValidationError = new(ValidationErrorCode, "ValidationError", "%s")
