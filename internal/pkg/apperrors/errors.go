package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Catalog errors
var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrCourseNotFound       = errors.New("course not found")
	ErrAcademicYearNotFound = errors.New("academic year not found")
	ErrUserNotFound         = errors.New("user not found")
)

// Report errors
var (
	// ErrReportFetchFailed covers upstream data access failures; it aborts the
	// whole report request, unlike render failures which only drop the export.
	ErrReportFetchFailed = errors.New("failed to fetch report data")
	ErrUnsupportedFormat = errors.New("unsupported report format")
)

// Artifact errors
var (
	ErrArtifactNotFound = errors.New("report file not found")
	ErrInvalidFilename  = errors.New("invalid filename")
)

// CustomError pairs a sentinel with a response-ready message. errors.Is
// still matches the wrapped sentinel through Unwrap.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError wraps a sentinel error with a message
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
