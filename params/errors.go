package params

// ErrorType represents error categories for schema registration, parsing
// and typed value access. Every failure surfaced by this package is a
// *ParseError carrying one of these categories.
type ErrorType string

const (
	ErrorTypeConfiguration   ErrorType = "configuration"
	ErrorTypeUnknownOption   ErrorType = "unknown_option"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeConversion      ErrorType = "conversion"
	ErrorTypeMissingRequired ErrorType = "missing_required"
	ErrorTypeNotFound        ErrorType = "not_found"
	ErrorTypeTypeMismatch    ErrorType = "type_mismatch"
)

// ParseError is the single error type returned by Bind/Add, Parse and Get.
// Param holds the alias or placeholder name involved, when there is one.
// Suggestion carries a fuzzy-matched alternative for unknown options.
type ParseError struct {
	Type       ErrorType
	Message    string
	Param      string
	Suggestion string
	Cause      error
}

func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, e.g. the strconv error behind a
// conversion failure.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new ParseError with the given type and message
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    errType,
		Message: message,
	}
}

// IsType reports whether err is a *ParseError of the given category.
func IsType(err error, typ ErrorType) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Type == typ
}
