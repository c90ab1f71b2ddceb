package errs

// FieldError represents a field-level validation error.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Category labels used in the "error" field of failure responses.
const (
	LabelBadRequest  = "Bad Request"
	LabelNotFound    = "Not Found"
	LabelServerError = "Server Error"
)

// HTTPError is the error type behind every failure response.
//
// It implements the error interface via Error(). Status and Label decide
// the response shape; Fields keeps the individual validation violations for
// logging and is not part of the wire envelope.
type HTTPError struct {
	Status  int
	Label   string
	Message string
	Fields  []FieldError
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is lets errors.Is treat any two *HTTPError values as the same kind.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Status:  e.Status,
		Label:   e.Label,
		Message: message,
		Fields:  e.Fields,
	}
}
