package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/quickbite/api/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Validate returns nil on success. It may return:
//   - CustomValidationErrors for field-attributed violations
//   - validator.ValidationErrors from tag-based validation
//   - *errs.HTTPError for request-level failures that already carry their
//     own status and message (passed through unchanged)
type Validatable interface {
	Validate() error
}

// CustomValidationError is a single validation issue for a specific field.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return Message(c.FieldErrors())
}

// FieldErrors converts the slice into the wire-level field error shape.
func (c CustomValidationErrors) FieldErrors() []errs.FieldError {
	fieldErrors := make([]errs.FieldError, len(c))
	for i, ce := range c {
		fieldErrors[i] = errs.FieldError{Field: ce.Field, Error: ce.Message}
	}
	return fieldErrors
}

// BindAndValidate binds request data into payload and validates it.
//
// Binding failures (malformed JSON, type mismatches such as a non-numeric
// price) and validation failures both surface as a 400 *errs.HTTPError; the
// caller only has to return the error.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Validation error: request body could not be parsed", nil)
	}
	return Extract(payload.Validate())
}

// Extract converts the result of Validate into an *errs.HTTPError, or nil.
func Extract(err error) error {
	if err == nil {
		return nil
	}

	// Request-level errors carry their own status and message.
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	fieldErrors := extractFieldErrors(err)
	return errs.NewBadRequestError(Message(fieldErrors), fieldErrors)
}

// Message renders the concatenated human-readable form used in responses:
// "Validation error: <field> <reason>, <field> <reason>".
func Message(fieldErrors []errs.FieldError) string {
	reasons := make([]string, len(fieldErrors))
	for i, fe := range fieldErrors {
		reasons[i] = fe.Field + " " + fe.Error
	}
	return "Validation error: " + strings.Join(reasons, ", ")
}

func extractFieldErrors(err error) []errs.FieldError {
	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		return customErrors.FieldErrors()
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	var fieldErrors []errs.FieldError
	for _, ve := range validationErrors {
		field := strings.ToLower(ve.Field())
		var msg string

		switch ve.Tag() {
		case "required":
			msg = "is required"
		case "min":
			if ve.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", ve.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", ve.Param())
			}
		case "max":
			if ve.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", ve.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", ve.Param())
			}
		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", ve.Param())
		default:
			if ve.Param() != "" {
				msg = fmt.Sprintf("%s:%s", ve.Tag(), ve.Param())
			} else {
				msg = ve.Tag()
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{Field: field, Error: msg})
	}

	return fieldErrors
}
