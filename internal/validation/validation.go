// Package validation contains the logic for validating request data.
//
// Request payload types implement Validatable; BindAndValidate binds the
// incoming request into the payload and converts any violations into a
// field-attributed 400 error. Constraints that cannot be expressed via
// validator tags are reported as CustomValidationErrors.
package validation
