package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/quickbite/api/internal/errs"
)

// ErrCode reports the mapped Code for err, or Other when err is not a
// converted database error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError normalizes a raw pgconn.PgError.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// formatUserFriendlyMessage phrases a constraint violation for clients.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)
	case UniqueViolation:
		column := extractColumnForUniqueViolation(sqlErr.ConstraintName)
		if column == "" {
			column = "identifier"
		}
		return fmt.Sprintf("%s with this %s already exists", entityName, strings.ToLower(column))
	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)
	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"
	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name from table or column metadata.
// "menu_items" becomes "Menu item"; a "user_id" column becomes "User".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return humanizeText(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		humanized := humanizeText(entity)
		// Only the leading word keeps its capital: "Menu Item" -> "Menu item".
		if len(humanized) > 1 {
			humanized = humanized[:1] + strings.ToLower(humanized[1:])
		}
		return humanized
	}

	return "record"
}

func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a unique
// constraint name. Supports "unique_<table>_<column>" and
// "<table>_<column>_key" conventions.
func extractColumnForUniqueViolation(constraintName string) string {
	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	re := regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	matches := re.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into an application
// error.
//
//   - *errs.HTTPError: returned unchanged
//   - unique violation: 400, duplicate message
//   - other constraint violations: 400 with a phrased message
//   - pgx.ErrNoRows / sql.ErrNoRows: 404
//   - anything else: redactable 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case UniqueViolation, ForeignKeyViolation, CheckViolation:
			return errs.NewBadRequestError(userMessage, nil)
		case NotNullViolation:
			fieldErrors := []errs.FieldError{{
				Field: strings.ToLower(sqlErr.ColumnName),
				Error: "is required",
			}}
			return errs.NewBadRequestError(userMessage, fieldErrors)
		default:
			return errs.NewInternalServerError(sqlErr.Message)
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found")
	}

	return errs.NewInternalServerError(err.Error())
}
