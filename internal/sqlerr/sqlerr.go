// Package sqlerr converts database driver errors into the application
// error taxonomy.
//
// It parses SQLSTATE codes from Postgres (via pgx) and maps constraint
// violations into client-correctable 400 errors with readable messages,
// keeping driver details out of responses.
package sqlerr
