package sqlerr

// Code classifies a Postgres error into the categories this service
// reacts to. Anything else is Other.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
)

// SQLSTATE values, per the Postgres error code appendix.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// MapCode translates a raw SQLSTATE into a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case pgUniqueViolation:
		return UniqueViolation
	case pgForeignKeyViolation:
		return ForeignKeyViolation
	case pgNotNullViolation:
		return NotNullViolation
	case pgCheckViolation:
		return CheckViolation
	default:
		return Other
	}
}

// Error is the normalized form of a Postgres error, carrying the metadata
// needed to phrase a client-facing message.
type Error struct {
	Code           Code
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
