package sqlerr

import (
	"fmt"
	"strings"
)

// Code is a driver-independent category for a database error.
type Code string

const (
	Other                     Code = "other"
	NotNullViolation          Code = "not_null_violation"
	ForeignKeyViolation       Code = "foreign_key_violation"
	UniqueViolation           Code = "unique_violation"
	CheckViolation            Code = "check_violation"
	ExclusionViolation        Code = "exclusion_violation"
	InvalidTextRepresentation Code = "invalid_text_representation"
	NumericValueOutOfRange    Code = "numeric_value_out_of_range"
	ConnectionException       Code = "connection_exception"
	QueryCanceled             Code = "query_canceled"
	UndefinedTable            Code = "undefined_table"
	UndefinedColumn           Code = "undefined_column"
)

// Severity mirrors the Postgres message severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a normalized database error. It keeps the original driver
// error reachable through Unwrap.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
	if e.TableName != "" {
		fmt.Fprintf(&b, " (table %s", e.TableName)
		if e.ColumnName != "" {
			fmt.Fprintf(&b, ", column %s", e.ColumnName)
		}
		if e.ConstraintName != "" {
			fmt.Fprintf(&b, ", constraint %s", e.ConstraintName)
		}
		b.WriteString(")")
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE onto a Code. Exact codes win; otherwise the
// two-character class decides.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	case "22P02":
		return InvalidTextRepresentation
	case "22003":
		return NumericValueOutOfRange
	case "57014":
		return QueryCanceled
	case "42P01":
		return UndefinedTable
	case "42703":
		return UndefinedColumn
	}

	if strings.HasPrefix(sqlState, "08") {
		return ConnectionException
	}

	return Other
}

// MapSeverity maps the Postgres severity string; unknown values become
// SeverityError.
func MapSeverity(severity string) Severity {
	switch s := Severity(strings.ToUpper(severity)); s {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return s
	default:
		return SeverityError
	}
}
