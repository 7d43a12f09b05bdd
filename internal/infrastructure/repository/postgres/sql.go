package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
)

const (
	pqProtocolViolation   pq.ErrorCode = "08P01"
	pqInvalidSQLStatement pq.ErrorCode = "26000"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// shouldRetryLiteral reports the pgbouncer transaction-mode failures where a
// reused unnamed statement is gone or gets the wrong number of parameters.
// Such a query can be replayed with inlined literals.
func shouldRetryLiteral(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqInvalidSQLStatement:
			return strings.Contains(pqErr.Message, "prepared statement")
		case pqProtocolViolation:
			return strings.Contains(pqErr.Message, "bind message supplies")
		}
		return false
	}

	// Poolers sometimes surface the server error as plain text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "unnamed prepared statement does not exist"):
		return true
	case strings.Contains(msg, "bind message supplies") && strings.Contains(msg, "requires"):
		return true
	}
	return false
}

func nullInt64ToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}

func nullFloat64ToPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

// nullFloat64ToAny keeps SQL NULL as an untyped nil for loose roster values.
func nullFloat64ToAny(v sql.NullFloat64) any {
	if !v.Valid {
		return nil
	}
	return v.Float64
}
