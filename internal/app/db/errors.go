package db

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the stores react to.
const (
	codeUniqueViolation   = "23505"
	codeForeignKey        = "23503"
	codeStringTooLong     = "22001"
	codeAdminShutdown     = "57P01"
	classConnectionFailed = "08"
	classResources        = "53"
)

// IsUniqueViolation checks if the error is a PostgreSQL unique constraint violation (code 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation
	}
	return false
}

// ConstraintName returns the name of the violated constraint, or "" when err carries none.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// IsForeignKeyViolation reports a reference to a missing parent row (code 23503).
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeForeignKey
	}
	return false
}

// IsStringTooLong reports a value longer than its VARCHAR column (code 22001).
func IsStringTooLong(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeStringTooLong
	}
	return false
}

// IsUnavailable reports failures of the database itself rather than of the statement:
// connect errors, timeouts, dropped connections and server-side resource exhaustion.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, classConnectionFailed) ||
			strings.HasPrefix(pgErr.Code, classResources) ||
			pgErr.Code == codeAdminShutdown
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
