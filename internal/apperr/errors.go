package apperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when an update targets a row that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDatabaseUnavailable marks a schema initialization failure. The
	// process must not serve traffic after seeing it.
	ErrDatabaseUnavailable = errors.New("database unavailable")
)

// ValidationError is a client-side input problem. Message is returned to the
// caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validation(msg string) error {
	return &ValidationError{Message: msg}
}

// StoreError wraps any failure talking to the backing store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	var pgErr *pgconn.PgError
	if errors.As(e.Err, &pgErr) {
		return fmt.Sprintf("%s: sqlstate=%s %s", e.Op, pgErr.Code, pgErr.Message)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func IsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
