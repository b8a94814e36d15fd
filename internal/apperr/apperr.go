package apperr

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Error is an application error carrying the HTTP status it maps to.
// Messages are fixed, caller-safe strings; anything else is treated as an
// internal error and never leaked to the client.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

var (
	// ErrBadRequest covers malformed identifiers, invalid query parameters,
	// wrong-typed payload fields and constraint violations on insert
	ErrBadRequest = &Error{Status: http.StatusBadRequest, Message: "bad request"}

	// ErrNotFound covers well-formed identifiers that match no row
	ErrNotFound = &Error{Status: http.StatusNotFound, Message: "not found"}
)

// Postgres SQLSTATE codes that indicate a caller mistake rather than a
// server fault: invalid text representation, value too long for column,
// not-null violation, foreign-key violation.
var badRequestCodes = map[pq.ErrorCode]bool{
	"22P02": true,
	"22001": true,
	"23502": true,
	"23503": true,
}

// FromDB translates database constraint violations into ErrBadRequest.
// Any other error passes through unchanged and surfaces as a 500 at the
// handler boundary.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && badRequestCodes[pqErr.Code] {
		return ErrBadRequest
	}
	return err
}
