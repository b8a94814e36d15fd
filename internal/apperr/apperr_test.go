package apperr

import (
	"errors"
	"testing"

	"github.com/lib/pq"
)

func TestFromDB_ConstraintViolations(t *testing.T) {
	cases := []struct {
		name string
		code pq.ErrorCode
	}{
		{"invalid text representation", "22P02"},
		{"string data right truncation", "22001"},
		{"not null violation", "23502"},
		{"foreign key violation", "23503"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := FromDB(&pq.Error{Code: tc.code})
			if err != ErrBadRequest {
				t.Errorf("Expected ErrBadRequest for code %s, got %v", tc.code, err)
			}
		})
	}
}

func TestFromDB_PassThrough(t *testing.T) {
	if err := FromDB(nil); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}

	// Unknown SQLSTATE stays a server fault
	unknown := &pq.Error{Code: "42P01"}
	if err := FromDB(unknown); err != unknown {
		t.Errorf("Expected pq error to pass through, got %v", err)
	}

	plain := errors.New("connection refused")
	if err := FromDB(plain); err != plain {
		t.Errorf("Expected plain error to pass through, got %v", err)
	}

	// Application errors are already classified
	if err := FromDB(ErrNotFound); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound to pass through, got %v", err)
	}
}

func TestErrorMessages(t *testing.T) {
	if ErrBadRequest.Error() != "bad request" {
		t.Errorf("Expected 'bad request', got %q", ErrBadRequest.Error())
	}
	if ErrNotFound.Error() != "not found" {
		t.Errorf("Expected 'not found', got %q", ErrNotFound.Error())
	}
	if ErrBadRequest.Status != 400 || ErrNotFound.Status != 404 {
		t.Error("Unexpected status codes on sentinel errors")
	}
}
