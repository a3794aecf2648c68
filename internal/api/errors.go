package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorEnvelope{
		Error: APIError{Code: code, Message: message},
	})
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Postgres error codes we map to user-facing errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// WriteStorageError maps a repository error to the API error taxonomy:
// no rows -> NOT_FOUND, unique violation -> DUPLICATE, FK violation on delete
// -> STILL_REFERENCED, anything else -> INTERNAL. Each of these is terminal
// for the request; there is no retry path.
func WriteStorageError(w http.ResponseWriter, err error, notFoundMsg string) {
	if errors.Is(err, pgx.ErrNoRows) {
		WriteError(w, http.StatusNotFound, "NOT_FOUND", notFoundMsg)
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			WriteError(w, http.StatusConflict, "DUPLICATE", "a record with the same value already exists")
			return
		case pgForeignKeyViolation:
			WriteError(w, http.StatusConflict, "STILL_REFERENCED", "record is still referenced and cannot be deleted")
			return
		}
	}

	WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
}

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
