package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidArgs       = errors.New("invalid arguments")
	ErrTaskNotFound      = errors.New("task not found")
	ErrObjectiveNotFound = errors.New("objective not found")
	ErrSchemaMissing     = errors.New("schema not provisioned")
)

// storageErr wraps a database failure, surfacing a missing table as
// ErrSchemaMissing so handlers can answer with a setup hint instead of a
// bare 500.
func storageErr(op string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%s: %w", op, ErrSchemaMissing)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Postgres error codes: 42P01 undefined_table, 23503 foreign_key_violation.

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
