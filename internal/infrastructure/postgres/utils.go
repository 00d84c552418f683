package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isExclusionViolation verifica si un error es una violación de constraint de
// exclusión (23P01); la tabla de asignaciones lo usa para impedir intervalos
// solapados sobre un mismo corral.
func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" // exclusion_violation
	}
	return strings.Contains(err.Error(), "23P01")
}
