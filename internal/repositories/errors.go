package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/apperrors"
)

// SQLSTATE unique_violation.
const uniqueViolation = "23505"

var constraintMessages = map[string]string{
	"usuarios_nombre_key": "nombre already taken",
	"usuarios_email_key":  "email already registered",
	"alumnos_info_pkey":   "student profile already exists",
}

// classify maps driver errors to the application error kinds:
// unique violations become ErrConflict, everything else (including
// context deadlines) ErrStorageUnavailable.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		msg, ok := constraintMessages[pgErr.ConstraintName]
		if !ok {
			msg = pgErr.ConstraintName
		}
		return fmt.Errorf("%w: %s", apperrors.ErrConflict, msg)
	}

	return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
}
