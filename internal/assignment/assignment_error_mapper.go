package assignment

import (
	"errors"
	"strings"

	assignmenterrors "go-dispo/internal/assignment/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates driver-level failures into the typed
// errors this module exposes.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return assignmenterrors.ErrAssignmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_assignments_shift_person" {
				return assignmenterrors.ErrDuplicateAssignment
			}
		case "23503":
			return assignmenterrors.ErrUnknownReference
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_assignments_shift_person") {
		return assignmenterrors.ErrDuplicateAssignment
	}

	return err
}
