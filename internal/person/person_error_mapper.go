package person

import (
	"errors"
	"strings"

	personerrors "go-dispo/internal/person/errors"

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
		return personerrors.ErrPersonNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_persons_email" {
				return personerrors.ErrEmailAlreadyExists
			}
		case "23503":
			return personerrors.ErrPersonHasAssignments
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_persons_email") {
		return personerrors.ErrEmailAlreadyExists
	}

	return err
}
