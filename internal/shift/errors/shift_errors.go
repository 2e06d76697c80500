package shifterrors

import (
	"net/http"

	"go-dispo/internal/shared/apperror"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift instance not found",
		http.StatusNotFound,
	)

	ErrInvalidShiftID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid shift instance ID",
		http.StatusBadRequest,
	)

	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"Shift start must be before shift end",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
