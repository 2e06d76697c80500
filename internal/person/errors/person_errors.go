package personerrors

import (
	"net/http"

	"go-dispo/internal/shared/apperror"
)

var (
	ErrPersonNotFound = apperror.New(
		apperror.CodeNotFound,
		"Person not found",
		http.StatusNotFound,
	)

	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConstraintViolation,
		"Person with this email already exists",
		http.StatusConflict,
	)

	ErrPersonHasAssignments = apperror.New(
		apperror.CodeReferentialIntegrity,
		"Person still has assignments and cannot be hard-deleted",
		http.StatusConflict,
	)

	ErrInvalidPersonID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid person ID",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid person role",
		http.StatusBadRequest,
	)
)
