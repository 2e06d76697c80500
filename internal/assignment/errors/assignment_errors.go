package assignmenterrors

import (
	"net/http"

	"go-dispo/internal/shared/apperror"
)

var (
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Assignment not found",
		http.StatusNotFound,
	)

	ErrInvalidAssignmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid assignment ID",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid assignment status",
		http.StatusBadRequest,
	)

	ErrDuplicateAssignment = apperror.New(
		apperror.CodeConstraintViolation,
		"This person is already assigned to this shift",
		http.StatusConflict,
	)

	ErrUnknownReference = apperror.New(
		apperror.CodeReferentialIntegrity,
		"Referenced shift instance or person does not exist",
		http.StatusConflict,
	)
)
