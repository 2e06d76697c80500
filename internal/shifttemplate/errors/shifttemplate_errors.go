package shifttemplateerrors

import (
	"net/http"

	"go-dispo/internal/shared/apperror"
)

var (
	ErrTemplateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift template not found",
		http.StatusNotFound,
	)

	ErrInvalidTemplateID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid shift template ID",
		http.StatusBadRequest,
	)

	ErrInvalidWeekdayMask = apperror.New(
		apperror.CodeInvalidInput,
		"Weekday mask must select at least one weekday",
		http.StatusBadRequest,
	)

	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"Start and end time must be HH:MM and describe a non-empty range",
		http.StatusBadRequest,
	)

	ErrTemplateHasInstances = apperror.New(
		apperror.CodeReferentialIntegrity,
		"Shift template still has generated instances and cannot be hard-deleted",
		http.StatusConflict,
	)
)
