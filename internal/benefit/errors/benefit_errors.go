package benefiterrors

import (
	"net/http"

	"hr-admin/internal/shared/apperror"
)

var (
	ErrBenefitNotFound = apperror.New(
		apperror.CodeNotFound,
		"Benefit not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrBenefitConflict = apperror.New(
		apperror.CodeConflict,
		"Benefit was modified by someone else, refresh and try again",
		http.StatusConflict,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD or RFC3339",
		http.StatusBadRequest,
	)
)
