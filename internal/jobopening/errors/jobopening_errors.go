package jobopeningerrors

import (
	"net/http"

	"hr-admin/internal/shared/apperror"
)

var (
	ErrJobOpeningNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job opening not found",
		http.StatusNotFound,
	)
	ErrJobOpeningConflict = apperror.New(
		apperror.CodeConflict,
		"Job opening was modified by someone else, refresh and try again",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job opening status",
		http.StatusBadRequest,
	)
	ErrInvalidSalaryRange = apperror.New(
		apperror.CodeInvalidInput,
		"salary_range_min must not exceed salary_range_max",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
