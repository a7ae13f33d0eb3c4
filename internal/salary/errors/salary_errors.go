package salaryerrors

import (
	"net/http"

	"hr-admin/internal/shared/apperror"
)

var (
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrSalaryConflict = apperror.New(
		apperror.CodeConflict,
		"Salary was modified by someone else, refresh and try again",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary status",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD or RFC3339",
		http.StatusBadRequest,
	)
	ErrNoAdjustment = apperror.New(
		apperror.CodeInvalidInput,
		"Bulk update requires a percentage or a flat amount",
		http.StatusBadRequest,
	)
)
