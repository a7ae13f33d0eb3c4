package equipmenterrors

import (
	"net/http"

	"hr-admin/internal/shared/apperror"
)

var (
	ErrEquipmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Equipment not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEquipmentConflict = apperror.New(
		apperror.CodeConflict,
		"Equipment was modified by someone else, refresh and try again",
		http.StatusConflict,
	)
	ErrSerialAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Equipment with the same serial number already exists",
		http.StatusConflict,
	)
	ErrAssignRetired = apperror.New(
		apperror.CodeInvalidState,
		"Retired equipment cannot be assigned",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid equipment status",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD or RFC3339",
		http.StatusBadRequest,
	)
)
