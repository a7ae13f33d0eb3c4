package candidateerrors

import (
	"net/http"

	"hr-admin/internal/shared/apperror"
)

var (
	ErrCandidateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Candidate not found",
		http.StatusNotFound,
	)
	ErrJobOpeningNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job opening not found",
		http.StatusNotFound,
	)
	ErrJobOpeningNotOpen = apperror.New(
		apperror.CodeInvalidState,
		"Candidates can only be added to an open position",
		http.StatusUnprocessableEntity,
	)
	ErrCandidateConflict = apperror.New(
		apperror.CodeConflict,
		"Candidate was modified by someone else, refresh and try again",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid candidate status",
		http.StatusBadRequest,
	)
	ErrInterviewDateInPast = apperror.New(
		apperror.CodeInvalidInput,
		"Interview date must be in the future",
		http.StatusBadRequest,
	)
	ErrInterviewNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"Interview can only be scheduled for applied or under review candidates",
		http.StatusUnprocessableEntity,
	)
	ErrOfferNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"Offer can only be made to an interviewed candidate",
		http.StatusUnprocessableEntity,
	)
	ErrHireNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"Only a candidate with an active offer can be hired",
		http.StatusUnprocessableEntity,
	)
	ErrRejectHired = apperror.New(
		apperror.CodeInvalidState,
		"A hired candidate cannot be rejected",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD or RFC3339",
		http.StatusBadRequest,
	)
)
