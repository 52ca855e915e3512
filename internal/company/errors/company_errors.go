package companyerrors

import (
	"net/http"

	"go-jobtracker/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	// Join-code mismatch is a user-facing validation outcome, kept distinct
	// from a network fault so the screen can show "code not found" instead of
	// a generic retry prompt.
	ErrJoinCodeNotFound = apperror.New(
		apperror.CodeNotFound,
		"No company matches this join code",
		http.StatusNotFound,
	)
	ErrJoinCodeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Join code is required",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Company name is required",
		http.StatusBadRequest,
	)
	ErrAlreadyInCompany = apperror.New(
		apperror.CodeConflict,
		"This account is already attached to a company",
		http.StatusConflict,
	)
	ErrNotCompanyMember = apperror.New(
		apperror.CodeForbidden,
		"This account is not attached to a company",
		http.StatusForbidden,
	)
)
