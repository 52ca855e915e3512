package joberrors

import (
	"net/http"

	"go-jobtracker/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job not found",
		http.StatusNotFound,
	)
	ErrInvalidJobID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job ID",
		http.StatusBadRequest,
	)
	ErrNoCompany = apperror.New(
		apperror.CodeInvalidState,
		"This account is not attached to a company",
		http.StatusConflict,
	)
	ErrNotPermitted = apperror.New(
		apperror.CodeForbidden,
		"This role may not perform that job operation",
		http.StatusForbidden,
	)
	ErrInlinePhotoData = apperror.New(
		apperror.CodeInvalidInput,
		"Cloud jobs may only reference photo locators, not inline image data",
		http.StatusBadRequest,
	)
	ErrTitleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Job title is required",
		http.StatusBadRequest,
	)
	ErrLocalStoreUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Local job storage is unavailable",
		http.StatusServiceUnavailable,
	)
)
