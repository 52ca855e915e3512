package sessionerrors

import (
	"net/http"

	"go-jobtracker/internal/shared/apperror"
)

var (
	ErrDeviceIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Device ID is required",
		http.StatusBadRequest,
	)
	ErrCacheUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Local session cache is unavailable",
		http.StatusServiceUnavailable,
	)
)
