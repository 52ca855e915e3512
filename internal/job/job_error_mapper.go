package job

import (
	"errors"
	"net/http"

	joberrors "go-jobtracker/internal/job/errors"
	"go-jobtracker/internal/shared/apperror"

	"gorm.io/gorm"
)

func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return joberrors.ErrJobNotFound
	}

	return apperror.Wrap(err, apperror.CodeInternalError,
		"Job store operation failed", http.StatusInternalServerError)
}
