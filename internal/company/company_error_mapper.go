package company

import (
	"errors"
	"net/http"

	companyerrors "go-jobtracker/internal/company/errors"
	"go-jobtracker/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_company_join_code" {
			// Join code collision on create. Rare with a 32^6 space; the
			// caller just retries.
			return apperror.Wrap(err, apperror.CodeConflict,
				"Could not allocate a join code, please retry", http.StatusConflict)
		}
	}

	return apperror.Wrap(err, apperror.CodeInternalError,
		"Company store operation failed", http.StatusInternalServerError)
}
