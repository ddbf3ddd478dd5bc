package services

import (
	"errors"

	"localconnect/database/repository"
	"localconnect/utils"
)

// StoreError converts a repository failure into an AppError. Sentinels with an
// empty message fall through to Internal.
func StoreError(err error, notFound, conflict string) error {
	var appErr *utils.AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case notFound != "" && errors.Is(err, repository.ErrNotFound):
		return utils.NotFound(notFound)
	case conflict != "" && errors.Is(err, repository.ErrDuplicateKey):
		return utils.Conflict(conflict)
	default:
		return utils.Internal("storage failure", err)
	}
}
