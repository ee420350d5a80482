package service

import (
	"errors"

	"asset-management-api/internal/repository"
	apperrors "asset-management-api/pkg/errors"
)

// mapRepositoryError translates repository sentinels into application errors.
// Anything unrecognised becomes an internal or timeout error.
func mapRepositoryError(err error, operation string) *apperrors.AppError {
	switch {
	case errors.Is(err, repository.ErrComputerNotFound):
		return apperrors.NotFoundError("computer")
	case errors.Is(err, repository.ErrSoftwareNotFound):
		return apperrors.NotFoundError("software")
	case errors.Is(err, repository.ErrEmployeeNotFound):
		return apperrors.NotFoundError("employee")
	case errors.Is(err, repository.ErrComputerAlreadyAssigned):
		return apperrors.ConflictError("computer already has an open assignment")
	case errors.Is(err, repository.ErrSoftwareAlreadyAssigned):
		return apperrors.ConflictError("software is already assigned to this computer")
	case errors.Is(err, repository.ErrDuplicateComputer):
		return apperrors.ConflictError("computer with this hostname, asset number or MAC address already exists")
	case errors.Is(err, repository.ErrDuplicateEmployee):
		return apperrors.ConflictError("employee with this id or email already exists")
	case errors.Is(err, repository.ErrInUse):
		return apperrors.ConflictError("record is referenced by assignment history and cannot be deleted")
	case errors.Is(err, repository.ErrInvalidStatus):
		return apperrors.InvalidInputError("status must be one of in_stock, in_repair, retired")
	default:
		return apperrors.WrapError(err, operation)
	}
}

// outcomeLabel turns an error into the outcome label used by metrics.
func outcomeLabel(err error) string {
	if err == nil {
		return "success"
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		return "internal"
	}
	switch appErr.Code {
	case apperrors.ErrorCodeInvalidInput, apperrors.ErrorCodeInvalidJSON:
		return "invalid_input"
	case apperrors.ErrorCodeNotFound:
		return "not_found"
	case apperrors.ErrorCodeConflict:
		return "conflict"
	case apperrors.ErrorCodeTimeout:
		return "timeout"
	default:
		return "internal"
	}
}
