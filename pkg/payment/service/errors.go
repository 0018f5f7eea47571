package service

import (
	"errors"

	apperrors "github.com/0xNexuz/Tempocash/pkg/app/errors"
	"github.com/0xNexuz/Tempocash/pkg/payment"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrUnsupportedToken  = errors.New("token is not supported")
	ErrLiveNotConfigured = errors.New("live mode is not configured")
)

func categoryOf(kind payment.Kind) apperrors.Category {
	switch kind {
	case payment.KindNotFound:
		return apperrors.CategoryResourceNotFound
	case payment.KindWrongIdentifierFormat, payment.KindNoAccount:
		return apperrors.CategoryDataError
	case payment.KindInvalidStep, payment.KindAlreadySettledOrInvalid:
		return apperrors.CategoryDataConflict
	case payment.KindOperationPending:
		return apperrors.CategoryLocked
	case payment.KindNetworkMismatch, payment.KindSessionStale:
		return apperrors.CategoryPreconditionFailed
	case payment.KindUserRejected:
		return apperrors.CategoryForbidden
	case payment.KindInsufficientFunds:
		return apperrors.CategoryPaymentRequired
	case payment.KindContractUnavailable, payment.KindFetchFailed,
		payment.KindAuthorizationFailed, payment.KindSettlementFailed:
		return apperrors.CategoryDependencyFailure
	default:
		return apperrors.CategoryGeneralError
	}
}

// toServiceError converts payment failures into service errors carrying the
// user facing message and corrective action of their kind.
func toServiceError(err error) error {
	if err == nil {
		return nil
	}
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}
	var pe *payment.Error
	if !errors.As(err, &pe) {
		return apperrors.GeneralError(err)
	}
	return &apperrors.ServiceError{
		Category: categoryOf(pe.Kind),
		Message:  pe.Kind.Message(),
		Kind:     pe.Kind.String(),
		Action:   pe.Kind.Action(),
		Err:      err,
	}
}
