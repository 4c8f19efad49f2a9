package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/kingdomroll/internal/domain"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgUserNotFoundError   = "User not found"
	ErrMsgRollInProgressError = "A roll is already in progress for that user"
	ErrMsgDailyRollUsedError  = "Daily roll already used"
	ErrMsgNoBonusRollsError   = "No bonus rolls available"
	ErrMsgGrantLimitError     = "Bonus roll grant limit exceeded"
	ErrMsgWalletCooldownError = "Wallet was changed too recently"
	ErrMsgWalletMissingError  = "No wallet bound for that user"

	MsgBonusGranted = "Bonus rolls granted"
	MsgWalletBound  = "Wallet bound"
)

// MapDomainError converts a service error into an HTTP status and a
// user-facing message. Unknown errors become a 500 with a generic body
// so internals never leak.
func MapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRollNotFound),
		errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError

	case errors.Is(err, domain.ErrRollInProgress):
		return http.StatusConflict, ErrMsgRollInProgressError

	case errors.Is(err, domain.ErrDailyRollUsed):
		return http.StatusConflict, ErrMsgDailyRollUsedError

	case errors.Is(err, domain.ErrNoBonusRolls):
		return http.StatusConflict, ErrMsgNoBonusRollsError

	case errors.Is(err, domain.ErrTooManyBonusRolls):
		return http.StatusUnprocessableEntity, ErrMsgGrantLimitError

	case errors.Is(err, domain.ErrWalletChangeTooSoon):
		return http.StatusConflict, ErrMsgWalletCooldownError

	case errors.Is(err, domain.ErrWalletMissing):
		return http.StatusUnprocessableEntity, ErrMsgWalletMissingError

	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidWalletAddress),
		errors.Is(err, domain.ErrUnknownSource):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
