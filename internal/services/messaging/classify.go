package messaging

import (
	"context"
	"errors"
	"net/http"

	"github.com/KirkDiggler/tikkle/internal/clients/tikkle"
)

// Classify maps a client error onto the error copy shown to the user
func Classify(err error) ErrorType {
	var apiErr *tikkle.APIError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, tikkle.ErrUnauthorized):
		return ErrorTypeUnauthorized
	case errors.Is(err, tikkle.ErrInvalidInput), errors.Is(err, tikkle.ErrNonPositiveMoney),
		errors.Is(err, tikkle.ErrInvalidID), errors.Is(err, tikkle.ErrUnknownProvider):
		return ErrorTypeInvalidInput
	case errors.As(err, &apiErr):
		switch {
		case apiErr.Status == http.StatusNotFound:
			return ErrorTypeNotFound
		case apiErr.Status == http.StatusBadRequest:
			return ErrorTypeInvalidInput
		case apiErr.Status >= 500:
			return ErrorTypeNetwork
		}
		return ErrorTypeUnknown
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorTypeNetwork
	}

	return ErrorTypeUnknown
}
