package messaging

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/KirkDiggler/tikkle/internal/clients/tikkle"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorType
	}{
		{nil, ""},
		{&tikkle.APIError{Status: http.StatusUnauthorized}, ErrorTypeUnauthorized},
		{fmt.Errorf("wrapped: %w", &tikkle.APIError{Status: http.StatusNotFound}), ErrorTypeNotFound},
		{&tikkle.APIError{Status: http.StatusBadRequest}, ErrorTypeInvalidInput},
		{&tikkle.APIError{Status: http.StatusBadGateway}, ErrorTypeNetwork},
		{&tikkle.APIError{Status: http.StatusConflict}, ErrorTypeUnknown},
		{fmt.Errorf("%w: title", tikkle.ErrInvalidInput), ErrorTypeInvalidInput},
		{tikkle.ErrNonPositiveMoney, ErrorTypeInvalidInput},
		{context.DeadlineExceeded, ErrorTypeNetwork},
		{errors.New("boom"), ErrorTypeUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.err), fmt.Sprint(tc.err))
	}
}
