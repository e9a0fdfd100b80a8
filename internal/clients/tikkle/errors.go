package tikkle

import (
	"fmt"
	"net/http"
)

// ClientError is a custom error type for client-side failures
type ClientError string

// Error implements the error interface
func (e ClientError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        ClientError = "config cannot be nil"
	ErrEmptyBaseURL     ClientError = "base URL cannot be empty"
	ErrNilInput         ClientError = "input cannot be nil"
	ErrInvalidInput     ClientError = "invalid input"
	ErrInvalidPayload   ClientError = "invalid response payload"
	ErrUnknownProvider  ClientError = "unknown login provider"
	ErrUnauthorized     ClientError = "unauthorized"
	ErrNonPositiveMoney ClientError = "amount must be positive"
	ErrInvalidID        ClientError = "id must be positive"
)

// APIError is a non-2xx response from the server
type APIError struct {
	// Status is the HTTP status code
	Status int

	// Message is the best human-readable message found in the body
	Message string

	// Data is the decoded JSON body, or the raw text body
	Data any
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
