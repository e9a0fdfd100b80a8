package models

import (
	"github.com/shopspring/decimal"
)

// SavingsLog is a single savings entry recorded against a goal
type SavingsLog struct {
	// ID is the server identifier of the entry
	ID int64 `json:"id" yaml:"id"`

	// GoalID is the goal the entry was recorded against
	GoalID int64 `json:"goalId" yaml:"goalId"`

	// Amount is the saved amount
	Amount decimal.Decimal `json:"amount" yaml:"amount"`

	// Memo is an optional note
	Memo string `json:"memo,omitempty" yaml:"memo,omitempty"`

	// CreatedAt is the server timestamp of the entry
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

// Page is one page of a server-side paginated listing
type Page[T any] struct {
	Content          []T  `json:"content" yaml:"content"`
	TotalElements    int  `json:"totalElements" yaml:"totalElements"`
	Number           int  `json:"number" yaml:"number"`
	Size             int  `json:"size" yaml:"size"`
	TotalPages       int  `json:"totalPages" yaml:"totalPages"`
	First            bool `json:"first,omitempty" yaml:"first,omitempty"`
	Last             bool `json:"last,omitempty" yaml:"last,omitempty"`
	NumberOfElements int  `json:"numberOfElements,omitempty" yaml:"numberOfElements,omitempty"`
}
