package savings

// SavingsError is a custom error type for savings errors
type SavingsError string

// Error implements the error interface
func (e SavingsError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        SavingsError = "config cannot be nil"
	ErrNilClient        SavingsError = "client cannot be nil"
	ErrNilInput         SavingsError = "input cannot be nil"
	ErrEmptyTitle       SavingsError = "goal title cannot be empty"
	ErrNonPositiveMoney SavingsError = "amount must be positive"
	ErrInvalidGoalID    SavingsError = "goal id must be positive"
)
