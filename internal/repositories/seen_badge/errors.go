package seen_badge

// LedgerError is a custom error type for ledger errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig  LedgerError = "config cannot be nil"
	ErrNilStorage LedgerError = "storage cannot be nil"
	ErrNilInput   LedgerError = "input cannot be nil"
)
