package terminal

// TerminalError is a custom error type for terminal surface errors
type TerminalError string

// Error implements the error interface
func (e TerminalError) Error() string {
	return string(e)
}

const (
	ErrNilConfig TerminalError = "config cannot be nil"
	ErrNilWriter TerminalError = "output writer cannot be nil"
	ErrNilReader TerminalError = "input reader cannot be nil"
	ErrNilBadge  TerminalError = "badge cannot be nil"
)
