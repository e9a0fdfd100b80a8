package announcer

// AnnouncerError is a custom error type for announcer errors
type AnnouncerError string

// Error implements the error interface
func (e AnnouncerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      AnnouncerError = "config cannot be nil"
	ErrNilDirectory   AnnouncerError = "badge directory cannot be nil"
	ErrNilLedger      AnnouncerError = "seen badge ledger cannot be nil"
	ErrNilPresenter   AnnouncerError = "presenter cannot be nil"
	ErrAlreadyRunning AnnouncerError = "announcer is already running"
	ErrStopped        AnnouncerError = "announcer has stopped"
)
