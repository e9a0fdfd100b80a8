package ranking

// RankingError is a custom error type for ranking errors
type RankingError string

// Error implements the error interface
func (e RankingError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      RankingError = "config cannot be nil"
	ErrNilClient      RankingError = "client cannot be nil"
	ErrEmptyOrigin    RankingError = "invite origin cannot be empty"
	ErrNilInput       RankingError = "input cannot be nil"
	ErrEmptyGroupName RankingError = "group name cannot be empty"
	ErrEmptyCode      RankingError = "invite code cannot be empty"
	ErrInvalidGroupID RankingError = "group id must be positive"
)
