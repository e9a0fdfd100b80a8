package models

// Account describes the signed-in user as reported by the session endpoint
type Account struct {
	// Authenticated is false for anonymous sessions
	Authenticated bool `json:"authenticated" yaml:"authenticated"`

	// Attributes are only present when Authenticated is true
	Attributes *AccountAttributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// AccountAttributes holds the social-login profile of the user
type AccountAttributes struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
}

// LoginProvider is a supported social-login provider
type LoginProvider string

const (
	LoginProviderKakao  LoginProvider = "kakao"
	LoginProviderNaver  LoginProvider = "naver"
	LoginProviderGoogle LoginProvider = "google"
)

// IsValid reports whether the provider is one the server accepts
func (p LoginProvider) IsValid() bool {
	switch p {
	case LoginProviderKakao, LoginProviderNaver, LoginProviderGoogle:
		return true
	}
	return false
}
