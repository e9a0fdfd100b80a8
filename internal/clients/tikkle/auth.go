package tikkle

import (
	"context"
	"fmt"
	"net/http"

	"github.com/KirkDiggler/tikkle/internal/models"
)

// Me returns the session's account; anonymous sessions are not an error
func (c *client) Me(ctx context.Context) (*models.Account, error) {
	var account models.Account
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// LoginURL builds the social-login redirect; the browser completes the flow
func (c *client) LoginURL(provider models.LoginProvider) (string, error) {
	if !provider.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
	return fmt.Sprintf("%s/oauth2/authorization/%s", c.baseURL.String(), provider), nil
}

// Logout ends the server session
func (c *client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
}
