package api

import (
	"context"

	"github.com/wealthnest/client-go/models"
)

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	var token models.Token
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&token).
		Post("/auth/login")
	if err := check(resp, err); err != nil {
		return models.Token{}, err
	}
	return token, nil
}

// Register creates the account but issues no tokens; the user logs in
// afterwards.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var user models.User
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&user).
		Post("/auth/register")
	if err := check(resp, err); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Me validates the stored access token and returns the user it belongs to.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/auth/me")
	if err := check(resp, err); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Refresh exchanges a refresh token for a new pair. The session manager does
// not call this itself; expiry there is a forced logout.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (models.Token, error) {
	var token models.Token
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(refreshToken).
		SetResult(&token).
		Post("/auth/refresh")
	if err := check(resp, err); err != nil {
		return models.Token{}, err
	}
	return token, nil
}

func (c *Client) AcceptInvitation(ctx context.Context, req models.AcceptInvitationRequest) (models.Token, error) {
	var token models.Token
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&token).
		Post("/auth/accept-invitation")
	if err := check(resp, err); err != nil {
		return models.Token{}, err
	}
	return token, nil
}
