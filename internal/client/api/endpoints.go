package api

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/shortlink/internal/client/models"
)

// Register creates an account and returns the new identity.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.Identity, error) {
	env, err := do[models.Identity](ctx, c, http.MethodPost, "/api/v1/create-user",
		models.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, &Error{Kind: KindUnknown, Status: http.StatusOK, Message: "An unexpected error occurred", Code: "missing user in response"}
	}
	return env.Data, nil
}

// loginData is the login payload as the server sends it. The identity field
// is named userId here, unlike everywhere else; Login renames it.
type loginData struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Login authenticates and returns the identity in its canonical shape.
// The session cookie is captured by the client's jar as a side effect.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	env, err := do[loginData](ctx, c, http.MethodPost, "/api/v1/login",
		models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, &Error{Kind: KindUnknown, Status: http.StatusOK, Message: "An unexpected error occurred", Code: "missing user in response"}
	}
	return &models.Identity{ID: env.Data.UserID, Name: env.Data.Name, Email: env.Data.Email}, nil
}

// Logout ends the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	_, err := do[struct{}](ctx, c, http.MethodPost, "/api/v1/logout", nil)
	return err
}

// ListLinks returns the authenticated user's links. It doubles as the
// session probe during startup revalidation.
func (c *Client) ListLinks(ctx context.Context) ([]models.ShortLink, error) {
	env, err := do[[]models.ShortLink](ctx, c, http.MethodGet, "/api/v1/urls", nil)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, nil
	}
	return *env.Data, nil
}

// CreateLink shortens a URL. customShort and expiry are optional; both are
// validated locally before any network call so a bad form never leaves the
// client.
func (c *Client) CreateLink(ctx context.Context, long, customShort string, expiry *time.Time) (*models.ShortLink, error) {
	if long == "" {
		return nil, &Error{Kind: KindApplication, Message: "URL is required", Code: "validation"}
	}
	if err := ValidateCustomShort(customShort); err != nil {
		return nil, &Error{Kind: KindApplication, Message: err.Error(), Code: "validation"}
	}
	if expiry != nil && !expiry.After(time.Now()) {
		return nil, &Error{Kind: KindApplication, Message: "Expiry date must be in the future", Code: "validation"}
	}

	env, err := do[models.ShortLink](ctx, c, http.MethodPost, "/api/v1/shorten",
		models.ShortenRequest{Long: long, CustomShort: customShort, Expiry: expiry})
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, &Error{Kind: KindUnknown, Status: http.StatusOK, Message: "An unexpected error occurred", Code: "missing link in response"}
	}
	return env.Data, nil
}

// DeleteLink removes a link by id.
func (c *Client) DeleteLink(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, "/api/v1/delete", models.DeleteRequest{ID: id})
	return err
}
