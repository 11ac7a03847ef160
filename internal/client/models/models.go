// Package models defines client-side data models for the shortlink CLI.
package models

import "time"

// Identity is the authenticated principal as the server reports it.
// It is owned by the session manager and mirrored into durable storage
// on every mutation.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ShortLink is a user-owned mapping from a short code to a destination URL.
type ShortLink struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Long      string    `json:"long"`
	Short     string    `json:"short"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"createdAt"`
	Expiry    time.Time `json:"expiry"`
}

// LinkState is the derived lifecycle state of a link. It is computed from
// Expiry against the current time and never stored.
type LinkState int

const (
	LinkActive LinkState = iota
	LinkExpiringSoon
	LinkExpired
)

func (s LinkState) String() string {
	switch s {
	case LinkActive:
		return "active"
	case LinkExpiringSoon:
		return "expiring soon"
	case LinkExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// expiringSoonWindow is how close to expiry a link is flagged as expiring soon.
const expiringSoonWindow = 7 * 24 * time.Hour

// State reports the lifecycle state of the link at the given instant.
func (l ShortLink) State(now time.Time) LinkState {
	if !l.Expiry.After(now) {
		return LinkExpired
	}
	if l.Expiry.Sub(now) <= expiringSoonWindow {
		return LinkExpiringSoon
	}
	return LinkActive
}

// Envelope is the uniform response shape returned by every JSON endpoint.
// Success=false marks a failure regardless of the HTTP status code.
// Success=true with a nil Data is valid for operations with no payload
// (logout, delete).
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RegisterRequest is the body of POST /api/v1/create-user.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/v1/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ShortenRequest is the body of POST /api/v1/shorten. Expiry is optional;
// when omitted the server applies its default of 30 days.
type ShortenRequest struct {
	Long        string     `json:"long"`
	CustomShort string     `json:"customShort,omitempty"`
	Expiry      *time.Time `json:"expiry,omitempty"`
}

// DeleteRequest is the body of DELETE /api/v1/delete.
type DeleteRequest struct {
	ID string `json:"id"`
}
