package entity

import "time"

// Session is the resolved result of a successful sign-in chain: the account
// from the lookup step combined with the tokens from the sign-in step.
// A Session is created fresh per successful sign-in and owned solely by the
// caller afterwards; the client keeps no reference to it.
type Session struct {
	User         *User     // The first account entry from the lookup response.
	IDToken      string    // Short-lived access token for subsequent backend calls.
	RefreshToken string    // Long-lived token used to mint a new IDToken after expiry.
	ExpiresAt    time.Time // Approximate IDToken expiry, computed at decode time.
}

// Expired reports whether the session's access token has passed its
// approximate expiry.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
