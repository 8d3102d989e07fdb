package auth

import "time"

// SessionTTL is how long issued sessions are reported to live.
const SessionTTL = 24 * time.Hour

// Service synthesizes customer sessions. No credential store backs it; any
// request that passes validation gets a session with the placeholder token.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Register issues a session echoing the submitted email and name. The
// expiry is derived from now so it lines up with the response timestamp.
func (s *Service) Register(email, name string, now time.Time) Session {
	return s.session(email, name, now)
}

// Login issues a session for the submitted email. Without a customer store
// there is no profile to load, so the display name is fixed.
func (s *Service) Login(email string, now time.Time) Session {
	return s.session(email, "Customer User", now)
}

func (s *Service) session(email, name string, now time.Time) Session {
	return Session{
		Customer: Customer{
			ID:    "1",
			Email: email,
			Name:  name,
		},
		Token:     PlaceholderToken,
		ExpiresAt: now.Add(SessionTTL).UTC().Format(time.RFC3339),
	}
}
