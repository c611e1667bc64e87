package directory

import (
	"github.com/staffdeck/directory-service/internal/domain"
)

// GetUserProfile returns the calling user's own profile, or nil when the
// caller is unauthenticated. The profile is a pure projection of the
// session claims; no store lookup is needed.
func (s *Service) GetUserProfile(session *domain.SessionIdentity) *domain.UserProfile {
	if session == nil {
		return nil
	}
	p := session.Profile()
	return &p
}
