package directory

import (
	"context"

	"github.com/staffdeck/directory-service/internal/domain"
)

// GetUserDetails returns the target user if the caller may see them, nil
// otherwise. Rules, first match wins:
//
//  1. unauthenticated caller       -> nil
//  2. target does not exist        -> nil
//  3. caller is admin              -> target
//  4. same organization as caller  -> target
//  5. otherwise                    -> nil
//
// The existence check runs before the organization comparison so a lookup
// of a nonexistent id reports absence instead of dereferencing nothing.
func (s *Service) GetUserDetails(ctx context.Context, session *domain.SessionIdentity, userID string) (*domain.User, error) {
	if session == nil {
		return nil, nil
	}

	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if session.IsAdmin {
		return user, nil
	}
	if user.OrganizationID == session.OrganizationID {
		return user, nil
	}

	return nil, nil
}
