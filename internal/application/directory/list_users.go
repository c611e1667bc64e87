package directory

import (
	"context"

	"github.com/staffdeck/directory-service/internal/domain"
)

// ListUsers returns all users. Listing itself is not gated; per-record
// visibility is demonstrated on GetUserDetails.
func (s *Service) ListUsers(ctx context.Context, _ *domain.SessionIdentity) ([]domain.User, error) {
	return s.store.FindAll(ctx)
}
