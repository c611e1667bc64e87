package directory

import (
	"context"

	"github.com/staffdeck/directory-service/internal/domain"
)

// Service wraps a single Store and adds the cross-record invariants the
// store contract cannot enforce itself (email uniqueness).
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) GetManyByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	return s.store.GetManyByIDs(ctx, ids)
}

func (s *Service) FindByAttributes(ctx context.Context, attrs map[string]any) ([]domain.User, error) {
	return s.store.FindByAttributes(ctx, attrs)
}

func (s *Service) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.store.FindAll(ctx)
}

// GetByEmail returns the user with the given email, or nil when no record
// matches. Email uniqueness is enforced by Create, so the first match is
// never ambiguous in practice.
func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := s.store.FindByAttributes(ctx, map[string]any{domain.AttrEmail: email})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// Create stores a new user after checking that no record already uses the
// email. The check and the create are two separate store operations with no
// transactional guarantee: two concurrent creates with the same email can
// both pass the check. Known limitation, accepted for the in-memory
// reference store.
func (s *Service) Create(ctx context.Context, rec domain.NewUserRecord) (domain.User, error) {
	existing, err := s.GetByEmail(ctx, rec.Email)
	if err != nil {
		return domain.User{}, err
	}
	if existing != nil {
		return domain.User{}, domain.ErrEmailAlreadyExists(rec.Email)
	}

	return s.store.Create(ctx, rec)
}

func (s *Service) Update(ctx context.Context, u domain.User) (domain.User, error) {
	return s.store.Update(ctx, u)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, id)
}
