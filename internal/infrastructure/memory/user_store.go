package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/staffdeck/directory-service/internal/application/auth"
	"github.com/staffdeck/directory-service/internal/application/directory"
	"github.com/staffdeck/directory-service/internal/domain"
)

var (
	_ directory.Store     = (*UserStore)(nil)
	_ auth.IdentityReader = (*UserStore)(nil)
)

// UserStore is the in-memory reference implementation of the directory
// store contract. It owns the durable representation: a map from id to the
// raw attribute set (profile fields plus the password hash, which never
// leaves this package through the User projection). Every read re-validates
// the stored attributes before handing out an entity.
//
// The mutex makes individual operations safe under concurrent requests; it
// does not make the directory service's read-then-create uniqueness check
// atomic.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]map[string]any
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]map[string]any)}
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	attrs, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	u, err := domain.UserFromAttrs(attrs)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) GetManyByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		attrs, ok := s.users[id]
		if !ok {
			continue
		}
		u, err := domain.UserFromAttrs(attrs)
		if err != nil {
			// skip records with bad stored data
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *UserStore) FindByAttributes(ctx context.Context, attrs map[string]any) ([]domain.User, error) {
	if len(attrs) == 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []domain.User
	for _, stored := range s.users {
		if !matchesAttributes(stored, attrs) {
			continue
		}
		u, err := domain.UserFromAttrs(stored)
		if err != nil {
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *UserStore) FindAll(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.users))
	for _, stored := range s.users {
		u, err := domain.UserFromAttrs(stored)
		if err != nil {
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *UserStore) Create(ctx context.Context, rec domain.NewUserRecord) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	for {
		if _, taken := s.users[id]; !taken {
			break
		}
		id = uuid.NewString()
	}

	attrs := rec.Attrs()
	attrs[domain.AttrID] = id

	u, err := domain.UserFromAttrs(attrs)
	if err != nil {
		return domain.User{}, err
	}

	s.users[id] = attrs
	return u, nil
}

func (s *UserStore) Update(ctx context.Context, u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[u.ID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound(u.ID)
	}

	// Merge over the stored attributes; this keeps store-internal fields
	// (password_hash) that the public projection never carries.
	for k, v := range u.Attrs() {
		stored[k] = v
	}
	s.users[u.ID] = stored

	return u, nil
}

func (s *UserStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false, domain.ErrUserNotFound(id)
	}
	delete(s.users, id)
	return true, nil
}

func (s *UserStore) GetAuthIdentityByEmail(ctx context.Context, email string) (*domain.AuthIdentity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, stored := range s.users {
		if stored[domain.AttrEmail] != email {
			continue
		}
		a, err := domain.AuthIdentityFromAttrs(stored)
		if err != nil {
			return nil, err
		}
		return &a, nil
	}
	return nil, nil
}

// put installs a raw record, used by fixture loading.
func (s *UserStore) put(id string, attrs map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = attrs
}

func matchesAttributes(stored map[string]any, attrs map[string]any) bool {
	for k, want := range attrs {
		if stored[k] != want {
			return false
		}
	}
	return true
}
