package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/staffdeck/directory-service/internal/domain"
)

/*
========================
 Fakes
========================
*/

// fakeStore is a minimal Store backed by a slice, so tests control exactly
// which records exist without going through the real storage package.
type fakeStore struct {
	users []domain.User

	createCalls int
	failWith    error
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetManyByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	var out []domain.User
	for _, id := range ids {
		if u, _ := f.GetByID(ctx, id); u != nil {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByAttributes(ctx context.Context, attrs map[string]any) ([]domain.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if len(attrs) == 0 {
		return nil, nil
	}
	var out []domain.User
	for _, u := range f.users {
		if matches(u, attrs) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStore) FindAll(ctx context.Context) ([]domain.User, error) {
	return append([]domain.User(nil), f.users...), nil
}

func (f *fakeStore) Create(ctx context.Context, rec domain.NewUserRecord) (domain.User, error) {
	f.createCalls++
	u := domain.User{
		ID:             "generated-id",
		Email:          rec.Email,
		FirstName:      rec.FirstName,
		LastName:       rec.LastName,
		OrganizationID: rec.OrganizationID,
		IsAdmin:        rec.IsAdmin,
	}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeStore) Update(ctx context.Context, u domain.User) (domain.User, error) {
	for i := range f.users {
		if f.users[i].ID == u.ID {
			f.users[i] = u
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound(u.ID)
}

func (f *fakeStore) Delete(ctx context.Context, id string) (bool, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return true, nil
		}
	}
	return false, domain.ErrUserNotFound(id)
}

func (f *fakeStore) GetAuthIdentityByEmail(ctx context.Context, email string) (*domain.AuthIdentity, error) {
	return nil, nil
}

func matches(u domain.User, attrs map[string]any) bool {
	stored := u.Attrs()
	for k, want := range attrs {
		if stored[k] != want {
			return false
		}
	}
	return true
}

func userIn(org string, admin bool) domain.User {
	return domain.User{
		ID:             "u-" + org,
		Email:          org + "@example.com",
		FirstName:      "First",
		LastName:       "Last",
		OrganizationID: org,
		IsAdmin:        admin,
	}
}

/*
========================
 Tests
========================
*/

func TestGetByEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a := userIn("ORG1", false)
	svc := NewService(&fakeStore{users: []domain.User{a}})

	got, err := svc.GetByEmail(ctx, a.Email)
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if got == nil || got.ID != a.ID {
		t.Fatalf("expected %q, got %+v", a.ID, got)
	}

	got, err = svc.GetByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected absent, got %+v", got)
	}
}

func TestCreate_RejectsDuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	existing := userIn("ORG1", false)
	store := &fakeStore{users: []domain.User{existing}}
	svc := NewService(store)

	_, err := svc.Create(ctx, domain.NewUserRecord{
		Email:          existing.Email,
		FirstName:      "Dup",
		LastName:       "User",
		OrganizationID: "ORG2",
		PasswordHash:   "$2a$12$fakehash",
	})
	if err == nil {
		t.Fatalf("expected duplicate email error")
	}

	var de *domain.Error
	if !errors.As(err, &de) || de.Code != "email_already_exists" {
		t.Fatalf("expected email_already_exists, got %v", err)
	}
	if store.createCalls != 0 {
		t.Fatalf("store.Create must not run on duplicate, got %d calls", store.createCalls)
	}
}

func TestCreate_UniqueEmailPasses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := &fakeStore{users: []domain.User{userIn("ORG1", false)}}
	svc := NewService(store)

	created, err := svc.Create(ctx, domain.NewUserRecord{
		Email:          "fresh@example.com",
		FirstName:      "Fresh",
		LastName:       "User",
		OrganizationID: "ORG1",
		PasswordHash:   "$2a$12$fakehash",
	})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if created.ID == "" || created.Email != "fresh@example.com" {
		t.Fatalf("unexpected created user: %+v", created)
	}
	if store.createCalls != 1 {
		t.Fatalf("expected one store.Create call, got %d", store.createCalls)
	}
}

func TestCreate_StoreLookupFailurePropagates(t *testing.T) {
	t.Parallel()

	boom := domain.ErrInternal(errors.New("store down"))
	svc := NewService(&fakeStore{failWith: boom})

	_, err := svc.Create(context.Background(), domain.NewUserRecord{Email: "a@example.com"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected propagated store error, got %v", err)
	}
}
