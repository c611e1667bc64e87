package directory

import (
	"context"

	"github.com/staffdeck/directory-service/internal/domain"
)

/*
Store
-----
Persistence port for directory records.
Only describes WHAT the directory needs, not HOW it's stored.

Read paths never fail on a missing record: GetByID and
GetAuthIdentityByEmail return a nil pointer, GetManyByIDs and
FindByAttributes simply omit non-matches. Write paths on a missing id are
caller logic errors and return a fault.
*/
type Store interface {
	// GetByID returns the user with the given id, or nil if no record
	// matches.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetManyByIDs returns the users found among ids. Unknown ids and
	// records whose stored data fails validation are silently omitted;
	// result order is not guaranteed to match the input.
	GetManyByIDs(ctx context.Context, ids []string) ([]domain.User, error)

	// FindByAttributes returns users whose stored attributes equal every
	// listed value. Callers must supply at least one attribute; an empty
	// map matches nothing.
	FindByAttributes(ctx context.Context, attrs map[string]any) ([]domain.User, error)

	// FindAll returns every valid record in the store.
	FindAll(ctx context.Context) ([]domain.User, error)

	// Create assigns a fresh id, stores the record and returns the public
	// projection.
	Create(ctx context.Context, rec domain.NewUserRecord) (domain.User, error)

	// Update merges the given fields over the stored record. Faults if the
	// id does not exist.
	Update(ctx context.Context, u domain.User) (domain.User, error)

	// Delete removes a record. Returns true on success and faults if the
	// id does not exist; false is never returned.
	Delete(ctx context.Context, id string) (bool, error)

	// GetAuthIdentityByEmail returns the authentication projection for the
	// given email, or nil if no record matches.
	GetAuthIdentityByEmail(ctx context.Context, email string) (*domain.AuthIdentity, error)
}
