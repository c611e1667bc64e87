package auth

import (
	"context"
	"time"

	"github.com/staffdeck/directory-service/internal/domain"
)

/*
IdentityReader
--------------
The slice of the directory store the auth service needs: just the
authentication projection, never the general user paths.
*/
type IdentityReader interface {
	GetAuthIdentityByEmail(ctx context.Context, email string) (*domain.AuthIdentity, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2. Compare returns nil on match,
domain.ErrInvalidCredentials on mismatch and a processing fault for
anything else (malformed hash, etc.).
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

/*
TokenSigner
-----------
Issues and verifies session tokens (JWT).
Used by the service and by the transport session middleware.
*/
type TokenSigner interface {
	SignSession(identity domain.AuthIdentity, ttl time.Duration) (string, error)
	VerifySession(token string) (domain.SessionIdentity, error)
}
