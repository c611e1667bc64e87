package auth

import (
	"context"
	"strings"
	"time"

	"github.com/staffdeck/directory-service/internal/domain"
)

// Service verifies credentials and mints signed session tokens. Tokens are
// stateless: nothing is tracked server-side, expiry is enforced at
// verification time.
type Service struct {
	identities IdentityReader
	hasher     PasswordHasher
	signer     TokenSigner

	tokenTTL time.Duration
}

func NewService(identities IdentityReader, hasher PasswordHasher, signer TokenSigner, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &Service{
		identities: identities,
		hasher:     hasher,
		signer:     signer,
		tokenTTL:   tokenTTL,
	}
}

// TokenData is the login output: the opaque signed token plus the claims it
// encodes.
type TokenData struct {
	Token     string
	Session   domain.SessionIdentity
	ExpiresIn int64 // seconds
}

// Authenticate verifies the submitted credentials and issues a session
// token.
// IMPORTANT: must not leak whether the email exists (avoid user
// enumeration) — unknown email and wrong password fail identically.
// Hashing and signing faults are NOT folded into that error: they surface
// as internal processing errors with their own message.
func (s *Service) Authenticate(ctx context.Context, creds domain.Credentials) (TokenData, error) {
	email := strings.TrimSpace(creds.Email)
	if email == "" || creds.Password == "" {
		return TokenData{}, domain.ErrInvalidCredentials()
	}

	identity, err := s.identities.GetAuthIdentityByEmail(ctx, email)
	if err != nil {
		return TokenData{}, err
	}
	if identity == nil {
		// Hide not-found behind invalid credentials.
		return TokenData{}, domain.ErrInvalidCredentials()
	}

	if err := s.hasher.Compare(identity.PasswordHash, creds.Password); err != nil {
		return TokenData{}, err
	}

	token, err := s.signer.SignSession(*identity, s.tokenTTL)
	if err != nil {
		return TokenData{}, err
	}

	return TokenData{
		Token: token,
		Session: domain.SessionIdentity{
			ID:             identity.ID,
			Email:          identity.Email,
			OrganizationID: identity.OrganizationID,
			IsAdmin:        identity.IsAdmin,
		},
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

// SessionFromToken decodes and verifies a raw token into a SessionIdentity.
// Any failure (bad signature, expired, malformed, empty) yields nil: the
// caller is simply unauthenticated. The core never trusts an unverified
// token.
func (s *Service) SessionFromToken(token string) *domain.SessionIdentity {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	session, err := s.signer.VerifySession(token)
	if err != nil {
		return nil
	}
	return &session
}
