package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/staffdeck/directory-service/internal/domain"
)

type JWTSigner struct {
	secret []byte
	issuer string
}

func NewJWTSigner(secret string, issuer string) *JWTSigner {
	return &JWTSigner{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// sessionUserClaims is the nested "user" claim object.
type sessionUserClaims struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	OrganizationID string `json:"organization_id"`
	IsAdmin        bool   `json:"is_admin"`
}

type sessionClaims struct {
	User sessionUserClaims `json:"user"`
	jwt.RegisteredClaims
}

// SignSession mints an HS256 token whose claims carry the subject (user id)
// and the minimal user object the session middleware needs.
func (s *JWTSigner) SignSession(identity domain.AuthIdentity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		User: sessionUserClaims{
			ID:             identity.ID,
			Email:          identity.Email,
			OrganizationID: identity.OrganizationID,
			IsAdmin:        identity.IsAdmin,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return signed, nil
}

// VerifySession checks the signature and expiry and returns the decoded
// caller identity.
func (s *JWTSigner) VerifySession(token string) (domain.SessionIdentity, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		// prevent alg confusion
		if t.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrTokenInvalid()
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.SessionIdentity{}, domain.ErrTokenExpired()
		}
		return domain.SessionIdentity{}, domain.ErrTokenInvalid()
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return domain.SessionIdentity{}, domain.ErrTokenInvalid()
	}
	if claims.User.ID == "" {
		return domain.SessionIdentity{}, domain.ErrTokenInvalid()
	}

	return domain.SessionIdentity{
		ID:             claims.User.ID,
		Email:          claims.User.Email,
		OrganizationID: claims.User.OrganizationID,
		IsAdmin:        claims.User.IsAdmin,
	}, nil
}
