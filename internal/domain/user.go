package domain

// User is the public projection of a directory record. Values are built by
// the attribute validators below and never mutated afterwards; a User that
// exists is guaranteed well-typed and complete.
type User struct {
	ID             string
	Email          string
	FirstName      string
	LastName       string
	OrganizationID string // empty means "no organization"
	IsAdmin        bool
}

// NewUserRecord carries creation input into the store. It is the only place
// the plaintext-adjacent password hash travels alongside profile fields and
// is never returned to callers.
type NewUserRecord struct {
	Email          string
	FirstName      string
	LastName       string
	OrganizationID string
	PasswordHash   string
	IsAdmin        bool
}

// AuthIdentity is the limited projection used solely for authentication, so
// the general User-returning paths never expose the password hash.
type AuthIdentity struct {
	ID             string
	Email          string
	PasswordHash   string
	OrganizationID string
	IsAdmin        bool
}

// SessionIdentity is the verified caller identity decoded from a session
// token. A nil *SessionIdentity means "unauthenticated caller".
type SessionIdentity struct {
	ID             string
	Email          string
	OrganizationID string
	IsAdmin        bool
}

// UserProfile is what a caller sees of their own identity.
type UserProfile struct {
	ID             string
	Email          string
	OrganizationID string
	IsAdmin        bool
}

// Credentials is login input. The password lives in memory only.
type Credentials struct {
	Email    string
	Password string
}

// Raw attribute keys as stored by the directory store.
const (
	AttrID             = "id"
	AttrEmail          = "email"
	AttrFirstName      = "first_name"
	AttrLastName       = "last_name"
	AttrOrganizationID = "organization_id"
	AttrPasswordHash   = "password_hash"
	AttrIsAdmin        = "is_admin"
)

// UserFromAttrs builds a User from a loosely-typed attribute map.
// Every field is required and type-checked; unknown extra attributes are
// silently dropped.
func UserFromAttrs(attrs map[string]any) (User, error) {
	var u User
	var err error

	if u.ID, err = stringAttr(attrs, AttrID); err != nil {
		return User{}, err
	}
	if u.Email, err = stringAttr(attrs, AttrEmail); err != nil {
		return User{}, err
	}
	if u.FirstName, err = stringAttr(attrs, AttrFirstName); err != nil {
		return User{}, err
	}
	if u.LastName, err = stringAttr(attrs, AttrLastName); err != nil {
		return User{}, err
	}
	if u.OrganizationID, err = stringAttr(attrs, AttrOrganizationID); err != nil {
		return User{}, err
	}
	if u.IsAdmin, err = boolAttr(attrs, AttrIsAdmin); err != nil {
		return User{}, err
	}
	return u, nil
}

// AuthIdentityFromAttrs builds the authentication projection from a raw
// attribute map. Same validation rules as UserFromAttrs.
func AuthIdentityFromAttrs(attrs map[string]any) (AuthIdentity, error) {
	var a AuthIdentity
	var err error

	if a.ID, err = stringAttr(attrs, AttrID); err != nil {
		return AuthIdentity{}, err
	}
	if a.Email, err = stringAttr(attrs, AttrEmail); err != nil {
		return AuthIdentity{}, err
	}
	if a.PasswordHash, err = stringAttr(attrs, AttrPasswordHash); err != nil {
		return AuthIdentity{}, err
	}
	if a.OrganizationID, err = stringAttr(attrs, AttrOrganizationID); err != nil {
		return AuthIdentity{}, err
	}
	if a.IsAdmin, err = boolAttr(attrs, AttrIsAdmin); err != nil {
		return AuthIdentity{}, err
	}
	return a, nil
}

// Attrs returns the raw attribute set for a User, used by the store when
// merging an update over an existing record.
func (u User) Attrs() map[string]any {
	return map[string]any{
		AttrID:             u.ID,
		AttrEmail:          u.Email,
		AttrFirstName:      u.FirstName,
		AttrLastName:       u.LastName,
		AttrOrganizationID: u.OrganizationID,
		AttrIsAdmin:        u.IsAdmin,
	}
}

// Attrs returns the raw attribute set for a creation record, minus the id
// that the store assigns.
func (r NewUserRecord) Attrs() map[string]any {
	return map[string]any{
		AttrEmail:          r.Email,
		AttrFirstName:      r.FirstName,
		AttrLastName:       r.LastName,
		AttrOrganizationID: r.OrganizationID,
		AttrPasswordHash:   r.PasswordHash,
		AttrIsAdmin:        r.IsAdmin,
	}
}

// Profile projects the token claims into the caller-facing profile view.
func (s SessionIdentity) Profile() UserProfile {
	return UserProfile{
		ID:             s.ID,
		Email:          s.Email,
		OrganizationID: s.OrganizationID,
		IsAdmin:        s.IsAdmin,
	}
}

func stringAttr(attrs map[string]any, key string) (string, error) {
	v, ok := attrs[key]
	if !ok {
		return "", ErrMissingField(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", ErrInvalidField(key, "expected string")
	}
	return s, nil
}

func boolAttr(attrs map[string]any, key string) (bool, error) {
	v, ok := attrs[key]
	if !ok {
		return false, ErrMissingField(key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, ErrInvalidField(key, "expected bool")
	}
	return b, nil
}
