package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdeck/directory-service/internal/application/directory"
	"github.com/staffdeck/directory-service/internal/domain"
	"github.com/staffdeck/directory-service/internal/logger"
	"github.com/staffdeck/directory-service/internal/transport/http/dto"
	"github.com/staffdeck/directory-service/internal/transport/http/middleware"
	"github.com/staffdeck/directory-service/internal/transport/http/response"
)

type UsersHandler struct {
	svc    *directory.Service
	hasher PasswordHasher
}

// PasswordHasher is what Create needs to turn the submitted password into
// the stored hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

func NewUsersHandler(svc *directory.Service, hasher PasswordHasher) *UsersHandler {
	return &UsersHandler{svc: svc, hasher: hasher}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	users, err := h.svc.ListUsers(r.Context(), session)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.UserViewsFrom(users))
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	userID := chi.URLParam(r, "id")

	user, err := h.svc.GetUserDetails(r.Context(), session, userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	if user == nil {
		// Absent covers "does not exist" and "not visible to you" alike.
		response.WriteError(w, r, domain.ErrUserNotFound(userID))
		return
	}

	response.OK(w, dto.UserViewFrom(*user))
}

func (h *UsersHandler) Profile(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())

	profile := h.svc.GetUserProfile(session)
	if profile == nil {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	response.OK(w, dto.ProfileViewFrom(*profile))
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil || !session.IsAdmin {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	var req dto.CreateUserRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	user, err := h.svc.Create(r.Context(), domain.NewUserRecord{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		OrganizationID: req.OrganizationID,
		PasswordHash:   hash,
		IsAdmin:        req.IsAdmin,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", user.ID).
		Str("created_by", session.ID).
		Msg("user_created")

	response.Created(w, dto.UserViewFrom(user))
}
