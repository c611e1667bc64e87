package http_handlers

import (
	"net/http"

	"github.com/staffdeck/directory-service/internal/application/auth"
	"github.com/staffdeck/directory-service/internal/domain"
	"github.com/staffdeck/directory-service/internal/logger"
	"github.com/staffdeck/directory-service/internal/transport/http/dto"
	"github.com/staffdeck/directory-service/internal/transport/http/response"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Authenticate(r.Context(), domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.Session.ID).
		Msg("user_logged_in")

	response.OK(w, dto.TokenView{
		Token:     res.Token,
		TokenType: "Bearer",
		ExpiresIn: res.ExpiresIn,
	})
}
