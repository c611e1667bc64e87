package dto

import "github.com/staffdeck/directory-service/internal/domain"

type UserView struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	OrganizationID string `json:"organization_id"`
	IsAdmin        bool   `json:"is_admin"`
}

type ProfileView struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	OrganizationID string `json:"organization_id"`
	IsAdmin        bool   `json:"is_admin"`
}

type TokenView struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

func UserViewFrom(u domain.User) UserView {
	return UserView{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		OrganizationID: u.OrganizationID,
		IsAdmin:        u.IsAdmin,
	}
}

func UserViewsFrom(users []domain.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, UserViewFrom(u))
	}
	return views
}

func ProfileViewFrom(p domain.UserProfile) ProfileView {
	return ProfileView{
		ID:             p.ID,
		Email:          p.Email,
		OrganizationID: p.OrganizationID,
		IsAdmin:        p.IsAdmin,
	}
}
