package dto

import authdomain "wedding-planner-backend/internal/auth/domain"

type GoogleSignInRequest struct {
	// IDToken proves who the user is.
	IDToken string `json:"id_token" binding:"required"`
	// AccessToken is the OAuth token used to read the wedding mailbox.
	AccessToken string `json:"access_token" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	User         *authdomain.User `json:"user"`
}
