package response

import "ecotrack/internal/usecase/queries"

type AuthResponse struct {
	AccessToken string            `json:"access_token"`
	User        *queries.UserView `json:"user,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
