package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/avaldivia/childbot-be/internal/auth"
	"github.com/avaldivia/childbot-be/internal/models"
	"github.com/avaldivia/childbot-be/internal/services"
)

// AuthHandler handles login requests.
type AuthHandler struct {
	users  services.UserServiceProvider
	tokens *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// Login verifies a form-encoded username/password pair and returns a bearer
// token on success.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.users.AuthenticateUser(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("username", username).Msg("Failed authentication attempt")
			writeError(w, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		log.Error().Err(err).Str("username", username).Msg("Login lookup failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("Failed to sign token")
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
