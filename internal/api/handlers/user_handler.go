package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/avaldivia/childbot-be/internal/auth"
	"github.com/avaldivia/childbot-be/internal/models"
	"github.com/avaldivia/childbot-be/internal/services"
	"github.com/avaldivia/childbot-be/internal/store"
)

// UserHandler handles the palette profile endpoints.
type UserHandler struct {
	users services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users services.UserServiceProvider) *UserHandler {
	return &UserHandler{users: users}
}

// GetMe returns the authenticated user's profile.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing auth token")
		return
	}

	user, err := h.users.GetProfile(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Str("username", username).Msg("Failed to load profile")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdatePalette replaces the authenticated user's four palette colors.
func (h *UserHandler) UpdatePalette(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.CurrentUser(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing auth token")
		return
	}

	var palette models.ColorPalette
	if err := json.NewDecoder(r.Body).Decode(&palette); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.users.UpdatePalette(r.Context(), username, palette); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Str("username", username).Msg("Failed to update palette")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Palette updated successfully"})
}
