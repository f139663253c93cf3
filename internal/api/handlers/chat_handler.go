package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/avaldivia/childbot-be/internal/models"
	"github.com/avaldivia/childbot-be/internal/services"
)

// ChatHandler handles chat relay requests.
type ChatHandler struct {
	chat services.ChatServiceProvider
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chat services.ChatServiceProvider) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat forwards a question to the language model and returns its answer.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "Question must not be empty")
		return
	}

	answer, err := h.chat.Ask(r.Context(), req.Question, req.MaxTokens)
	if err != nil {
		log.Error().Err(err).Msg("Chat relay failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": answer})
}
