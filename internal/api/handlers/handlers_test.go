package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avaldivia/childbot-be/internal/auth"
	"github.com/avaldivia/childbot-be/internal/models"
	"github.com/avaldivia/childbot-be/internal/store"
)

type userServiceStub struct {
	user models.User
	err  error
}

func (s *userServiceStub) AuthenticateUser(context.Context, string, string) (models.User, error) {
	return s.user, s.err
}

func (s *userServiceStub) GetProfile(context.Context, string) (models.User, error) {
	return s.user, s.err
}

func (s *userServiceStub) UpdatePalette(context.Context, string, models.ColorPalette) error {
	return s.err
}

type chatServiceStub struct {
	asked  bool
	answer string
}

func (s *chatServiceStub) Ask(context.Context, string, int) (string, error) {
	s.asked = true
	return s.answer, nil
}

func authedRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	return req.WithContext(auth.WithCurrentUser(req.Context(), "student1"))
}

func TestChat_EmptyQuestion(t *testing.T) {
	t.Parallel()

	chat := &chatServiceStub{}
	h := NewChatHandler(chat)

	rec := httptest.NewRecorder()
	h.Chat(rec, authedRequest(http.MethodPost, "/chat", `{"question": "   "}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, chat.asked)
}

func TestChat_InvalidBody(t *testing.T) {
	t.Parallel()

	chat := &chatServiceStub{}
	h := NewChatHandler(chat)

	rec := httptest.NewRecorder()
	h.Chat(rec, authedRequest(http.MethodPost, "/chat", `{"question": `))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, chat.asked)
}

func TestUpdatePalette_InvalidBody(t *testing.T) {
	t.Parallel()

	h := NewUserHandler(&userServiceStub{})

	rec := httptest.NewRecorder()
	h.UpdatePalette(rec, authedRequest(http.MethodPut, "/user/palette", `not json`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMe_NotFound(t *testing.T) {
	t.Parallel()

	h := NewUserHandler(&userServiceStub{err: store.ErrNotFound})

	rec := httptest.NewRecorder()
	h.GetMe(rec, authedRequest(http.MethodGet, "/user", ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error": "User not found"}`, rec.Body.String())
}

func TestUpdatePalette_NotFound(t *testing.T) {
	t.Parallel()

	h := NewUserHandler(&userServiceStub{err: store.ErrNotFound})

	body := `{"primary_color":"#111","secondary_color":"#222","accent_color":"#333","background_color":"#444"}`
	rec := httptest.NewRecorder()
	h.UpdatePalette(rec, authedRequest(http.MethodPut, "/user/palette", body))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
