package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicebuddy/models"
	"servicebuddy/services/chat"
)

type fakeChatService struct {
	resp *models.ChatResponse
	err  error
	got  models.ChatRequest
}

func (f *fakeChatService) HandleMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	f.got = req
	return f.resp, f.err
}

func chatRouter(svc chat.ChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/chat", NewChatHandler(svc).HandleChat)
	return router
}

func TestHandleChatOK(t *testing.T) {
	cat := models.CategoryJobLoss
	fake := &fakeChatService{resp: &models.ChatResponse{
		Intent:   &cat,
		Response: "here are your options",
		Mode:     models.ModeBasic,
	}}
	router := chatRouter(fake)

	body := `{"message":"I lost my job","sessionId":"s1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "I lost my job", fake.got.Message)
	assert.Equal(t, "s1", fake.got.SessionID)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Intent)
	assert.Equal(t, models.CategoryJobLoss, *resp.Intent)
	assert.Equal(t, "here are your options", resp.Response)
}

func TestHandleChatEmptyMessage(t *testing.T) {
	fake := &fakeChatService{err: chat.ErrEmptyMessage}
	router := chatRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":""}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Message is required")
}

func TestHandleChatMalformedJSON(t *testing.T) {
	router := chatRouter(&fakeChatService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChatInternalError(t *testing.T) {
	fake := &fakeChatService{err: errors.New("redis: connection refused")}
	router := chatRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal detail must not leak to the client.
	assert.NotContains(t, w.Body.String(), "redis")
}
