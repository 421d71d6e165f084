package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skema/internal/domain"
	"skema/internal/handler"
	"skema/mocks"
)

func newChatHandler() (*handler.ChatHandler, *mocks.MockChatService) {
	mockSvc := new(mocks.MockChatService)
	h := handler.NewChatHandler(mockSvc)
	return h, mockSvc
}

func TestChatHandler_Send_Success(t *testing.T) {
	h, mockSvc := newChatHandler()

	mockSvc.On("Send", mock.Anything, "build-7421", "why did the deploy fail?").
		Return("the migration step timed out", nil)

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/chat", map[string]any{
		"session_id": "build-7421",
		"message":    "why did the deploy fail?",
	})

	h.Send(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "build-7421", data["session_id"])
	assert.Equal(t, "the migration step timed out", data["reply"])
	mockSvc.AssertExpectations(t)
}

func TestChatHandler_Send_MissingMessage(t *testing.T) {
	h, mockSvc := newChatHandler()

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/chat", map[string]any{"session_id": "build-7421"})

	h.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestChatHandler_Send_BackendFailure(t *testing.T) {
	h, mockSvc := newChatHandler()

	mockSvc.On("Send", mock.Anything, "build-7421", "hello").
		Return("", errors.New("backend: connection refused"))

	w := httptest.NewRecorder()
	c := postJSON(t, w, "/api/v1/chat", map[string]any{
		"session_id": "build-7421",
		"message":    "hello",
	})

	h.Send(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
}

func TestChatHandler_History_Success(t *testing.T) {
	h, mockSvc := newChatHandler()

	turns := []domain.Turn{
		{Role: domain.RoleUser, Content: "hello"},
		{Role: domain.RoleAssistant, Content: "hi there"},
	}
	mockSvc.On("History", mock.Anything, "build-7421").Return(turns, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/build-7421", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "build-7421"}}

	h.History(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)

	got, ok := data["turns"].([]interface{})
	require.True(t, ok)
	assert.Len(t, got, 2)
	first, ok := got[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "user", first["role"])
	mockSvc.AssertExpectations(t)
}

func TestChatHandler_History_EmptyForUnknownSession(t *testing.T) {
	h, mockSvc := newChatHandler()

	mockSvc.On("History", mock.Anything, "never-seen").Return(nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/sessions/never-seen", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "never-seen"}}

	h.History(c)

	assert.Equal(t, http.StatusOK, w.Code)

	// An unknown session reports an empty list, not null.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	var data map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["data"], &data))
	assert.JSONEq(t, `[]`, string(data["turns"]))
}

func TestChatHandler_Reset_Success(t *testing.T) {
	h, mockSvc := newChatHandler()

	mockSvc.On("Reset", mock.Anything, "build-7421").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/sessions/build-7421", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "build-7421"}}

	h.Reset(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}
