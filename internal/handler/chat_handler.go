package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skema/internal/domain"
	"skema/internal/service"
)

// ChatHandler handles chat and session endpoints.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Send handles POST /api/v1/chat
// @Summary Send a chat message
// @Description Send one turn within a session; history is replayed to the backend and trimmed to the configured cap
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Chat turn"
// @Success 200 {object} Response{data=ChatResponse} "Assistant reply"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 500 {object} ErrorResponseBody "Backend failure"
// @Router /chat [post]
func (h *ChatHandler) Send(c *gin.Context) {
	var input service.ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	reply, err := h.chatService.Send(c.Request.Context(), input.SessionID, input.Message)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ChatResponse{SessionID: input.SessionID, Reply: reply})
}

// History handles GET /api/v1/sessions/:id
// @Summary Get session history
// @Description Return the bounded turn history for a session; empty for unknown ids
// @Tags chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} Response{data=SessionHistoryResponse} "Session turns in order"
// @Router /sessions/{id} [get]
func (h *ChatHandler) History(c *gin.Context) {
	sessionID := c.Param("id")
	turns, err := h.chatService.History(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	if turns == nil {
		turns = []domain.Turn{}
	}

	RespondOK(c, SessionHistoryResponse{SessionID: sessionID, Turns: turns})
}

// Reset handles DELETE /api/v1/sessions/:id
// @Summary Clear a session
// @Description Remove all turns for a session; idempotent on unknown ids
// @Tags chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} Response{data=MessageResponse} "Session cleared"
// @Router /sessions/{id} [delete]
func (h *ChatHandler) Reset(c *gin.Context) {
	if err := h.chatService.Reset(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "session cleared"})
}
