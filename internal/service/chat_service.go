package service

import (
	"context"

	"skema/internal/domain"
	"skema/internal/port"
)

// ChatInput is the DTO for one chat turn within a session.
type ChatInput struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// ChatService defines the session-scoped chat contract. History is bounded:
// the store trims each session to its configured maximum on every append.
type ChatService interface {
	Send(ctx context.Context, sessionID, message string) (string, error)
	History(ctx context.Context, sessionID string) ([]domain.Turn, error)
	Reset(ctx context.Context, sessionID string) error
}

type chatService struct {
	backend port.LLMBackend
	store   port.SessionStore
}

// NewChatService creates a new ChatService implementation.
func NewChatService(backend port.LLMBackend, store port.SessionStore) ChatService {
	return &chatService{backend: backend, store: store}
}

// Send replays the session history to the backend with the new message
// appended, then records both sides of the exchange. Turns are committed only
// after the backend replies, so a failed call leaves the session unchanged.
func (s *chatService) Send(ctx context.Context, sessionID, message string) (string, error) {
	history, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}

	messages := make([]port.Message, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, port.Message{Role: string(turn.Role), Content: turn.Content})
	}
	messages = append(messages, port.Message{Role: string(domain.RoleUser), Content: message})

	result, err := s.backend.Invoke(ctx, messages, port.InvokeOptions{})
	if err != nil {
		return "", err
	}

	if err := s.store.Append(ctx, sessionID, domain.Turn{Role: domain.RoleUser, Content: message}); err != nil {
		return "", err
	}
	if err := s.store.Append(ctx, sessionID, domain.Turn{Role: domain.RoleAssistant, Content: result.Content}); err != nil {
		return "", err
	}
	return result.Content, nil
}

func (s *chatService) History(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	return s.store.Get(ctx, sessionID)
}

func (s *chatService) Reset(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}
