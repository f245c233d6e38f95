package chat

import (
	"context"

	"growth-tracker/internal/http/api"
	"growth-tracker/internal/models"
	"growth-tracker/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ChatProvider
type ChatProvider interface {
	CreateSession(ctx context.Context, s *models.ChatSession) (string, error)
	GetSessionById(ctx context.Context, sessionID string) (*models.ChatSession, error)
	CreateMessage(ctx context.Context, m *models.ChatMessage) (string, error)
	GetMessagesBySession(ctx context.Context, sessionID string) ([]*models.ChatMessage, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserGetter
type UserGetter interface {
	GetById(ctx context.Context, userID string) (*models.User, error)
}

type ChatService struct {
	trm   service.TransactionManager
	chats ChatProvider
	users UserGetter
}

func NewChatService(trm service.TransactionManager, chats ChatProvider, users UserGetter) *ChatService {
	return &ChatService{
		trm:   trm,
		chats: chats,
		users: users,
	}
}

func (s *ChatService) CreateSession(ctx context.Context, userID, topic string) (*api.ChatSessionSchema, error) {
	resp := &api.ChatSessionSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetById(ctx, userID); err != nil {
			return err
		}

		session := &models.ChatSession{
			ID:     uuid.NewString(),
			UserID: userID,
			Topic:  topic,
		}

		sessionID, err := s.chats.CreateSession(ctx, session)
		if err != nil {
			return err
		}

		resp.SessionID = sessionID
		resp.UserID = userID
		resp.Topic = topic

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *ChatService) CreateMessage(ctx context.Context, sessionID, sender, content string) (*api.ChatMessageSchema, error) {
	resp := &api.ChatMessageSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.chats.GetSessionById(ctx, sessionID); err != nil {
			return err
		}

		message := &models.ChatMessage{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Sender:    sender,
			Content:   content,
		}

		messageID, err := s.chats.CreateMessage(ctx, message)
		if err != nil {
			return err
		}

		resp.MessageID = messageID
		resp.SessionID = sessionID
		resp.Sender = sender
		resp.Content = content

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *ChatService) ListMessages(ctx context.Context, sessionID string) (*api.ChatMessagesResponse, error) {
	resp := &api.ChatMessagesResponse{
		SessionID: sessionID,
		Messages:  []api.ChatMessageSchema{},
	}

	if _, err := s.chats.GetSessionById(ctx, sessionID); err != nil {
		return nil, err
	}

	messages, err := s.chats.GetMessagesBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for _, m := range messages {
		resp.Messages = append(resp.Messages, api.ChatMessageSchema{
			MessageID: m.ID,
			SessionID: m.SessionID,
			Sender:    m.Sender,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}

	return resp, nil
}
