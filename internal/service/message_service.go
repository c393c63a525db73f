package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"bnbhub/internal/errors"
	"bnbhub/internal/model"
	"bnbhub/internal/repository"
)

// MessageService is an append-only contact inbox.
type MessageService interface {
	Submit(ctx context.Context, name, phone, body, receiver string, senderID *uuid.UUID) (*model.Message, error)
	List(ctx context.Context) ([]model.Message, error)
}

type messageService struct {
	messages repository.MessageRepository
}

// NewMessageService creates a new message service.
func NewMessageService(messages repository.MessageRepository) MessageService {
	return &messageService{messages: messages}
}

// Submit persists an inbound message with a server-assigned timestamp.
func (s *messageService) Submit(ctx context.Context, name, phone, body, receiver string, senderID *uuid.UUID) (*model.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, errors.ErrEmptyMessage
	}

	message := &model.Message{
		ID:       uuid.New(),
		SenderID: senderID,
		Receiver: receiver,
		Name:     name,
		Phone:    phone,
		Body:     body,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

// List returns all messages, newest first.
func (s *messageService) List(ctx context.Context) ([]model.Message, error) {
	return s.messages.ListNewestFirst(ctx)
}
