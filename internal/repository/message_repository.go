package repository

import (
	"context"

	"gorm.io/gorm"

	"bnbhub/internal/model"
)

// MessageRepository defines message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	// ListNewestFirst returns all messages ordered by creation time, descending.
	ListNewestFirst(ctx context.Context) ([]model.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a GORM-backed repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) ListNewestFirst(ctx context.Context) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
