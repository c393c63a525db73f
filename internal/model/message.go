package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is an inbound contact-form submission. Messages are append-only:
// created once, never updated, never deleted.
type Message struct {
	ID       uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	SenderID *uuid.UUID `json:"sender_id,omitempty" gorm:"type:char(36)"`
	// Receiver is a free-form tag: "admin" or an owner identifier.
	Receiver  string    `json:"receiver" gorm:"size:255;not null"`
	Name      string    `json:"name,omitempty" gorm:"size:255"`
	Phone     string    `json:"phone,omitempty" gorm:"size:32"`
	Body      string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
