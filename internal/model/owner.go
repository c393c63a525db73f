package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owner represents a registered property owner.
type Owner struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Phone        string    `json:"phone,omitempty" gorm:"size:32"`
	Whatsapp     string    `json:"whatsapp,omitempty" gorm:"size:32"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Owner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OwnerSummary is the non-secret view returned after login.
type OwnerSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	Whatsapp string    `json:"whatsapp,omitempty"`
}

// Summary strips credential material from an Owner.
func (o *Owner) Summary() OwnerSummary {
	return OwnerSummary{
		ID:       o.ID,
		Name:     o.Name,
		Email:    o.Email,
		Phone:    o.Phone,
		Whatsapp: o.Whatsapp,
	}
}
