package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ImageList is an ordered sequence of image reference URLs stored as a JSON column.
type ImageList []string

// Value implements driver.Valuer.
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported image list column type %T", value)
	}
}

// Listing represents a rentable property owned by exactly one Owner.
type Listing struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID     uuid.UUID       `json:"owner_id" gorm:"type:char(36);not null;index"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Location    string          `json:"location" gorm:"size:255;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Rooms       int             `json:"rooms"`
	HouseType   string          `json:"house_type" gorm:"size:64"`
	Images      ImageList       `json:"images" gorm:"type:json"`
	IsAvailable bool            `json:"is_available" gorm:"default:true"`
	// Host contact snapshot taken from the owner at creation time. Later
	// changes to the owner's whatsapp do not propagate here.
	HostWhatsapp string    `json:"host_whatsapp,omitempty" gorm:"size:32"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Owner *Owner `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
