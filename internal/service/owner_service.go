package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bnbhub/internal/cache"
	"bnbhub/internal/errors"
	"bnbhub/internal/model"
	"bnbhub/internal/repository"
)

const bcryptCost = 10

const contactCacheTTL = 5 * time.Minute

// ContactInfo is the public subset of an owner's fields shown to guests.
type ContactInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty"`
}

// OwnerService handles owner registration and login. Login returns a plain
// account summary; no token or session is issued anywhere in the system.
type OwnerService interface {
	Register(ctx context.Context, name, email, password, phone, whatsapp string) error
	Authenticate(ctx context.Context, email, password string) (*model.OwnerSummary, error)
	GetContactInfo(ctx context.Context, id uuid.UUID) (*ContactInfo, error)
}

type ownerService struct {
	owners repository.OwnerRepository
	cache  *cache.Client
}

// NewOwnerService creates a new owner service.
func NewOwnerService(owners repository.OwnerRepository, cache *cache.Client) OwnerService {
	return &ownerService{owners: owners, cache: cache}
}

func (s *ownerService) contactCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("owner:contact:%s", id.String())
}

// Register creates a new owner with a hashed password. The raw password is
// never stored.
func (s *ownerService) Register(ctx context.Context, name, email, password, phone, whatsapp string) error {
	existing, err := s.owners.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return errors.ErrEmailRegistered
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check owner existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	owner := &model.Owner{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Phone:        phone,
		Whatsapp:     whatsapp,
	}

	if err := s.owners.Create(ctx, owner); err != nil {
		return fmt.Errorf("create owner: %w", err)
	}
	return nil
}

// Authenticate verifies the password against the stored hash and returns a
// non-secret summary of the owner.
func (s *ownerService) Authenticate(ctx context.Context, email, password string) (*model.OwnerSummary, error) {
	owner, err := s.owners.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	summary := owner.Summary()
	return &summary, nil
}

// GetContactInfo returns host contact fields for a given owner id, cached.
func (s *ownerService) GetContactInfo(ctx context.Context, id uuid.UUID) (*ContactInfo, error) {
	if data, _ := s.cache.Get(ctx, s.contactCacheKey(id)); data != nil {
		var cached ContactInfo
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	owner, err := s.owners.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}

	info := &ContactInfo{
		Name:     owner.Name,
		Phone:    owner.Phone,
		Whatsapp: owner.Whatsapp,
	}
	if payload, err := json.Marshal(info); err == nil {
		_ = s.cache.Set(ctx, s.contactCacheKey(id), payload, contactCacheTTL)
	}
	return info, nil
}
