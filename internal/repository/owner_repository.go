package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bnbhub/internal/model"
)

// OwnerRepository defines owner persistence operations.
type OwnerRepository interface {
	Create(ctx context.Context, owner *model.Owner) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Owner, error)
	FindByEmail(ctx context.Context, email string) (*model.Owner, error)
}

type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository builds a GORM-backed repository.
func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) Create(ctx context.Context, owner *model.Owner) error {
	return r.db.WithContext(ctx).Create(owner).Error
}

func (r *ownerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Owner, error) {
	var owner model.Owner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *ownerRepository) FindByEmail(ctx context.Context, email string) (*model.Owner, error) {
	var owner model.Owner
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}
