package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bnbhub/internal/model"
)

// ListingRepository defines listing persistence operations. Reads preload the
// owning Owner so callers can resolve owner identity without a second query.
type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	Save(ctx context.Context, listing *model.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Listing, error)
	List(ctx context.Context) ([]model.Listing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository builds a GORM-backed repository.
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) Save(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

func (r *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	var listing model.Listing
	if err := r.db.WithContext(ctx).Preload("Owner").
		Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Listing, error) {
	var listings []model.Listing
	if err := r.db.WithContext(ctx).Preload("Owner").
		Where("owner_id = ?", ownerID).Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) List(ctx context.Context) ([]model.Listing, error) {
	var listings []model.Listing
	if err := r.db.WithContext(ctx).Preload("Owner").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Listing{}).Error
}
