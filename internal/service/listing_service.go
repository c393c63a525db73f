package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bnbhub/internal/cache"
	"bnbhub/internal/errors"
	"bnbhub/internal/model"
	"bnbhub/internal/repository"
)

const listingCacheTTL = 5 * time.Minute

// ListingFields carries the attributes submitted with a create or update
// request. Every field is replaced wholesale on update; only the image
// sequence is retained when no new images are supplied.
type ListingFields struct {
	Name        string
	Location    string
	Price       decimal.Decimal
	Description string
	Rooms       int
	HouseType   string
}

// ListingService mediates all listing mutations. Write authorization is an
// exact, case-sensitive comparison of the submitted email against the
// listing owner's email; there is no session layer, the email is the whole
// credential.
type ListingService interface {
	Create(ctx context.Context, ownerEmail string, fields ListingFields, imageRefs []string) (*model.Listing, error)
	ListAll(ctx context.Context) ([]model.Listing, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]model.Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	Update(ctx context.Context, id uuid.UUID, submittedOwnerEmail string, fields ListingFields, newImageRefs []string) (*model.Listing, error)
	SetAvailability(ctx context.Context, id uuid.UUID, submittedOwnerEmail string, available bool) (*model.Listing, error)
	Delete(ctx context.Context, id uuid.UUID, submittedOwnerEmail string) error
}

type listingService struct {
	listings repository.ListingRepository
	owners   repository.OwnerRepository
	cache    *cache.Client
}

// NewListingService creates a new listing service.
func NewListingService(listings repository.ListingRepository, owners repository.OwnerRepository, cache *cache.Client) ListingService {
	return &listingService{
		listings: listings,
		owners:   owners,
		cache:    cache,
	}
}

func (s *listingService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("listing:%s", id.String())
}

func validateFields(fields ListingFields) error {
	if fields.Name == "" || fields.Location == "" || fields.Description == "" {
		return errors.ErrMissingFields
	}
	if !fields.Price.IsPositive() {
		return errors.ErrMissingFields
	}
	return nil
}

// Create resolves the owner by email and persists a new listing. The owner's
// whatsapp number is copied onto the listing at creation time as a snapshot.
func (s *listingService) Create(ctx context.Context, ownerEmail string, fields ListingFields, imageRefs []string) (*model.Listing, error) {
	if ownerEmail == "" {
		return nil, errors.ErrMissingFields
	}
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	owner, err := s.owners.FindByEmail(ctx, ownerEmail)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}

	listing := &model.Listing{
		ID:           uuid.New(),
		OwnerID:      owner.ID,
		Name:         fields.Name,
		Location:     fields.Location,
		Price:        fields.Price,
		Description:  fields.Description,
		Rooms:        fields.Rooms,
		HouseType:    fields.HouseType,
		Images:       model.ImageList(imageRefs),
		IsAvailable:  true,
		HostWhatsapp: owner.Whatsapp,
	}

	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	listing.Owner = owner
	return listing, nil
}

// ListAll returns every listing with owner identity resolved. No pagination.
func (s *listingService) ListAll(ctx context.Context) ([]model.Listing, error) {
	return s.listings.List(ctx)
}

// ListByOwner returns the listings belonging to the owner with the given email.
func (s *listingService) ListByOwner(ctx context.Context, ownerEmail string) ([]model.Listing, error) {
	owner, err := s.owners.FindByEmail(ctx, ownerEmail)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}
	return s.listings.FindByOwner(ctx, owner.ID)
}

// GetByID retrieves one listing with resolved owner, cached.
func (s *listingService) GetByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Listing
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}

	if payload, err := json.Marshal(listing); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, listingCacheTTL)
	}
	return listing, nil
}

// loadOwned loads a listing and enforces the ownership gate.
func (s *listingService) loadOwned(ctx context.Context, id uuid.UUID, submittedOwnerEmail string) (*model.Listing, error) {
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}
	if listing.Owner == nil || listing.Owner.Email != submittedOwnerEmail {
		return nil, errors.ErrNotListingOwner
	}
	return listing, nil
}

// Update replaces the listing's fields. A non-empty newImageRefs replaces the
// entire image sequence; otherwise the existing sequence is retained.
func (s *listingService) Update(ctx context.Context, id uuid.UUID, submittedOwnerEmail string, fields ListingFields, newImageRefs []string) (*model.Listing, error) {
	listing, err := s.loadOwned(ctx, id, submittedOwnerEmail)
	if err != nil {
		return nil, err
	}
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	listing.Name = fields.Name
	listing.Location = fields.Location
	listing.Price = fields.Price
	listing.Description = fields.Description
	listing.Rooms = fields.Rooms
	listing.HouseType = fields.HouseType
	if len(newImageRefs) > 0 {
		listing.Images = model.ImageList(newImageRefs)
	}

	if err := s.listings.Save(ctx, listing); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return listing, nil
}

// SetAvailability flips the availability flag under the same ownership gate.
func (s *listingService) SetAvailability(ctx context.Context, id uuid.UUID, submittedOwnerEmail string, available bool) (*model.Listing, error) {
	listing, err := s.loadOwned(ctx, id, submittedOwnerEmail)
	if err != nil {
		return nil, err
	}

	listing.IsAvailable = available
	if err := s.listings.Save(ctx, listing); err != nil {
		return nil, fmt.Errorf("update availability: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return listing, nil
}

// Delete removes the listing permanently.
func (s *listingService) Delete(ctx context.Context, id uuid.UUID, submittedOwnerEmail string) error {
	listing, err := s.loadOwned(ctx, id, submittedOwnerEmail)
	if err != nil {
		return err
	}

	if err := s.listings.Delete(ctx, listing.ID); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
