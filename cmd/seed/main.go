package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bnbhub/internal/config"
	"bnbhub/internal/db"
	"bnbhub/internal/model"
	"bnbhub/internal/repository"
)

const demoPassword = "password123"

type demoListing struct {
	Name        string
	Location    string
	Price       string
	Description string
	Rooms       int
	HouseType   string
	Images      []string
}

type demoOwner struct {
	Name     string
	Email    string
	Phone    string
	Whatsapp string
	Listings []demoListing
}

var demoOwners = []demoOwner{
	{
		Name:     "Sharon Karimi",
		Email:    "sharon@example.com",
		Phone:    "+254700000001",
		Whatsapp: "+254700000001",
		Listings: []demoListing{
			{
				Name:        "Lakeside Cabin",
				Location:    "Naivasha",
				Price:       "100.00",
				Description: "Quiet two-room cabin right on the lake.",
				Rooms:       2,
				HouseType:   "cabin",
				Images:      []string{"https://res.cloudinary.com/demo/image/upload/bnb-images/cabin.jpg"},
			},
			{
				Name:        "Garden Studio",
				Location:    "Karen, Nairobi",
				Price:       "65.00",
				Description: "Self-contained studio with a private garden entrance.",
				Rooms:       1,
				HouseType:   "studio",
			},
		},
	},
	{
		Name:     "David Otieno",
		Email:    "david@example.com",
		Phone:    "+254700000002",
		Whatsapp: "+254711000002",
		Listings: []demoListing{
			{
				Name:        "Beachfront Villa",
				Location:    "Diani",
				Price:       "250.00",
				Description: "Four-bedroom villa, thirty meters from the beach.",
				Rooms:       4,
				HouseType:   "villa",
				Images: []string{
					"https://res.cloudinary.com/demo/image/upload/bnb-images/villa-front.jpg",
					"https://res.cloudinary.com/demo/image/upload/bnb-images/villa-pool.jpg",
				},
			},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Owner{}, &model.Listing{}, &model.Message{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ownerRepo := repository.NewOwnerRepository(gormDB)
	listingRepo := repository.NewListingRepository(gormDB)
	ctx := context.Background()

	ownersCreated := 0
	listingsCreated := 0
	for _, demo := range demoOwners {
		owner, created, err := ensureOwner(ctx, ownerRepo, demo)
		if err != nil {
			log.Fatalf("Failed to seed owner %s: %v", demo.Email, err)
		}
		if created {
			ownersCreated++
		}

		existing, err := listingRepo.FindByOwner(ctx, owner.ID)
		if err != nil {
			log.Fatalf("Failed to check listings for %s: %v", demo.Email, err)
		}
		if len(existing) > 0 {
			log.Printf("Owner %s already has %d listings, skipping", demo.Email, len(existing))
			continue
		}

		listings := lo.Map(demo.Listings, func(dl demoListing, _ int) model.Listing {
			price, err := decimal.NewFromString(dl.Price)
			if err != nil {
				log.Fatalf("Invalid demo price %q: %v", dl.Price, err)
			}
			return model.Listing{
				OwnerID:      owner.ID,
				Name:         dl.Name,
				Location:     dl.Location,
				Price:        price,
				Description:  dl.Description,
				Rooms:        dl.Rooms,
				HouseType:    dl.HouseType,
				Images:       model.ImageList(dl.Images),
				IsAvailable:  true,
				HostWhatsapp: owner.Whatsapp,
			}
		})
		for i := range listings {
			if err := listingRepo.Create(ctx, &listings[i]); err != nil {
				log.Fatalf("Failed to create listing %s: %v", listings[i].Name, err)
			}
			listingsCreated++
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New owners created: %d", ownersCreated)
	log.Printf("  - New listings created: %d", listingsCreated)
	log.Printf("  - Demo password for all owners: %s", demoPassword)
}

// ensureOwner finds an owner by email or creates it with the demo password.
func ensureOwner(ctx context.Context, repo repository.OwnerRepository, demo demoOwner) (*model.Owner, bool, error) {
	existing, err := repo.FindByEmail(ctx, demo.Email)
	if err == nil {
		return existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		return nil, false, err
	}

	owner := &model.Owner{
		Name:         demo.Name,
		Email:        demo.Email,
		PasswordHash: string(hash),
		Phone:        demo.Phone,
		Whatsapp:     demo.Whatsapp,
	}
	if err := repo.Create(ctx, owner); err != nil {
		return nil, false, err
	}
	return owner, true, nil
}
