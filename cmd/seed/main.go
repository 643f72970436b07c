package main

import (
	"log"

	"github.com/shoptalk/shoptalk-api/internal/config"
	"github.com/shoptalk/shoptalk-api/internal/database"
	"github.com/shoptalk/shoptalk-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a development database with demo users, a channel covering all
// three roles, and a small catalog. Running it twice is a no-op.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var count int64
	if err := db.Model(&models.UserAccount{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to check existing data: %v", err)
	}
	if count > 0 {
		log.Println("database already seeded, nothing to do")
		return
	}

	if err := seed(db); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	log.Println("database seeded")
}

func seed(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	title := func(s string) *string { return &s }

	users := []models.UserAccount{
		{Name: "Alice Admin", Title: title("Support Lead"), Email: "alice@example.com", PasswordHash: string(hash)},
		{Name: "Bob Member", Title: title("Sales Associate"), Email: "bob@example.com", PasswordHash: string(hash)},
		{Name: "Carol Observer", Email: "carol@example.com", PasswordHash: string(hash)},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		description := "General discussion"
		channel := models.Channel{Name: "general", Description: &description}
		if err := tx.Create(&channel).Error; err != nil {
			return err
		}

		memberships := []models.ChannelMember{
			{ChannelID: channel.ID, UserID: users[0].ID, Role: models.RoleAdmin},
			{ChannelID: channel.ID, UserID: users[1].ID, Role: models.RoleMember},
			{ChannelID: channel.ID, UserID: users[2].ID, Role: models.RoleObserver},
		}
		if err := tx.Create(&memberships).Error; err != nil {
			return err
		}

		messages := []models.Message{
			{ChannelID: channel.ID, UserID: &users[0].ID, Content: "Welcome to the general channel."},
			{ChannelID: channel.ID, UserID: &users[1].ID, Content: "Thanks, glad to be here."},
		}
		if err := tx.Create(&messages).Error; err != nil {
			return err
		}

		categories := []models.Category{
			{Name: "Laptops"},
			{Name: "Phones"},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		brand := models.Brand{Name: "Acme"}
		if err := tx.Create(&brand).Error; err != nil {
			return err
		}

		desc := "14 inch ultrabook with 16GB RAM"
		products := []models.Product{
			{
				Name:         "Acme UltraBook 14",
				Description:  &desc,
				SKU:          "ACM-UB14-001",
				Price:        1299.00,
				Availability: "in_stock",
				CategoryID:   categories[0].ID,
				BrandID:      &brand.ID,
			},
			{
				Name:         "Acme Phone X",
				SKU:          "ACM-PHX-001",
				Price:        799.00,
				Availability: "in_stock",
				CategoryID:   categories[1].ID,
				BrandID:      &brand.ID,
			},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		images := []models.ProductImage{
			{ProductID: products[0].ID, ImageURL: "https://cdn.example.com/ub14-front.jpg", SortOrder: 1},
			{ProductID: products[1].ID, ImageURL: "https://cdn.example.com/phx-front.jpg", SortOrder: 1},
		}
		return tx.Create(&images).Error
	})
}
