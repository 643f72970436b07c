package repository

import (
	"github.com/shoptalk/shoptalk-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user account
func (r *GormUserRepository) Create(user *models.UserAccount) error {
	return r.db.Create(user).Error
}

// FindByID finds an active user account by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.UserAccount, error) {
	var user models.UserAccount
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds an active user account by email
func (r *GormUserRepository) FindByEmail(email string) (*models.UserAccount, error) {
	var user models.UserAccount
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user account
func (r *GormUserRepository) Update(user *models.UserAccount) error {
	return r.db.Save(user).Error
}

// FindByIDs finds the active accounts among the given user IDs
func (r *GormUserRepository) FindByIDs(ids []uint64) ([]models.UserAccount, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.UserAccount
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
