package repositories

import (
	"context"
	"log"

	"uniwise/internal/models"
	"uniwise/internal/repositories/cache"

	"gorm.io/gorm"
)

// UserRepository is the persistence surface for users.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	GetAll() ([]models.User, error)
	GetPendingVerifications() ([]models.User, error)
	Count() (int64, error)
	Recent(limit int) ([]models.User, error)
}

type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

func NewUserRepository(db *gorm.DB, cacheService *cache.CacheService) UserRepository {
	return &userRepository{db: db, cache: cacheService}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	ctx := context.Background()

	if r.cache != nil {
		key := r.cache.GenerateKey("user", "id", id)
		if cached, err := r.cache.GetUser(ctx, key); err == nil {
			return cached, nil
		}
	}

	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.CacheUser(ctx, &user); err != nil {
			log.Printf("failed to cache user %d: %v", user.ID, err)
		}
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	ctx := context.Background()

	if r.cache != nil {
		key := r.cache.GenerateKey("user", "email", email)
		if cached, err := r.cache.GetUser(ctx, key); err == nil {
			return cached, nil
		}
	}

	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.CacheUser(ctx, &user); err != nil {
			log.Printf("failed to cache user %s: %v", email, err)
		}
	}

	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return err
	}
	if r.cache != nil {
		if err := r.cache.InvalidateUser(context.Background(), user); err != nil {
			log.Printf("failed to invalidate user %d: %v", user.ID, err)
		}
	}
	return nil
}

func (r *userRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *userRepository) GetPendingVerifications() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("blockchain_verification_status = ?", models.VerificationPending).
		Order("updated_at desc").Find(&users).Error
	return users, err
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) Recent(limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Select("id", "name", "email", "created_at").
		Order("created_at desc").Limit(limit).Find(&users).Error
	return users, err
}
