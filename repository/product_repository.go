package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront-service/models"
)

// ErrProductNotFound is returned when no product matches the given UUID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines catalog lookups needed by the cart flows.
type ProductRepository interface {
	FindByUUID(ctx context.Context, uuid string) (*models.Product, error)
	FindActiveByCategory(ctx context.Context, category string) ([]models.Product, error)
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository.
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) FindByUUID(ctx context.Context, uuid string) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, "uuid = ?", uuid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) FindActiveByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND category = ?", true, category).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
