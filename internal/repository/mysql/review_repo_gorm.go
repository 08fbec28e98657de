package mysql

import (
	"errors"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"

	"gorm.io/gorm"
)

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(review *domain.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepo) FindByProductID(productID uint64) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reviewRepo) FindByUserAndProduct(userID, productID uint64) (*domain.Review, error) {
	var review domain.Review
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) IsAdmin(userID uint64) (bool, error) {
	var n int64
	err := r.db.Model(&domain.UserRole{}).
		Where("user_id = ? AND role = ?", userID, domain.RoleAdmin).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
