package mysql

import (
	"errors"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) FindAll() ([]domain.Product, error) {
	var out []domain.Product
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) FindInStock() ([]domain.Product, error) {
	var out []domain.Product
	if err := r.db.Where("in_stock = ?", true).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) FindByID(id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Create(p *domain.Product) error {
	return r.db.Create(p).Error
}

func (r *productRepo) Update(p *domain.Product) error {
	return r.db.Save(p).Error
}

func (r *productRepo) Delete(id uint64) error {
	return r.db.Delete(&domain.Product{}, id).Error
}

func (r *productRepo) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&domain.Product{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
