package services

import (
	"time"

	"storefront-service/internal/domain"
)

func CreateMockOrder(id, userID uint64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:              id,
		UserID:          userID,
		ShippingAddress: "14 Rose Street",
		ShippingCity:    "Jaipur",
		ShippingZip:     "302001",
		ShippingPhone:   "9876543210",
		TotalAmount:     159800,
		Status:          status,
		ScreenshotPath:  "7/1700000000000.png",
		CreatedAt:       time.Now(),
	}
}

func CreateMockProduct(id uint64, name string, price int64, category string) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: category,
		InStock:  true,
	}
}

const (
	TestUserID    = uint64(7)
	TestAdminID   = uint64(1)
	TestOrderID   = uint64(10)
	TestProductID = uint64(3)
)
