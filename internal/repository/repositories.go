package repository

import (
	"time"

	"storefront-service/internal/domain"
)

// Not-found is reported as a nil pointer (or nil slice) with a nil error;
// services translate that into their own sentinel errors.

type ProductRepository interface {
	FindAll() ([]domain.Product, error)
	FindInStock() ([]domain.Product, error)
	FindByID(id uint64) (*domain.Product, error)
	Create(p *domain.Product) error
	Update(p *domain.Product) error
	Delete(id uint64) error
	Count() (int64, error)
}

type OrderRepository interface {
	// CreateWithItems inserts the order and its items in one transaction so
	// an orphaned order without lines cannot exist.
	CreateWithItems(order *domain.Order, items []domain.OrderItem) error
	FindByID(id uint64) (*domain.Order, error)
	FindByUserID(userID uint64) ([]domain.Order, error)
	FindAll() ([]domain.Order, error)
	UpdateStatus(id uint64, status domain.OrderStatus) error
	MarkPaymentVerified(id uint64, verifiedBy uint64, verifiedAt time.Time) error
	MarkRejected(id uint64, reason string) error
	AppendTracking(event *domain.TrackingEvent) error
	FindTracking(orderID uint64) ([]domain.TrackingEvent, error)
	FindDeliveredWithProduct(userID, productID uint64) ([]domain.Order, error)
	CountByStatus() (map[domain.OrderStatus]int64, error)
	SumTotalAmount(statuses []domain.OrderStatus) (int64, error)
}

type ReviewRepository interface {
	Create(r *domain.Review) error
	FindByProductID(productID uint64) ([]domain.Review, error)
	FindByUserAndProduct(userID, productID uint64) (*domain.Review, error)
}

type RoleRepository interface {
	IsAdmin(userID uint64) (bool, error)
}
