package mysql

import (
	"errors"
	"log"
	"time"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) CreateWithItems(order *domain.Order, items []domain.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			log.Printf("order insert error: %v", err)
			return err
		}
		if order.ID == 0 {
			return errors.New("failed to assign order ID")
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			log.Printf("order items insert error: %v", err)
			return err
		}
		order.Items = items
		return nil
	})
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.Preload("Items").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUserID(userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Preload("Items").Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) UpdateStatus(id uint64, status domain.OrderStatus) error {
	return r.db.Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepo) MarkPaymentVerified(id uint64, verifiedBy uint64, verifiedAt time.Time) error {
	return r.db.Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":              domain.StatusPaymentVerified,
			"payment_verified_by": verifiedBy,
			"payment_verified_at": verifiedAt,
		}).Error
}

func (r *orderRepo) MarkRejected(id uint64, reason string) error {
	return r.db.Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           domain.StatusRejected,
			"rejection_reason": reason,
		}).Error
}

func (r *orderRepo) AppendTracking(event *domain.TrackingEvent) error {
	return r.db.Create(event).Error
}

func (r *orderRepo) FindTracking(orderID uint64) ([]domain.TrackingEvent, error) {
	var out []domain.TrackingEvent
	err := r.db.Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindDeliveredWithProduct(userID, productID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.user_id = ? AND orders.status = ? AND order_items.product_id = ?",
			userID, domain.StatusDelivered, productID).
		Order("orders.created_at ASC").
		Distinct("orders.*").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) CountByStatus() (map[domain.OrderStatus]int64, error) {
	var rows []struct {
		Status domain.OrderStatus
		Total  int64
	}
	err := r.db.Model(&domain.Order{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[domain.OrderStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Total
	}
	return out, nil
}

func (r *orderRepo) SumTotalAmount(statuses []domain.OrderStatus) (int64, error) {
	var total int64
	err := r.db.Model(&domain.Order{}).
		Where("status IN ?", statuses).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
