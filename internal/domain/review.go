package domain

import "time"

// Review is bound to the delivered order that made the author eligible.
// At most one review exists per (user, product) pair.
type Review struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64    `json:"orderId" gorm:"not null;index"`
	ProductID uint64    `json:"productId" gorm:"not null;index:idx_reviews_user_product,unique"`
	UserID    uint64    `json:"userId" gorm:"not null;index:idx_reviews_user_product,unique"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
