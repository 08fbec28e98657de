package domain

import "time"

type OrderStatus string

const (
	StatusPendingPayment  OrderStatus = "pending_payment"
	StatusPaymentUploaded OrderStatus = "payment_uploaded"
	StatusPaymentVerified OrderStatus = "payment_verified"
	StatusApproved        OrderStatus = "approved"
	StatusRejected        OrderStatus = "rejected"
	StatusProcessing      OrderStatus = "processing"
	StatusShipped         OrderStatus = "shipped"
	StatusDelivered       OrderStatus = "delivered"
	StatusCancelled       OrderStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusRejected || s == StatusDelivered || s == StatusCancelled
}

type Order struct {
	ID                uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID            uint64      `json:"userId" gorm:"not null;index"`
	ShippingAddress   string      `json:"shippingAddress" gorm:"not null"`
	ShippingCity      string      `json:"shippingCity" gorm:"not null"`
	ShippingZip       string      `json:"shippingZip" gorm:"not null"`
	ShippingPhone     string      `json:"shippingPhone" gorm:"not null"`
	TotalAmount       int64       `json:"totalAmount" gorm:"not null"`
	Status            OrderStatus `json:"status" gorm:"type:varchar(32);not null;default:'pending_payment';index"`
	ScreenshotPath    string      `json:"-" gorm:"column:payment_screenshot_path"`
	AdminNotes        string      `json:"adminNotes,omitempty"`
	RejectionReason   string      `json:"rejectionReason,omitempty"`
	PaymentVerifiedBy *uint64     `json:"paymentVerifiedBy,omitempty"`
	PaymentVerifiedAt *time.Time  `json:"paymentVerifiedAt,omitempty"`
	Items             []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt         time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt         time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

type OrderItem struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID      uint64    `json:"orderId" gorm:"not null;index"`
	ProductID    uint64    `json:"productId" gorm:"not null;index"`
	ProductName  string    `json:"productName" gorm:"not null"`
	ProductPrice int64     `json:"productPrice" gorm:"not null"`
	Quantity     int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// TrackingEvent is one entry of the append-only shipment log. Its Status is a
// free-form label shown to the customer and is distinct from Order.Status.
type TrackingEvent struct {
	ID             uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID        uint64    `json:"orderId" gorm:"not null;index"`
	Status         string    `json:"status" gorm:"not null"`
	Description    string    `json:"description,omitempty"`
	Location       string    `json:"location,omitempty"`
	Carrier        string    `json:"carrier,omitempty"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	UpdatedBy      uint64    `json:"updatedBy"`
	CreatedAt      time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (TrackingEvent) TableName() string { return "order_tracking" }

// Tracking labels that advance the order status. Matching is case-sensitive
// and exact; every other label is an informational log entry only.
const (
	TrackingLabelProcessing = "Processing"
	TrackingLabelShipped    = "Shipped"
	TrackingLabelDelivered  = "Delivered"
)

// The transition helpers below only decide whether a transition is legal.
// Callers persist the new status first and mutate their copy after the write
// succeeded, so a failed write never leaves a phantom status in memory.

// CanVerifyPayment allows marking the payment as verified.
func CanVerifyPayment(from OrderStatus) error {
	if from != StatusPaymentUploaded {
		return ErrInvalidTransition
	}
	return nil
}

// CanReject allows rejecting an order that has not been approved yet.
func CanReject(from OrderStatus) error {
	if from != StatusPaymentUploaded && from != StatusPaymentVerified {
		return ErrInvalidTransition
	}
	return nil
}

// CanApprove allows approving an order whose payment has been verified.
func CanApprove(from OrderStatus) error {
	if from != StatusPaymentVerified {
		return ErrInvalidTransition
	}
	return nil
}

// CanCancel allows cancelling any order that is not already terminal.
func CanCancel(from OrderStatus) error {
	if from.Terminal() {
		return ErrInvalidTransition
	}
	return nil
}

// StatusForTrackingLabel maps a tracking label to the order status it drives.
// It returns false when the label is informational or when the order is not in
// a fulfilment state (approved, processing or shipped); the tracking event is
// still recorded in that case, the status just stays put.
func StatusForTrackingLabel(from OrderStatus, label string) (OrderStatus, bool) {
	switch from {
	case StatusApproved, StatusProcessing, StatusShipped:
	default:
		return from, false
	}
	switch label {
	case TrackingLabelProcessing:
		return StatusProcessing, true
	case TrackingLabelShipped:
		return StatusShipped, true
	case TrackingLabelDelivered:
		return StatusDelivered, true
	}
	return from, false
}

// TrackingVisible reports whether the customer-facing tracking page is
// available for an order in the given status.
func TrackingVisible(s OrderStatus) bool {
	switch s {
	case StatusApproved, StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}
