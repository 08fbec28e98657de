package services

import (
	"context"
	"errors"
	"log"
	"time"

	"storefront-service/internal/domain"
	rabbit "storefront-service/internal/infra/rabbitmq"
	"storefront-service/internal/repository"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrTrackingUnavailable = errors.New("tracking is not available for this order")
)

// TrackingInput is the admin's shipment update form. Status is the free-form
// label; only "Processing", "Shipped" and "Delivered" also advance the order.
type TrackingInput struct {
	Status         string
	Description    string
	Location       string
	Carrier        string
	TrackingNumber string
}

// OrderService drives the order lifecycle. Every transition is guarded here,
// not in the UI: an action invoked from a status outside its row in the
// transition table fails with domain.ErrInvalidTransition and changes nothing.
type OrderService struct {
	repo      repository.OrderRepository
	publisher rabbit.PublisherInterface
}

func NewOrderService(repo repository.OrderRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{repo: repo, publisher: pub}
}

// VerifyPayment moves payment_uploaded to payment_verified and records the
// verifying admin and timestamp.
func (s *OrderService) VerifyPayment(ctx context.Context, orderID, adminID uint64) (*domain.Order, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanVerifyPayment(order.Status); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.repo.MarkPaymentVerified(order.ID, adminID, now); err != nil {
		return nil, err
	}

	from := order.Status
	order.Status = domain.StatusPaymentVerified
	order.PaymentVerifiedBy = &adminID
	order.PaymentVerifiedAt = &now

	go s.publishStatusChanged(context.Background(), order, from, adminID)
	return order, nil
}

// RejectOrder requires a non-blank reason and is only legal before approval.
func (s *OrderService) RejectOrder(ctx context.Context, orderID, adminID uint64, reason string) (*domain.Order, error) {
	if err := domain.ValidateRejectionReason(reason); err != nil {
		return nil, err
	}

	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanReject(order.Status); err != nil {
		return nil, err
	}

	if err := s.repo.MarkRejected(order.ID, reason); err != nil {
		return nil, err
	}

	from := order.Status
	order.Status = domain.StatusRejected
	order.RejectionReason = reason

	go s.publishStatusChanged(context.Background(), order, from, adminID)
	return order, nil
}

// ApproveOrder moves payment_verified to approved and seeds the tracking log
// with the initial "Order Approved" entry.
func (s *OrderService) ApproveOrder(ctx context.Context, orderID, adminID uint64) (*domain.Order, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanApprove(order.Status); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(order.ID, domain.StatusApproved); err != nil {
		return nil, err
	}

	event := &domain.TrackingEvent{
		OrderID:     order.ID,
		Status:      "Order Approved",
		Description: "Your order has been approved and will be processed soon.",
		UpdatedBy:   adminID,
	}
	if err := s.repo.AppendTracking(event); err != nil {
		log.Printf("Failed to append approval tracking event for order %d: %v", order.ID, err)
	}

	from := order.Status
	order.Status = domain.StatusApproved

	go s.publishStatusChanged(context.Background(), order, from, adminID)
	return order, nil
}

// AddTracking appends exactly one tracking event. When the label is one of
// the status-bearing three and the order is in a fulfilment state, the order
// status advances as well; otherwise the status stays where it is.
func (s *OrderService) AddTracking(ctx context.Context, orderID, adminID uint64, in TrackingInput) (*domain.Order, error) {
	if in.Status == "" {
		return nil, domain.NewValidationError("status", "tracking status is required")
	}

	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}

	event := &domain.TrackingEvent{
		OrderID:        order.ID,
		Status:         in.Status,
		Description:    in.Description,
		Location:       in.Location,
		Carrier:        in.Carrier,
		TrackingNumber: in.TrackingNumber,
		UpdatedBy:      adminID,
	}
	if err := s.repo.AppendTracking(event); err != nil {
		return nil, err
	}

	next, advances := domain.StatusForTrackingLabel(order.Status, in.Status)
	if advances && next != order.Status {
		if err := s.repo.UpdateStatus(order.ID, next); err != nil {
			return nil, err
		}
		from := order.Status
		order.Status = next
		go s.publishStatusChanged(context.Background(), order, from, adminID)
	}
	return order, nil
}

// CancelOrder is legal from any non-terminal status.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, actorID uint64) (*domain.Order, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanCancel(order.Status); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(order.ID, domain.StatusCancelled); err != nil {
		return nil, err
	}

	from := order.Status
	order.Status = domain.StatusCancelled

	go s.publishStatusChanged(context.Background(), order, from, actorID)
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return s.loadOrder(orderID)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll()
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID uint64) ([]domain.Order, error) {
	return s.repo.FindByUserID(userID)
}

// GetTracking returns the shipment log newest-first. The log only opens up
// once the order has been approved.
func (s *OrderService) GetTracking(ctx context.Context, orderID uint64) (*domain.Order, []domain.TrackingEvent, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, nil, err
	}
	if !domain.TrackingVisible(order.Status) {
		return nil, nil, ErrTrackingUnavailable
	}
	events, err := s.repo.FindTracking(order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, events, nil
}

func (s *OrderService) loadOrder(orderID uint64) (*domain.Order, error) {
	order, err := s.repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) publishStatusChanged(ctx context.Context, order *domain.Order, from domain.OrderStatus, actorID uint64) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderStatusChangedEvent{
		OrderID:   order.ID,
		UserID:    order.UserID,
		From:      from,
		To:        order.Status,
		ChangedBy: actorID,
		ChangedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, "order.status_changed", evt); err != nil {
		log.Printf("Failed to publish order.status_changed for order %d: %v", order.ID, err)
	}
}
