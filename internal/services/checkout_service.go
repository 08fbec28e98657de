package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"storefront-service/internal/domain"
	rabbit "storefront-service/internal/infra/rabbitmq"
	"storefront-service/internal/infra/storage"
	"storefront-service/internal/repository"
)

// ScreenshotBucket is private; objects in it are only reachable through
// short-lived signed URLs.
const ScreenshotBucket = "payment-screenshots"

var screenshotContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

type CheckoutInput struct {
	Shipping       domain.ShippingInfo
	ScreenshotName string
	Screenshot     []byte
}

type CheckoutService struct {
	orders    repository.OrderRepository
	cart      *CartService
	store     storage.ObjectStore
	publisher rabbit.PublisherInterface
}

func NewCheckoutService(orders repository.OrderRepository, cart *CartService, store storage.ObjectStore, pub rabbit.PublisherInterface) *CheckoutService {
	return &CheckoutService{orders: orders, cart: cart, store: store, publisher: pub}
}

// PlaceOrder validates everything up front, uploads the payment screenshot,
// then creates the order and its lines in a single transaction before
// clearing the cart. The order starts at payment_uploaded because checkout
// only completes once a screenshot is attached.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint64, in CheckoutInput) (*domain.Order, error) {
	if err := domain.ValidateShipping(in.Shipping); err != nil {
		return nil, err
	}
	if err := domain.ValidateScreenshot(in.ScreenshotName, int64(len(in.Screenshot))); err != nil {
		return nil, err
	}

	col := s.cart.GetCart(ctx, userID)
	entries := col.Entries()
	if len(entries) == 0 {
		return nil, domain.NewValidationError("cart", "cart is empty")
	}

	items := make([]domain.OrderItem, 0, len(entries))
	for _, e := range entries {
		productID, err := strconv.ParseUint(e.ID, 10, 64)
		if err != nil {
			return nil, domain.NewValidationError("cart", fmt.Sprintf("invalid product id %q", e.ID))
		}
		items = append(items, domain.OrderItem{
			ProductID:    productID,
			ProductName:  e.Name,
			ProductPrice: e.Price,
			Quantity:     e.Quantity,
		})
	}

	ext := strings.ToLower(filepath.Ext(in.ScreenshotName))
	path := fmt.Sprintf("%d/%d%s", userID, time.Now().UnixMilli(), ext)
	if err := s.store.Upload(ctx, ScreenshotBucket, path, in.Screenshot, screenshotContentTypes[ext]); err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:          userID,
		ShippingAddress: in.Shipping.Address,
		ShippingCity:    in.Shipping.City,
		ShippingZip:     in.Shipping.Zip,
		ShippingPhone:   in.Shipping.Phone,
		TotalAmount:     col.TotalPrice(),
		Status:          domain.StatusPaymentUploaded,
		ScreenshotPath:  path,
	}
	if err := s.orders.CreateWithItems(order, items); err != nil {
		return nil, err
	}

	if err := s.cart.ClearCart(ctx, userID); err != nil {
		log.Printf("Failed to clear cart for user %d after checkout: %v", userID, err)
	}

	go s.publishOrderCreated(context.Background(), order)
	return order, nil
}

func (s *CheckoutService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderCreatedEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.Items),
		CreatedAt:   order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("Failed to publish order.created for order %d: %v", order.ID, err)
	}
}
