package services

import (
	"context"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"

	"golang.org/x/sync/errgroup"
)

type DashboardStats struct {
	TotalOrders         int64 `json:"totalOrders"`
	PendingVerification int64 `json:"pendingVerification"`
	ApprovedOrders      int64 `json:"approvedOrders"`
	RejectedOrders      int64 `json:"rejectedOrders"`
	CompletedOrders     int64 `json:"completedOrders"`
	TotalProducts       int64 `json:"totalProducts"`
	TotalRevenue        int64 `json:"totalRevenue"`
}

// revenueStatuses are the orders whose totals count as revenue: everything
// from approval onward.
var revenueStatuses = []domain.OrderStatus{
	domain.StatusApproved,
	domain.StatusProcessing,
	domain.StatusShipped,
	domain.StatusDelivered,
}

type DashboardService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

func NewDashboardService(orders repository.OrderRepository, products repository.ProductRepository) *DashboardService {
	return &DashboardService{orders: orders, products: products}
}

// Stats gathers the admin dashboard figures; the three queries run
// concurrently.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var (
		byStatus     map[domain.OrderStatus]int64
		productCount int64
		revenue      int64
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byStatus, err = s.orders.CountByStatus()
		return err
	})
	g.Go(func() error {
		var err error
		productCount, err = s.products.Count()
		return err
	})
	g.Go(func() error {
		var err error
		revenue, err = s.orders.SumTotalAmount(revenueStatuses)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalProducts: productCount,
		TotalRevenue:  revenue,
	}
	for status, n := range byStatus {
		stats.TotalOrders += n
		switch status {
		case domain.StatusPaymentUploaded:
			stats.PendingVerification += n
		case domain.StatusApproved, domain.StatusProcessing, domain.StatusShipped:
			stats.ApprovedOrders += n
		case domain.StatusRejected:
			stats.RejectedOrders += n
		case domain.StatusDelivered:
			stats.CompletedOrders += n
		}
	}
	return stats, nil
}
