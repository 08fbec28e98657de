package services

import (
	"context"
	"testing"

	"storefront-service/internal/domain"
	"storefront-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewService_CanReview(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks.MockReviewRepository, *mocks.MockOrderRepository)
		expected   bool
	}{
		{
			name: "no delivered order",
			setupMocks: func(reviews *mocks.MockReviewRepository, orders *mocks.MockOrderRepository) {
				orders.On("FindDeliveredWithProduct", TestUserID, TestProductID).
					Return([]domain.Order{}, nil)
			},
			expected: false,
		},
		{
			name: "delivered order and no prior review",
			setupMocks: func(reviews *mocks.MockReviewRepository, orders *mocks.MockOrderRepository) {
				orders.On("FindDeliveredWithProduct", TestUserID, TestProductID).
					Return([]domain.Order{*CreateMockOrder(TestOrderID, TestUserID, domain.StatusDelivered)}, nil)
				reviews.On("FindByUserAndProduct", TestUserID, TestProductID).Return(nil, nil)
			},
			expected: true,
		},
		{
			name: "already reviewed, even with two delivered orders",
			setupMocks: func(reviews *mocks.MockReviewRepository, orders *mocks.MockOrderRepository) {
				orders.On("FindDeliveredWithProduct", TestUserID, TestProductID).
					Return([]domain.Order{
						*CreateMockOrder(TestOrderID, TestUserID, domain.StatusDelivered),
						*CreateMockOrder(TestOrderID+1, TestUserID, domain.StatusDelivered),
					}, nil)
				reviews.On("FindByUserAndProduct", TestUserID, TestProductID).
					Return(&domain.Review{ID: 1, UserID: TestUserID, ProductID: TestProductID}, nil)
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := new(mocks.MockReviewRepository)
			orders := new(mocks.MockOrderRepository)
			tt.setupMocks(reviews, orders)

			service := NewReviewService(reviews, orders)
			got, err := service.CanReview(context.Background(), TestUserID, TestProductID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			reviews.AssertExpectations(t)
			orders.AssertExpectations(t)
		})
	}
}

func TestReviewService_SubmitReview(t *testing.T) {
	t.Run("binds the review to the first delivered order", func(t *testing.T) {
		reviews := new(mocks.MockReviewRepository)
		orders := new(mocks.MockOrderRepository)
		orders.On("FindDeliveredWithProduct", TestUserID, TestProductID).
			Return([]domain.Order{
				*CreateMockOrder(TestOrderID, TestUserID, domain.StatusDelivered),
				*CreateMockOrder(TestOrderID+5, TestUserID, domain.StatusDelivered),
			}, nil)
		reviews.On("FindByUserAndProduct", TestUserID, TestProductID).Return(nil, nil)
		reviews.On("Create", mock.MatchedBy(func(r *domain.Review) bool {
			return r.OrderID == TestOrderID && r.Rating == 4 && r.UserID == TestUserID
		})).Return(nil)

		service := NewReviewService(reviews, orders)
		review, err := service.SubmitReview(context.Background(), TestUserID, TestProductID, 4, "lovely glaze")

		assert.NoError(t, err)
		assert.Equal(t, TestOrderID, review.OrderID)
		reviews.AssertExpectations(t)
	})

	t.Run("invalid rating fails before any repository call", func(t *testing.T) {
		reviews := new(mocks.MockReviewRepository)
		orders := new(mocks.MockOrderRepository)

		service := NewReviewService(reviews, orders)
		_, err := service.SubmitReview(context.Background(), TestUserID, TestProductID, 0, "")

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		orders.AssertNotCalled(t, "FindDeliveredWithProduct", mock.Anything, mock.Anything)
	})

	t.Run("not eligible without a delivered order", func(t *testing.T) {
		reviews := new(mocks.MockReviewRepository)
		orders := new(mocks.MockOrderRepository)
		orders.On("FindDeliveredWithProduct", TestUserID, TestProductID).
			Return([]domain.Order{}, nil)

		service := NewReviewService(reviews, orders)
		_, err := service.SubmitReview(context.Background(), TestUserID, TestProductID, 5, "")

		assert.ErrorIs(t, err, ErrReviewNotEligible)
		reviews.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("second review for the same product is refused", func(t *testing.T) {
		reviews := new(mocks.MockReviewRepository)
		orders := new(mocks.MockOrderRepository)
		orders.On("FindDeliveredWithProduct", TestUserID, TestProductID).
			Return([]domain.Order{*CreateMockOrder(TestOrderID, TestUserID, domain.StatusDelivered)}, nil)
		reviews.On("FindByUserAndProduct", TestUserID, TestProductID).
			Return(&domain.Review{ID: 1}, nil)

		service := NewReviewService(reviews, orders)
		_, err := service.SubmitReview(context.Background(), TestUserID, TestProductID, 5, "")

		assert.ErrorIs(t, err, ErrAlreadyReviewed)
		reviews.AssertNotCalled(t, "Create", mock.Anything)
	})
}

// The eligibility gate must flip false -> true -> false across the order and
// review lifecycle.
func TestReviewService_EligibilityLifecycle(t *testing.T) {
	reviews := new(mocks.MockReviewRepository)
	orders := new(mocks.MockOrderRepository)
	service := NewReviewService(reviews, orders)
	ctx := context.Background()

	// Before any delivered order.
	orders.On("FindDeliveredWithProduct", TestUserID, TestProductID).
		Return([]domain.Order{}, nil).Once()
	ok, err := service.CanReview(ctx, TestUserID, TestProductID)
	assert.NoError(t, err)
	assert.False(t, ok)

	// After the order reaches delivered.
	delivered := []domain.Order{*CreateMockOrder(TestOrderID, TestUserID, domain.StatusDelivered)}
	orders.On("FindDeliveredWithProduct", TestUserID, TestProductID).Return(delivered, nil).Once()
	reviews.On("FindByUserAndProduct", TestUserID, TestProductID).Return(nil, nil).Once()
	ok, err = service.CanReview(ctx, TestUserID, TestProductID)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Submit the review.
	orders.On("FindDeliveredWithProduct", TestUserID, TestProductID).Return(delivered, nil).Once()
	reviews.On("FindByUserAndProduct", TestUserID, TestProductID).Return(nil, nil).Once()
	reviews.On("Create", mock.AnythingOfType("*domain.Review")).Return(nil).Once()
	_, err = service.SubmitReview(ctx, TestUserID, TestProductID, 5, "")
	assert.NoError(t, err)

	// Immediately afterwards the gate is closed again.
	orders.On("FindDeliveredWithProduct", TestUserID, TestProductID).Return(delivered, nil).Once()
	reviews.On("FindByUserAndProduct", TestUserID, TestProductID).
		Return(&domain.Review{ID: 1, OrderID: TestOrderID}, nil).Once()
	ok, err = service.CanReview(ctx, TestUserID, TestProductID)
	assert.NoError(t, err)
	assert.False(t, ok)
}
