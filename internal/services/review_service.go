package services

import (
	"context"
	"errors"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"
)

var (
	ErrReviewNotEligible = errors.New("no delivered order contains this product")
	ErrAlreadyReviewed   = errors.New("product already reviewed by this user")
)

type ReviewService struct {
	reviews repository.ReviewRepository
	orders  repository.OrderRepository
}

func NewReviewService(reviews repository.ReviewRepository, orders repository.OrderRepository) *ReviewService {
	return &ReviewService{reviews: reviews, orders: orders}
}

// CanReview reports whether the user has a delivered order containing the
// product and has not reviewed it yet. It flips back to false the moment a
// review is submitted, regardless of how many delivered orders qualify.
func (s *ReviewService) CanReview(ctx context.Context, userID, productID uint64) (bool, error) {
	qualifying, err := s.orders.FindDeliveredWithProduct(userID, productID)
	if err != nil {
		return false, err
	}
	if len(qualifying) == 0 {
		return false, nil
	}
	existing, err := s.reviews.FindByUserAndProduct(userID, productID)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

// SubmitReview re-checks eligibility and pins the review to the first
// qualifying delivered order so each review traces back to a concrete
// purchase.
func (s *ReviewService) SubmitReview(ctx context.Context, userID, productID uint64, rating int, comment string) (*domain.Review, error) {
	if err := domain.ValidateRating(rating); err != nil {
		return nil, err
	}

	qualifying, err := s.orders.FindDeliveredWithProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if len(qualifying) == 0 {
		return nil, ErrReviewNotEligible
	}

	existing, err := s.reviews.FindByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	review := &domain.Review{
		OrderID:   qualifying[0].ID,
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviews.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListProductReviews(ctx context.Context, productID uint64) ([]domain.Review, error) {
	return s.reviews.FindByProductID(productID)
}
