package services

import (
	"context"
	"fmt"

	"storefront-service/internal/store"
)

// CartService owns the cart and wishlist slots of each user session. Every
// mutation loads the slot, applies the change in memory and mirrors the
// result back; the collection invariants live in the store package.
type CartService struct {
	slots *store.Slots
}

func NewCartService(slots *store.Slots) *CartService {
	return &CartService{slots: slots}
}

func cartSlot(userID uint64) string     { return fmt.Sprintf("cart:%d", userID) }
func wishlistSlot(userID uint64) string { return fmt.Sprintf("wishlist:%d", userID) }

func (s *CartService) GetCart(ctx context.Context, userID uint64) *store.Collection {
	return s.slots.Load(ctx, cartSlot(userID), store.ModeCart)
}

func (s *CartService) AddCartItem(ctx context.Context, userID uint64, entry store.Entry) (*store.Collection, error) {
	col := s.GetCart(ctx, userID)
	col.Add(entry)
	if err := s.slots.Save(ctx, cartSlot(userID), col); err != nil {
		return nil, err
	}
	return col, nil
}

func (s *CartService) UpdateCartQuantity(ctx context.Context, userID uint64, productID string, quantity int) (*store.Collection, error) {
	col := s.GetCart(ctx, userID)
	col.UpdateQuantity(productID, quantity)
	if err := s.slots.Save(ctx, cartSlot(userID), col); err != nil {
		return nil, err
	}
	return col, nil
}

func (s *CartService) RemoveCartItem(ctx context.Context, userID uint64, productID string) (*store.Collection, error) {
	col := s.GetCart(ctx, userID)
	col.Remove(productID)
	if err := s.slots.Save(ctx, cartSlot(userID), col); err != nil {
		return nil, err
	}
	return col, nil
}

func (s *CartService) ClearCart(ctx context.Context, userID uint64) error {
	return s.slots.Delete(ctx, cartSlot(userID))
}

func (s *CartService) GetWishlist(ctx context.Context, userID uint64) *store.Collection {
	return s.slots.Load(ctx, wishlistSlot(userID), store.ModeWishlist)
}

// ToggleWishlistItem reports whether the entry is in the wishlist afterwards.
func (s *CartService) ToggleWishlistItem(ctx context.Context, userID uint64, entry store.Entry) (*store.Collection, bool, error) {
	col := s.GetWishlist(ctx, userID)
	present := col.Toggle(entry)
	if err := s.slots.Save(ctx, wishlistSlot(userID), col); err != nil {
		return nil, false, err
	}
	return col, present, nil
}

func (s *CartService) RemoveWishlistItem(ctx context.Context, userID uint64, productID string) (*store.Collection, error) {
	col := s.GetWishlist(ctx, userID)
	col.Remove(productID)
	if err := s.slots.Save(ctx, wishlistSlot(userID), col); err != nil {
		return nil, err
	}
	return col, nil
}

func (s *CartService) ClearWishlist(ctx context.Context, userID uint64) error {
	return s.slots.Delete(ctx, wishlistSlot(userID))
}
