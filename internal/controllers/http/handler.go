package http

import (
	"io"
	"net/http"
	"strconv"

	"storefront-service/internal/domain"
	"storefront-service/internal/services"
	"storefront-service/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler serves the customer-facing storefront routes.
type Handler struct {
	catalog  *services.CatalogService
	cart     *services.CartService
	checkout *services.CheckoutService
	orders   *services.OrderService
	reviews  *services.ReviewService
}

func NewHandler(catalog *services.CatalogService, cart *services.CartService, checkout *services.CheckoutService, orders *services.OrderService, reviews *services.ReviewService) *Handler {
	return &Handler{
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		orders:   orders,
		reviews:  reviews,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/products/:id/reviews", h.ListReviews)

	authed := r.Group("/", RequireUser())
	authed.GET("/products/:id/can-review", h.CanReview)
	authed.POST("/products/:id/reviews", h.SubmitReview)

	authed.GET("/cart", h.GetCart)
	authed.POST("/cart/items", h.AddCartItem)
	authed.PATCH("/cart/items/:productId", h.UpdateCartItem)
	authed.DELETE("/cart/items/:productId", h.RemoveCartItem)
	authed.DELETE("/cart", h.ClearCart)

	authed.GET("/wishlist", h.GetWishlist)
	authed.POST("/wishlist/toggle", h.ToggleWishlistItem)
	authed.DELETE("/wishlist/items/:productId", h.RemoveWishlistItem)
	authed.DELETE("/wishlist", h.ClearWishlist)

	authed.POST("/checkout", h.Checkout)
	authed.GET("/orders", h.ListMyOrders)
	authed.GET("/orders/:id/tracking", h.GetTracking)
	authed.POST("/orders/:id/cancel", h.CancelOrder)
}

func (h *Handler) ListProducts(c *gin.Context) {
	filter := services.ProductFilter{
		Category: c.DefaultQuery("category", "all"),
		Search:   c.Query("search"),
		Sort:     c.DefaultQuery("sort", services.SortFeatured),
	}
	products, err := h.catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) ListReviews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.reviews.ListProductReviews(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) CanReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	allowed, err := h.reviews.CanReview(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"canReview": allowed})
}

func (h *Handler) SubmitReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review, err := h.reviews.SubmitReview(c.Request.Context(), currentUserID(c), id, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *Handler) GetCart(c *gin.Context) {
	col := h.cart.GetCart(c.Request.Context(), currentUserID(c))
	respondCollection(c, col)
}

func (h *Handler) AddCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	col, err := h.cart.AddCartItem(c.Request.Context(), currentUserID(c), entryFromRequest(req))
	if err != nil {
		respondError(c, err)
		return
	}
	respondCollection(c, col)
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	col, err := h.cart.UpdateCartQuantity(c.Request.Context(), currentUserID(c), c.Param("productId"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCollection(c, col)
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	col, err := h.cart.RemoveCartItem(c.Request.Context(), currentUserID(c), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondCollection(c, col)
}

func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.cart.ClearCart(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetWishlist(c *gin.Context) {
	col := h.cart.GetWishlist(c.Request.Context(), currentUserID(c))
	respondCollection(c, col)
}

func (h *Handler) ToggleWishlistItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	col, present, err := h.cart.ToggleWishlistItem(c.Request.Context(), currentUserID(c), entryFromRequest(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      col.Entries(),
		"totalCount": col.TotalCount(),
		"inWishlist": present,
	})
}

func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	col, err := h.cart.RemoveWishlistItem(c.Request.Context(), currentUserID(c), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondCollection(c, col)
}

func (h *Handler) ClearWishlist(c *gin.Context) {
	if err := h.cart.ClearWishlist(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Checkout takes a multipart form: the shipping fields plus the payment
// screenshot file.
func (h *Handler) Checkout(c *gin.Context) {
	shipping := domain.ShippingInfo{
		Address: c.PostForm("address"),
		City:    c.PostForm("city"),
		Zip:     c.PostForm("zip"),
		Phone:   c.PostForm("phone"),
	}

	fileHeader, err := c.FormFile("screenshot")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment screenshot is required"})
		return
	}
	if fileHeader.Size > domain.MaxScreenshotSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the 5MB limit"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.checkout.PlaceOrder(c.Request.Context(), currentUserID(c), services.CheckoutInput{
		Shipping:       shipping,
		ScreenshotName: fileHeader.Filename,
		Screenshot:     data,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) ListMyOrders(c *gin.Context) {
	orders, err := h.orders.ListUserOrders(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetTracking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, events, err := h.orders.GetTracking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if order.UserID != currentUserID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrOrderNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "tracking": events})
}

func (h *Handler) CancelOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := currentUserID(c)
	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if order.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrOrderNotFound.Error()})
		return
	}
	cancelled, err := h.orders.CancelOrder(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func entryFromRequest(req CartItemRequest) store.Entry {
	return store.Entry{
		ID:            req.ID,
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		Quantity:      req.Quantity,
	}
}

func respondCollection(c *gin.Context, col *store.Collection) {
	c.JSON(http.StatusOK, gin.H{
		"items":      col.Entries(),
		"totalCount": col.TotalCount(),
		"totalPrice": col.TotalPrice(),
	})
}
