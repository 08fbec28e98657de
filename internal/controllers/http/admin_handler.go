package http

import (
	"net/http"
	"time"

	"storefront-service/internal/domain"
	"storefront-service/internal/infra/storage"
	"storefront-service/internal/repository"
	"storefront-service/internal/services"

	"github.com/gin-gonic/gin"
)

// signedURLTTL is how long a payment screenshot preview link stays valid.
const signedURLTTL = 300 * time.Second

// AdminHandler serves the back office. Every route sits behind RequireUser +
// RequireAdmin.
type AdminHandler struct {
	orders    *services.OrderService
	catalog   *services.CatalogService
	dashboard *services.DashboardService
	store     storage.ObjectStore
}

func NewAdminHandler(orders *services.OrderService, catalog *services.CatalogService, dashboard *services.DashboardService, store storage.ObjectStore) *AdminHandler {
	return &AdminHandler{
		orders:    orders,
		catalog:   catalog,
		dashboard: dashboard,
		store:     store,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.Engine, roles repository.RoleRepository) {
	admin := r.Group("/admin", RequireUser(), RequireAdmin(roles))

	admin.GET("/dashboard", h.Dashboard)

	admin.GET("/orders", h.ListOrders)
	admin.POST("/orders/:id/verify-payment", h.VerifyPayment)
	admin.POST("/orders/:id/reject", h.RejectOrder)
	admin.POST("/orders/:id/approve", h.ApproveOrder)
	admin.POST("/orders/:id/tracking", h.AddTracking)
	admin.GET("/orders/:id/screenshot-url", h.ScreenshotURL)

	admin.GET("/products", h.ListProducts)
	admin.POST("/products", h.CreateProduct)
	admin.PUT("/products/:id", h.UpdateProduct)
	admin.DELETE("/products/:id", h.DeleteProduct)
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *AdminHandler) VerifyPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.VerifyPayment(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) RejectOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req RejectOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orders.RejectOrder(c.Request.Context(), id, currentUserID(c), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) ApproveOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.ApproveOrder(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) AddTracking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req TrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orders.AddTracking(c.Request.Context(), id, currentUserID(c), services.TrackingInput{
		Status:         req.Status,
		Description:    req.Description,
		Location:       req.Location,
		Carrier:        req.Carrier,
		TrackingNumber: req.TrackingNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ScreenshotURL mints a fresh short-lived signed URL for the order's payment
// screenshot; the stored path itself is never exposed as a public link.
func (h *AdminHandler) ScreenshotURL(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if order.ScreenshotPath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "order has no payment screenshot"})
		return
	}
	url, err := h.store.CreateSignedURL(c.Request.Context(), services.ScreenshotBucket, order.ScreenshotPath, signedURLTTL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "expiresIn": int(signedURLTTL.Seconds())})
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListAllProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product := productFromRequest(req)
	if err := h.catalog.CreateProduct(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product := productFromRequest(req)
	product.ID = id
	if err := h.catalog.UpdateProduct(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func productFromRequest(req ProductRequest) *domain.Product {
	return &domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      req.Category,
		ImageURL:      req.ImageURL,
		InStock:       req.InStock,
		Rating:        req.Rating,
		Badge:         req.Badge,
		Featured:      req.Featured,
	}
}
