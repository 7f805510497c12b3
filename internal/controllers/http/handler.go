package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/services"
)

type Handler struct {
	identity *services.IdentityService
	catalog  *services.CatalogService
	orders   *services.OrderService
	payments *services.PaymentService
	reviews  *services.ReviewService
}

func NewHandler(identity *services.IdentityService, catalog *services.CatalogService, orders *services.OrderService, payments *services.PaymentService, reviews *services.ReviewService) *Handler {
	return &Handler{
		identity: identity,
		catalog:  catalog,
		orders:   orders,
		payments: payments,
		reviews:  reviews,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/", h.Root)

	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)

	api.GET("/restaurants", h.ListRestaurants)
	api.GET("/restaurants/:id", h.GetRestaurant)
	api.GET("/restaurants/:id/menu", h.GetMenu)
	api.GET("/restaurants/:id/reviews", h.ListRestaurantReviews)
	api.GET("/food-items/search", h.SearchFoodItems)

	api.POST("/orders", h.CreateOrder)
	api.GET("/orders/:id", h.GetOrder)
	api.GET("/users/:id/orders", h.GetUserOrders)
	api.PUT("/orders/:id/status", h.UpdateOrderStatus)

	api.POST("/payments/checkout", h.CreateCheckoutSession)
	api.GET("/payments/status/:sessionId", h.GetPaymentStatus)
	api.POST("/webhook/stripe", h.StripeWebhook)

	api.POST("/reviews", h.CreateReview)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Zyppy Food Delivery API", "status": "running"})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.identity.Login(c.Request.Context(), req.Email)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.identity.Register(c.Request.Context(), req.Email, req.Name, req.Phone, req.Address)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.catalog.ListRestaurants(c.Request.Context(), c.Query("cuisine"), c.Query("search"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (h *Handler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.catalog.GetRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (h *Handler) GetMenu(c *gin.Context) {
	items, err := h.catalog.GetMenu(c.Request.Context(), c.Param("id"), c.Query("category"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) SearchFoodItems(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	items, err := h.catalog.SearchFoodItems(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]domain.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		items = append(items, domain.CartItem{
			FoodItemID:          it.FoodItemID,
			Quantity:            qty,
			SpecialInstructions: it.SpecialInstructions,
		})
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), req.UserID, req.RestaurantID, items, req.DeliveryAddress)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetUserOrders(c *gin.Context) {
	orders, err := h.orders.GetUserOrders(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	status := domain.OrderStatus(c.Query("status"))

	err := h.orders.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}

func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.payments.CreateCheckoutSession(c.Request.Context(), req.OrderID, req.OriginURL)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetPaymentStatus(c *gin.Context) {
	status, err := h.payments.GetPaymentStatus(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         status.Status,
		"payment_status": status.PaymentStatus,
		"amount_total":   status.AmountTotal,
		"currency":       status.Currency,
	})
}

func (h *Handler) StripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.payments.HandleWebhook(c.Request.Context(), body, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		// The original surfaced every webhook failure as a client error.
		slog.Error("webhook rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviews.CreateReview(c.Request.Context(), req.UserID, req.RestaurantID, req.OrderID, req.Rating, req.Comment)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *Handler) ListRestaurantReviews(c *gin.Context) {
	reviews, err := h.reviews.ListRestaurantReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrRestaurantNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrUserExists), errors.Is(err, services.ErrDuplicateReview):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrPaymentNotConfigured):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
