package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"zyppy-backend/internal/domain"
	"zyppy-backend/internal/infra/payments"
	"zyppy-backend/internal/mocks"
	"zyppy-backend/internal/services"
)

type handlerMocks struct {
	users       *mocks.MockUserRepository
	restaurants *mocks.MockRestaurantRepository
	foodItems   *mocks.MockFoodItemRepository
	orders      *mocks.MockOrderRepository
	reviews     *mocks.MockReviewRepository
	txns        *mocks.MockPaymentRepository
	catalog     *mocks.MockCatalogReader
	gateway     *mocks.MockPaymentGateway
}

func newTestRouter(m *handlerMocks, configured bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalogSvc := services.NewCatalogService(m.restaurants, m.foodItems)
	identitySvc := services.NewIdentityService(m.users)
	orderSvc := services.NewOrderService(m.orders, m.catalog, nil)
	reviewSvc := services.NewReviewService(m.reviews)

	var paymentSvc *services.PaymentService
	if configured {
		paymentSvc = services.NewPaymentService(m.gateway, m.txns, m.orders)
	} else {
		paymentSvc = services.NewPaymentService(nil, m.txns, m.orders)
	}

	r := gin.New()
	NewHandler(identitySvc, catalogSvc, orderSvc, paymentSvc, reviewSvc).RegisterRoutes(r)
	return r
}

func newHandlerMocks() *handlerMocks {
	return &handlerMocks{
		users:       new(mocks.MockUserRepository),
		restaurants: new(mocks.MockRestaurantRepository),
		foodItems:   new(mocks.MockFoodItemRepository),
		orders:      new(mocks.MockOrderRepository),
		reviews:     new(mocks.MockReviewRepository),
		txns:        new(mocks.MockPaymentRepository),
		catalog:     new(mocks.MockCatalogReader),
		gateway:     new(mocks.MockPaymentGateway),
	}
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Root(t *testing.T) {
	r := newTestRouter(newHandlerMocks(), false)

	w := doJSON(r, http.MethodGet, "/api/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "running")
}

func TestHandler_CreateOrder(t *testing.T) {
	m := newHandlerMocks()
	m.catalog.On("FoodItemByID", mock.Anything, "item-1").Return(&domain.FoodItem{
		ID: "item-1", Price: 12.99, IsAvailable: true,
	}, nil)
	m.catalog.On("RestaurantByID", mock.Anything, "rest-1").Return(&domain.Restaurant{
		ID: "rest-1", DeliveryFee: 2.99,
	}, nil)
	m.orders.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)

	r := newTestRouter(m, false)
	w := doJSON(r, http.MethodPost, "/api/orders", CreateOrderRequest{
		UserID:          "user-1",
		RestaurantID:    "rest-1",
		DeliveryAddress: "42 Main St",
		Items: []CartItemRequest{
			{FoodItemID: "item-1", Quantity: 2},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var order domain.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 28.97, order.TotalAmount)
	assert.Equal(t, domain.StatusPending, order.Status)
}

func TestHandler_CreateOrder_MissingFields(t *testing.T) {
	r := newTestRouter(newHandlerMocks(), false)

	w := doJSON(r, http.MethodPost, "/api/orders", gin.H{"user_id": "user-1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		matched      bool
		expectRepo   bool
		expectedCode int
	}{
		{"valid status", "/api/orders/order-1/status?status=confirmed", true, true, http.StatusOK},
		{"invalid status", "/api/orders/order-1/status?status=shipped", false, false, http.StatusBadRequest},
		{"missing order", "/api/orders/ghost/status?status=confirmed", false, true, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newHandlerMocks()
			if tt.expectRepo {
				m.orders.On("UpdateStatus", mock.Anything, mock.Anything, domain.StatusConfirmed).Return(tt.matched, nil)
			}

			r := newTestRouter(m, false)
			w := doJSON(r, http.MethodPut, tt.path, nil)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), "updated successfully")
			}
		})
	}
}

func TestHandler_GetOrder_NotFound(t *testing.T) {
	m := newHandlerMocks()
	m.orders.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	r := newTestRouter(m, false)
	w := doJSON(r, http.MethodGet, "/api/orders/ghost", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Register_Duplicate(t *testing.T) {
	m := newHandlerMocks()
	m.users.On("FindByEmail", mock.Anything, "alice@example.com").Return(&domain.User{
		ID: "user-1", Email: "alice@example.com",
	}, nil)

	r := newTestRouter(m, false)
	w := doJSON(r, http.MethodPost, "/api/auth/register", RegisterRequest{
		Email: "alice@example.com",
		Name:  "Alice",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestHandler_CreateReview_Duplicate(t *testing.T) {
	m := newHandlerMocks()
	m.reviews.On("FindByUserAndOrder", mock.Anything, "user-1", "order-1").Return(&domain.Review{
		ID: "review-1",
	}, nil)

	r := newTestRouter(m, false)
	w := doJSON(r, http.MethodPost, "/api/reviews", CreateReviewRequest{
		UserID:       "user-1",
		RestaurantID: "rest-1",
		OrderID:      "order-1",
		Rating:       4,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReview_RatingRange(t *testing.T) {
	r := newTestRouter(newHandlerMocks(), false)

	w := doJSON(r, http.MethodPost, "/api/reviews", CreateReviewRequest{
		UserID:       "user-1",
		RestaurantID: "rest-1",
		OrderID:      "order-1",
		Rating:       6,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Checkout_Unconfigured(t *testing.T) {
	r := newTestRouter(newHandlerMocks(), false)

	w := doJSON(r, http.MethodPost, "/api/payments/checkout", CheckoutRequest{
		OrderID:   "order-1",
		OriginURL: "https://app.example.com",
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_Webhook_BadSignature(t *testing.T) {
	m := newHandlerMocks()
	m.gateway.On("ParseWebhook", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	r := newTestRouter(m, true)
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/stripe", bytes.NewBufferString(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=bogus")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Webhook_Ack(t *testing.T) {
	m := newHandlerMocks()
	m.gateway.On("ParseWebhook", mock.Anything, mock.Anything).Return(&payments.WebhookEvent{
		EventType: "checkout.session.expired",
	}, nil)

	r := newTestRouter(m, true)
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/stripe", bytes.NewBufferString(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "received")
}

func TestHandler_ListRestaurants(t *testing.T) {
	m := newHandlerMocks()
	m.restaurants.On("Find", mock.Anything, "italian", "").Return([]domain.Restaurant{
		{ID: "rest-1", Name: "Bella Italia", CuisineType: "Italian"},
	}, nil)

	r := newTestRouter(m, false)
	w := doJSON(r, http.MethodGet, "/api/restaurants?cuisine=italian", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bella Italia")
}

func TestHandler_SearchFoodItems_MissingQuery(t *testing.T) {
	r := newTestRouter(newHandlerMocks(), false)

	w := doJSON(r, http.MethodGet, "/api/food-items/search", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
