package cartControllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	cartControllers "github.com/Kavinduranmal/Noirrage-sub000/controllers/cart"
	"github.com/Kavinduranmal/Noirrage-sub000/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{}, &models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.PaymentRecord{},
	))
	return db
}

func newCartRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	r.POST("/api/cart/add", cartControllers.AddCartItem(db))
	r.GET("/api/cart/view", cartControllers.GetUserCart(db))
	r.DELETE("/api/cart/remove/:itemId", cartControllers.RemoveCartItem(db))
	return r
}

func seedProduct(t *testing.T, db *gorm.DB, id string) models.Product {
	t.Helper()
	p := models.Product{
		ID:      id,
		Name:    "Oversized Tee",
		Price:   2500,
		Sizes:   []string{"S", "M", "L"},
		Colors:  []string{"Black", "Red"},
		Images:  []string{"/uploads/tee-front.jpg"},
		InStock: true,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestAddItemToEmptyCart(t *testing.T) {
	db := newTestDB(t)
	r := newCartRouter(db, "U1")
	seedProduct(t, db, "P1")

	body := `{"product_id":"P1","qty":2,"size":"M","color":"Red"}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "P1", cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Qty)
	assert.Equal(t, "M", cart.Items[0].Size)
	assert.Equal(t, "Red", cart.Items[0].Color)

	// The view reflects the add, with the product expanded.
	req = httptest.NewRequest(http.MethodGet, "/api/cart/view", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Oversized Tee", cart.Items[0].Product.Name)
	assert.Equal(t, []string{"S", "M", "L"}, cart.Items[0].Product.Sizes)
}

func TestAddItemAlwaysAppends(t *testing.T) {
	db := newTestDB(t)
	r := newCartRouter(db, "U1")
	seedProduct(t, db, "P1")

	body := `{"product_id":"P1","qty":1,"size":"M","color":"Red"}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Identical variant rows are kept separate, never merged.
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestAddItemSkipsCatalogValidation(t *testing.T) {
	db := newTestDB(t)
	r := newCartRouter(db, "U1")

	// Unknown product, bogus size/color: the cart is a scratch container
	// and accepts it; order creation is where this fails.
	body := `{"product_id":"ghost","qty":1,"size":"XXXL","color":"Chartreuse"}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetCartWithoutCartReturnsEmpty(t *testing.T) {
	db := newTestDB(t)
	r := newCartRouter(db, "U1")

	req := httptest.NewRequest(http.MethodGet, "/api/cart/view", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Equal(t, "U1", cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestRemoveItem(t *testing.T) {
	db := newTestDB(t)
	r := newCartRouter(db, "U1")
	seedProduct(t, db, "P1")

	body := `{"product_id":"P1","qty":1,"size":"M","color":"Red"}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	itemID := cart.Items[0].ID

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/cart/remove/%d", itemID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)
}

func TestRemoveUnknownItemIsNoOp(t *testing.T) {
	db := newTestDB(t)
	r := newCartRouter(db, "U1")
	seedProduct(t, db, "P1")

	body := `{"product_id":"P1","qty":1,"size":"M","color":"Red"}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/cart/remove/99999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var cart models.Cart
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 1)
}

func TestRemoveItemWithoutCartReturns404(t *testing.T) {
	db := newTestDB(t)
	r := newCartRouter(db, "U1")

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/remove/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
