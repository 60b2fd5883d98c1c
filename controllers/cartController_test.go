package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/easyshop-store/easyshop-api/models"
	"github.com/shopspring/decimal"
)

type cartResponse struct {
	Items map[string]struct {
		Product   models.Product  `json:"product"`
		Quantity  int             `json:"quantity"`
		LineTotal decimal.Decimal `json:"lineTotal"`
	} `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func decodeCart(t *testing.T, body []byte) cartResponse {
	t.Helper()
	var cart cartResponse
	if err := json.Unmarshal(body, &cart); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	return cart
}

func TestCartRequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter(t, db)

	w := doRequest(t, server, http.MethodGet, "/cart", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}

func TestCartAddUnknownProductIs404(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter(t, db)
	token := tokenFor(t, db, "shopper", "user")

	w := doRequest(t, server, http.MethodPost, "/cart/products/99", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestCartFlow(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter(t, db)
	token := tokenFor(t, db, "shopper", "user")

	product := models.Product{Name: "Notebook", Price: decimal.NewFromFloat(19.99), CategoryID: 1, Stock: 100}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	key := strconv.Itoa(product.ProductID)
	path := "/cart/products/" + key

	// First add creates the line with quantity 1.
	w := doRequest(t, server, http.MethodPost, path, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	cart := decodeCart(t, w.Body.Bytes())
	if cart.Items[key].Quantity != 1 {
		t.Fatalf("expected quantity 1 got %d", cart.Items[key].Quantity)
	}

	// Second add increments.
	w = doRequest(t, server, http.MethodPost, path, token, nil)
	cart = decodeCart(t, w.Body.Bytes())
	if cart.Items[key].Quantity != 2 {
		t.Fatalf("expected quantity 2 got %d", cart.Items[key].Quantity)
	}

	// PUT overwrites the quantity and the response reflects fresh totals.
	w = doRequest(t, server, http.MethodPut, path, token, map[string]int{"quantity": 3})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	cart = decodeCart(t, w.Body.Bytes())
	if cart.Items[key].Quantity != 3 {
		t.Fatalf("expected quantity 3 got %d", cart.Items[key].Quantity)
	}
	want := decimal.RequireFromString("59.97")
	if !cart.Total.Equal(want) {
		t.Fatalf("expected total %s got %s", want, cart.Total)
	}

	// Clear returns an empty cart with zero total.
	w = doRequest(t, server, http.MethodDelete, "/cart", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	cart = decodeCart(t, w.Body.Bytes())
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart got %+v", cart.Items)
	}
	if !cart.Total.Equal(decimal.Zero) {
		t.Fatalf("expected zero total got %s", cart.Total)
	}
}

func TestCartUpdateQuantityValidation(t *testing.T) {
	db := setupTestDB(t)
	server := setupRouter(t, db)
	token := tokenFor(t, db, "shopper", "user")

	product := models.Product{Name: "Pen", Price: decimal.NewFromFloat(5.00), CategoryID: 1}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	path := "/cart/products/" + strconv.Itoa(product.ProductID)

	// Missing quantity in the body.
	w := doRequest(t, server, http.MethodPut, path, token, map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}

	// Zero quantity is invalid.
	w = doRequest(t, server, http.MethodPut, path, token, map[string]int{"quantity": 0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}

	// Valid quantity for an item not in the cart.
	w = doRequest(t, server, http.MethodPut, path, token, map[string]int{"quantity": 2})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}
