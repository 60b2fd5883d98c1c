package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/easyshop-store/easyshop-api/middlewares"
	"github.com/easyshop-store/easyshop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.Profile{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// setupRouter wires the same routes main registers, minus CORS.
func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	server := gin.New()

	auth := NewAuthController(db)
	server.POST("/auth/register", auth.Register)
	server.POST("/auth/login", auth.Login)

	categories := NewCategoryController(db)
	server.GET("/categories", categories.GetCategories)
	server.GET("/categories/:id", categories.GetCategory)
	server.GET("/categories/:id/products", categories.GetCategoryProducts)
	adminCategories := server.Group("/categories", middlewares.RequireAuth(), middlewares.RequireAdmin())
	adminCategories.POST("/add", categories.CreateCategory)
	adminCategories.PUT("/update/:id", categories.UpdateCategory)
	adminCategories.DELETE("/delete/:id", categories.DeleteCategory)

	products := NewProductController(db)
	server.GET("/products", products.SearchProducts)
	server.GET("/products/:id", products.GetProduct)
	server.GET("/products/cat/:categoryId", products.GetProductsByCategory)
	adminProducts := server.Group("/products", middlewares.RequireAuth(), middlewares.RequireAdmin())
	adminProducts.POST("/add", products.CreateProduct)
	adminProducts.PUT("/update/:id", products.UpdateProduct)
	adminProducts.DELETE("/delete/:id", products.DeleteProduct)

	profiles := NewProfileController(db)
	profileGroup := server.Group("/profile", middlewares.RequireAuth())
	profileGroup.GET("", profiles.GetProfile)
	profileGroup.POST("", profiles.CreateProfile)
	profileGroup.PUT("", profiles.UpdateProfile)

	carts := NewCartController(db)
	cartGroup := server.Group("/cart", middlewares.RequireAuth())
	cartGroup.GET("", carts.GetCart)
	cartGroup.POST("/products/:productId", carts.AddItem)
	cartGroup.PUT("/products/:productId", carts.UpdateQuantity)
	cartGroup.DELETE("", carts.ClearCart)

	return server
}

// tokenFor creates a user with the given role and returns a valid token.
func tokenFor(t *testing.T, db *gorm.DB, username, role string) string {
	t.Helper()
	user := models.User{Username: username, Password: "x", Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := generateJWT(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, server *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}
