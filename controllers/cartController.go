package controllers

import (
	"net/http"
	"strconv"

	"github.com/easyshop-store/easyshop-api/stores"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	carts    *stores.CartStore
	products *stores.ProductStore
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{
		carts:    stores.NewCartStore(db),
		products: stores.NewProductStore(db),
	}
}

// respondWithCart re-reads the cart so the caller always sees state computed
// from current product data.
func (c *CartController) respondWithCart(ctx *gin.Context, userID int) {
	cart, err := c.carts.GetByUserID(userID)
	if err != nil {
		respondStoreError(ctx, err, "Cart not found")
		return
	}
	ctx.JSON(http.StatusOK, cart)
}

func (c *CartController) GetCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	c.respondWithCart(ctx, userID)
}

// AddItem adds the product to the cart with quantity 1, or increments the
// existing line by 1, then returns the fresh cart.
func (c *CartController) AddItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if _, err := c.products.GetByID(productID); err != nil {
		respondStoreError(ctx, err, "Product not found")
		return
	}

	if err := c.carts.AddItem(userID, productID); err != nil {
		respondStoreError(ctx, err, "Product not found")
		return
	}

	c.respondWithCart(ctx, userID)
}

// UpdateQuantity overwrites the quantity of a line item already in the cart.
func (c *CartController) UpdateQuantity(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	productID, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "No quantity found")
		return
	}
	if *body.Quantity < 1 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	if err := c.carts.UpdateQuantity(userID, productID, *body.Quantity); err != nil {
		respondStoreError(ctx, err, "Product not in cart")
		return
	}

	c.respondWithCart(ctx, userID)
}

// ClearCart removes every line item for the current user. Idempotent.
func (c *CartController) ClearCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	if err := c.carts.ClearCart(userID); err != nil {
		respondStoreError(ctx, err, "Cart not found")
		return
	}

	c.respondWithCart(ctx, userID)
}
