package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the EasyShop API.

The following are the endpoints for this API:

AUTH
- POST "/auth/register" - Create user account
- POST "/auth/login" - Access user account

CATEGORY
- GET "/categories?categoryId=&name=" - List categories
- GET "/categories/{id}" - Get category by ID
- GET "/categories/{id}/products" - Get products in a category
- POST "/categories/add" - Create category (admin)
- PUT "/categories/update/{id}" - Update category (admin)
- DELETE "/categories/delete/{id}" - Delete category (admin)

PRODUCT
- GET "/products?cat=&minPrice=&maxPrice=&color=" - Search products
- GET "/products/{id}" - Get product by ID
- GET "/products/cat/{categoryId}" - Get products by category
- POST "/products/add" - Create product (admin)
- PUT "/products/update/{id}" - Update product (admin)
- DELETE "/products/delete/{id}" - Delete product (admin)
- POST "/products/{id}/image" - Upload product image (admin)

PROFILE
- GET "/profile" - Get current user's profile
- POST "/profile" - Create current user's profile
- PUT "/profile" - Update current user's profile

CART
- GET "/cart" - Get current user's cart
- POST "/cart/products/{productId}" - Add product to cart
- PUT "/cart/products/{productId}" - Update quantity in cart
- DELETE "/cart" - Clear cart`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
