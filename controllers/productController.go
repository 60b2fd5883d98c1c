package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/easyshop-store/easyshop-api/models"
	"github.com/easyshop-store/easyshop-api/stores"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductController struct {
	products *stores.ProductStore
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{products: stores.NewProductStore(db)}
}

// SearchProducts filters by category, inclusive price range and color. Every
// filter is optional; omitting one widens the result.
func (c *ProductController) SearchProducts(ctx *gin.Context) {
	var categoryID *int
	var minPrice, maxPrice *decimal.Decimal
	var color *string

	if raw := ctx.Query("cat"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cat")
			return
		}
		categoryID = &id
	}
	if raw := ctx.Query("minPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid minPrice")
			return
		}
		minPrice = &price
	}
	if raw := ctx.Query("maxPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid maxPrice")
			return
		}
		maxPrice = &price
	}
	if raw := ctx.Query("color"); raw != "" {
		color = &raw
	}

	products, err := c.products.Search(categoryID, minPrice, maxPrice, color)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := c.products.GetByID(id)
	if err != nil {
		respondStoreError(ctx, err, "Product not found")
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// GetProductsByCategory returns the products in a category, or 404 when the
// category has none.
func (c *ProductController) GetProductsByCategory(ctx *gin.Context) {
	categoryID, err := strconv.Atoi(ctx.Param("categoryId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	products, err := c.products.ListByCategoryID(categoryID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if len(products) == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "No products found in this category")
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func validateProduct(product models.Product) string {
	if product.Price.IsNegative() {
		return "price must not be negative"
	}
	if product.Stock < 0 {
		return "stock must not be negative"
	}
	return ""
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if msg := validateProduct(product); msg != "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msg)
		return
	}

	if err := c.products.Create(&product); err != nil {
		log.Println("Product creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if msg := validateProduct(product); msg != "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msg)
		return
	}

	if err := c.products.Update(id, product); err != nil {
		respondStoreError(ctx, err, "Product not found")
		return
	}

	updated, err := c.products.GetByID(id)
	if err != nil {
		respondStoreError(ctx, err, "Product not found")
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	rowsAffected, err := c.products.Delete(id)
	if err != nil {
		log.Println("Product deletion error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":      "Product deleted.",
		"rowsAffected": rowsAffected,
	})
}

// getS3Uploader returns a configured S3 uploader
func getS3Uploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImage uploads a product image to S3 and stores the resulting
// URL on the product row.
func (c *ProductController) UploadProductImage(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if _, err := c.products.GetByID(id); err != nil {
		respondStoreError(ctx, err, "Product not found")
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "No image uploaded")
		return
	}

	uploader, err := getS3Uploader()
	if err != nil {
		log.Println("AWS configuration error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	f, err := file.Open()
	if err != nil {
		log.Printf("Error opening file %s: %v", file.Filename, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	defer f.Close()

	// Unique key to prevent overwrites
	key := fmt.Sprintf("products/%d-%s-%s", id, time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	if err := c.products.SetImageURL(id, result.Location); err != nil {
		respondStoreError(ctx, err, "Product not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"imageUrl": result.Location})
}
