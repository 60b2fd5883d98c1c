package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/easyshop-store/easyshop-api/models"
	"github.com/easyshop-store/easyshop-api/stores"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	categories *stores.CategoryStore
	products   *stores.ProductStore
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{
		categories: stores.NewCategoryStore(db),
		products:   stores.NewProductStore(db),
	}
}

// GetCategories returns categories matching the optional categoryId and name
// query filters. Both filters supplied means both must match.
func (c *CategoryController) GetCategories(ctx *gin.Context) {
	var categoryID *int
	var name *string

	if raw := ctx.Query("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid categoryId")
			return
		}
		categoryID = &id
	}
	if raw := ctx.Query("name"); raw != "" {
		name = &raw
	}

	categories, err := c.categories.List(categoryID, name)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

func (c *CategoryController) GetCategory(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := c.categories.GetByID(id)
	if err != nil {
		respondStoreError(ctx, err, "Category not found")
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// GetCategoryProducts lists the products belonging to a category. An empty
// category yields an empty list.
func (c *CategoryController) GetCategoryProducts(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	products, err := c.products.ListByCategoryID(id)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.categories.Create(&category); err != nil {
		log.Println("Category creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.categories.Update(id, category); err != nil {
		respondStoreError(ctx, err, "Category not found")
		return
	}

	updated, err := c.categories.GetByID(id)
	if err != nil {
		respondStoreError(ctx, err, "Category not found")
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteCategory removes a category. Deleting an unknown id succeeds and
// reports zero rows affected.
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	rowsAffected, err := c.categories.Delete(id)
	if err != nil {
		log.Println("Category deletion error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":      "Category deleted.",
		"rowsAffected": rowsAffected,
	})
}
