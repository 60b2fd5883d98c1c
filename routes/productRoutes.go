package routes

import (
	"github.com/easyshop-store/easyshop-api/controllers"
	"github.com/easyshop-store/easyshop-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProductRoutes(server *gin.Engine, db *gorm.DB) {
	controller := controllers.NewProductController(db)

	server.GET("/products", controller.SearchProducts)
	server.GET("/products/:id", controller.GetProduct)
	server.GET("/products/cat/:categoryId", controller.GetProductsByCategory)

	admin := server.Group("/products", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/add", controller.CreateProduct)
		admin.PUT("/update/:id", controller.UpdateProduct)
		admin.DELETE("/delete/:id", controller.DeleteProduct)
		admin.POST("/:id/image", controller.UploadProductImage)
	}
}
