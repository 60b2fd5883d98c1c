package routes

import (
	"github.com/easyshop-store/easyshop-api/controllers"
	"github.com/easyshop-store/easyshop-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CategoryRoutes(server *gin.Engine, db *gorm.DB) {
	controller := controllers.NewCategoryController(db)

	server.GET("/categories", controller.GetCategories)
	server.GET("/categories/:id", controller.GetCategory)
	server.GET("/categories/:id/products", controller.GetCategoryProducts)

	admin := server.Group("/categories", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/add", controller.CreateCategory)
		admin.PUT("/update/:id", controller.UpdateCategory)
		admin.DELETE("/delete/:id", controller.DeleteCategory)
	}
}
