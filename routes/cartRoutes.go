package routes

import (
	"github.com/easyshop-store/easyshop-api/controllers"
	"github.com/easyshop-store/easyshop-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CartRoutes(server *gin.Engine, db *gorm.DB) {
	controller := controllers.NewCartController(db)

	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("", controller.GetCart)
		cart.POST("/products/:productId", controller.AddItem)
		cart.PUT("/products/:productId", controller.UpdateQuantity)
		cart.DELETE("", controller.ClearCart)
	}
}
