package routes

import (
	"github.com/easyshop-store/easyshop-api/controllers"
	"github.com/easyshop-store/easyshop-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProfileRoutes(server *gin.Engine, db *gorm.DB) {
	controller := controllers.NewProfileController(db)

	profile := server.Group("/profile", middlewares.RequireAuth())
	{
		profile.GET("", controller.GetProfile)
		profile.POST("", controller.CreateProfile)
		profile.PUT("", controller.UpdateProfile)
	}
}
