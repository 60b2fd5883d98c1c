package main

import (
	"time"

	"github.com/easyshop-store/easyshop-api/initializers"
	"github.com/easyshop-store/easyshop-api/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, initializers.DB)
	routes.CategoryRoutes(server, initializers.DB)
	routes.ProductRoutes(server, initializers.DB)
	routes.ProfileRoutes(server, initializers.DB)
	routes.CartRoutes(server, initializers.DB)

	server.Run()
}
