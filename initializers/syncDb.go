package initializers

import (
	"log"

	"github.com/easyshop-store/easyshop-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.Profile{}, &models.CartItem{})
	log.Println("Database synced successfully.")
}
