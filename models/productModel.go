package models

import "github.com/shopspring/decimal"

type Product struct {
	ProductID   int             `json:"productId" gorm:"column:product_id;primaryKey;autoIncrement"`
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	CategoryID  int             `json:"categoryId" gorm:"column:category_id"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"imageUrl" gorm:"column:image_url"`
	Featured    bool            `json:"featured"`
}

func (Product) TableName() string {
	return "products"
}
