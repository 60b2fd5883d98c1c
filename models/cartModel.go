package models

import "github.com/shopspring/decimal"

// CartItem is the persisted shopping cart row. One row per (user, product).
type CartItem struct {
	UserID    int `json:"userId" gorm:"column:user_id;primaryKey;autoIncrement:false"`
	ProductID int `json:"productId" gorm:"column:product_id;primaryKey;autoIncrement:false"`
	Quantity  int `json:"quantity"`
}

func (CartItem) TableName() string {
	return "shopping_cart"
}

// ShoppingCartLine is one computed cart entry: a snapshot of the product at
// read time, the stored quantity and lineTotal = price * quantity.
type ShoppingCartLine struct {
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// ShoppingCart is a computed view, never stored. Items are keyed by product
// id and the total is always recomputed from current product prices.
type ShoppingCart struct {
	Items map[int]ShoppingCartLine `json:"items"`
	Total decimal.Decimal          `json:"total"`
}

func NewShoppingCart() ShoppingCart {
	return ShoppingCart{
		Items: map[int]ShoppingCartLine{},
		Total: decimal.Zero,
	}
}
