package stores

import (
	"errors"

	"github.com/easyshop-store/easyshop-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// cartRow is the shape of one joined shopping_cart/products row.
type cartRow struct {
	ProductID   int             `gorm:"column:product_id"`
	Name        string          `gorm:"column:name"`
	Price       decimal.Decimal `gorm:"column:price"`
	CategoryID  int             `gorm:"column:category_id"`
	Description string          `gorm:"column:description"`
	Color       string          `gorm:"column:color"`
	Stock       int             `gorm:"column:stock"`
	ImageURL    string          `gorm:"column:image_url"`
	Featured    bool            `gorm:"column:featured"`
	Quantity    int             `gorm:"column:quantity"`
}

// GetByUserID computes the cart in a single join against live product rows.
// Line totals and the grand total use exact decimal arithmetic. An empty
// result set is an empty cart, not an error.
func (s *CartStore) GetByUserID(userID int) (models.ShoppingCart, error) {
	cart := models.NewShoppingCart()

	rows := []cartRow{}
	err := s.db.Table("shopping_cart").
		Select("products.*, shopping_cart.quantity").
		Joins("JOIN products ON products.product_id = shopping_cart.product_id").
		Where("shopping_cart.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return cart, err
	}

	for _, row := range rows {
		product := models.Product{
			ProductID:   row.ProductID,
			Name:        row.Name,
			Price:       row.Price,
			CategoryID:  row.CategoryID,
			Description: row.Description,
			Color:       row.Color,
			Stock:       row.Stock,
			ImageURL:    row.ImageURL,
			Featured:    row.Featured,
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(row.Quantity)))

		cart.Items[product.ProductID] = models.ShoppingCartLine{
			Product:   product,
			Quantity:  row.Quantity,
			LineTotal: lineTotal,
		}
		cart.Total = cart.Total.Add(lineTotal)
	}

	return cart, nil
}

// AddItem inserts a line item with quantity 1, or increments the existing
// quantity by 1. The upsert is a single statement so concurrent adds for the
// same (user, product) cannot lose an increment.
func (s *CartStore) AddItem(userID, productID int) error {
	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: 1}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{"quantity": gorm.Expr("quantity + 1")}),
	}).Create(&item).Error
}

// UpdateQuantity overwrites the stored quantity for an existing line item.
// The pair must already be in the cart; there is deliberately no upsert here,
// adding is POST's job.
func (s *CartStore) UpdateQuantity(userID, productID, quantity int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		err := tx.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Update("quantity", quantity).Error
	})
}

// ClearCart deletes every line item for the user. Idempotent.
func (s *CartStore) ClearCart(userID int) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
