package stores

import (
	"errors"

	"github.com/easyshop-store/easyshop-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

// Search applies every supplied filter conjunctively. Price bounds are
// inclusive and the color match is a case-sensitive exact comparison.
func (s *ProductStore) Search(categoryID *int, minPrice, maxPrice *decimal.Decimal, color *string) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if minPrice != nil {
		query = query.Where("price >= ?", *minPrice)
	}
	if maxPrice != nil {
		query = query.Where("price <= ?", *maxPrice)
	}
	if color != nil {
		query = query.Where("color = ?", *color)
	}

	products := []models.Product{}
	if err := query.Order("product_id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) ListByCategoryID(categoryID int) ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.Where("category_id = ?", categoryID).Order("product_id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) GetByID(id int) (models.Product, error) {
	var product models.Product
	err := s.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

func (s *ProductStore) Create(product *models.Product) error {
	return s.db.Create(product).Error
}

func (s *ProductStore) Update(id int, product models.Product) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		product.ProductID = id
		return tx.Save(&product).Error
	})
}

func (s *ProductStore) Delete(id int) (int64, error) {
	result := s.db.Delete(&models.Product{}, id)
	return result.RowsAffected, result.Error
}

// SetImageURL stores the uploaded image location on the product row.
func (s *ProductStore) SetImageURL(id int, url string) error {
	result := s.db.Model(&models.Product{}).Where("product_id = ?", id).Update("image_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
