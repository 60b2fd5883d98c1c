package stores

import (
	"errors"

	"github.com/easyshop-store/easyshop-api/models"
	"gorm.io/gorm"
)

type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// List returns categories matching all supplied filters. A nil filter is not
// applied; the name filter is a case-insensitive exact match.
func (s *CategoryStore) List(categoryID *int, name *string) ([]models.Category, error) {
	query := s.db.Model(&models.Category{})

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if name != nil {
		query = query.Where("LOWER(name) = LOWER(?)", *name)
	}

	categories := []models.Category{}
	if err := query.Order("category_id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryStore) GetByID(id int) (models.Category, error) {
	var category models.Category
	err := s.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, ErrNotFound
	}
	return category, err
}

func (s *CategoryStore) Create(category *models.Category) error {
	return s.db.Create(category).Error
}

// Update replaces the category's fields. Unknown ids are surfaced as
// ErrNotFound rather than silently doing nothing.
func (s *CategoryStore) Update(id int, category models.Category) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Category
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		category.CategoryID = id
		return tx.Save(&category).Error
	})
}

// Delete removes the category if it exists and reports the number of rows
// affected. Deleting an absent id is not an error.
func (s *CategoryStore) Delete(id int) (int64, error) {
	result := s.db.Delete(&models.Category{}, id)
	return result.RowsAffected, result.Error
}
