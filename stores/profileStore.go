package stores

import (
	"errors"

	"github.com/easyshop-store/easyshop-api/models"
	"gorm.io/gorm"
)

type ProfileStore struct {
	db *gorm.DB
}

func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) GetByUserID(userID int) (models.Profile, error) {
	var profile models.Profile
	err := s.db.First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, ErrNotFound
	}
	return profile, err
}

func (s *ProfileStore) Create(profile *models.Profile) error {
	return s.db.Create(profile).Error
}

// Update replaces the contact and shipping fields for an existing profile.
// It never fabricates a row: an unknown user id is ErrNotFound.
func (s *ProfileStore) Update(profile models.Profile) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Profile
		if err := tx.First(&existing, "user_id = ?", profile.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Save(&profile).Error
	})
}
