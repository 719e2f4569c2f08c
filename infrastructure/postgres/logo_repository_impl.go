package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/repositories"
)

type LogoRepositoryImpl struct {
	db *gorm.DB
}

func NewLogoRepository(db *gorm.DB) repositories.LogoRepository {
	return &LogoRepositoryImpl{db: db}
}

// ActivateNew runs deactivate-all-then-insert in one transaction so an
// observer never sees two active logos, and a failed swap rolls back to
// the previous active record.
func (r *LogoRepositoryImpl) ActivateNew(ctx context.Context, logo *models.Logo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Logo{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		logo.IsActive = true
		return tx.Create(logo).Error
	})
}

func (r *LogoRepositoryImpl) GetActive(ctx context.Context) (*models.Logo, error) {
	var logo models.Logo
	err := r.db.WithContext(ctx).Where("is_active = ?", true).First(&logo).Error
	if err != nil {
		return nil, err
	}
	return &logo, nil
}

func (r *LogoRepositoryImpl) ListStorageKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).
		Model(&models.Logo{}).
		Pluck("storage_key", &keys).Error
	return keys, err
}
