package repositories

import (
	"context"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
)

type LogoRepository interface {
	// ActivateNew deactivates every existing logo row and inserts the new
	// active one inside a single transaction.
	ActivateNew(ctx context.Context, logo *models.Logo) error
	GetActive(ctx context.Context) (*models.Logo, error)
	// ListStorageKeys returns the storage keys of every registered logo,
	// active or not. Used by the orphaned-blob sweep.
	ListStorageKeys(ctx context.Context) ([]string, error)
}
