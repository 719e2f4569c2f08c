package serviceimpl

import (
	"context"
	"time"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/ports"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/repositories"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/logger"
)

// LogoCleanupService removes blobs that were uploaded through a presigned
// target but never registered. A crash between upload and registration
// leaves such orphans behind; they are harmless but pile up.
type LogoCleanupService struct {
	logoRepo repositories.LogoRepository
	storage  ports.StoragePort
	prefix   string
	minAge   time.Duration
}

func NewLogoCleanupService(
	logoRepo repositories.LogoRepository,
	storage ports.StoragePort,
	prefix string,
	minAge time.Duration,
) *LogoCleanupService {
	return &LogoCleanupService{
		logoRepo: logoRepo,
		storage:  storage,
		prefix:   prefix,
		minAge:   minAge,
	}
}

// SweepOrphans deletes every blob under the logo prefix that no logo row
// references and that is older than minAge. The age guard keeps the sweep
// from racing an upload whose registration is still in flight.
func (s *LogoCleanupService) SweepOrphans(ctx context.Context) (int, error) {
	keys, err := s.logoRepo.ListStorageKeys(ctx)
	if err != nil {
		return 0, err
	}

	registered := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		registered[k] = struct{}{}
	}

	objects, err := s.storage.ListObjects(ctx, s.prefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, obj := range objects {
		if _, ok := registered[obj.Key]; ok {
			continue
		}
		if time.Since(obj.LastModified) < s.minAge {
			continue
		}

		if err := s.storage.RemoveObject(ctx, obj.Key); err != nil {
			logger.Warn("Failed to remove orphaned logo blob", "key", obj.Key, "error", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		logger.Info("Orphaned logo blobs removed", "count", removed)
	}

	return removed, nil
}
