package serviceimpl

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/dto"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/policy"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/ports"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/repositories"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/services"
	redispkg "github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/infrastructure/redis"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/config"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/logger"
)

const (
	uploadURLExpiry = 15 * time.Minute
	// fetch URLs outlive the cache entry so a cached URL is always valid
	fetchURLExpiry  = time.Hour
	logoCacheKey    = "logo:active"
	logoCacheTTL    = 30 * time.Minute
)

type LogoServiceImpl struct {
	logoRepo    repositories.LogoRepository
	profileRepo repositories.ProfileRepository
	storage     ports.StoragePort
	cache       *redispkg.Client // nil when redis is not configured
	cfg         config.StorageConfig
}

func NewLogoService(
	logoRepo repositories.LogoRepository,
	profileRepo repositories.ProfileRepository,
	storage ports.StoragePort,
	cache *redispkg.Client,
	cfg config.StorageConfig,
) services.LogoService {
	return &LogoServiceImpl{
		logoRepo:    logoRepo,
		profileRepo: profileRepo,
		storage:     storage,
		cache:       cache,
		cfg:         cfg,
	}
}

func (s *LogoServiceImpl) CreateUploadTarget(ctx context.Context, userID uuid.UUID, req *dto.LogoUploadTargetRequest) (*dto.LogoUploadTargetResponse, error) {
	if _, err := s.profileRepo.GetByUserID(ctx, userID); err != nil {
		return nil, services.ErrProfileNotFound
	}

	if !strings.HasPrefix(req.ContentType, "image/") {
		return nil, services.ErrValidation
	}

	ext := strings.ToLower(filepath.Ext(req.FileName))
	base := strings.TrimSuffix(filepath.Base(req.FileName), ext)
	key := s.cfg.LogoPrefix + uuid.New().String() + "-" + slug.Make(base) + ext

	uploadURL, err := s.storage.PresignedPutURL(ctx, key, uploadURLExpiry)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create upload target", "key", key, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Logo upload target created", "key", key)

	return &dto.LogoUploadTargetResponse{
		UploadURL:  uploadURL,
		StorageKey: key,
		ExpiresIn:  int(uploadURLExpiry.Seconds()),
	}, nil
}

func (s *LogoServiceImpl) RegisterLogo(ctx context.Context, userID uuid.UUID, req *dto.RegisterLogoRequest) (*dto.LogoResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, services.ErrProfileNotFound
	}

	if !policy.CanRegisterLogo(profile) {
		return nil, services.ErrNotAuthorized
	}

	// Keys outside the logo prefix are not ours to register.
	if !strings.HasPrefix(req.StorageKey, s.cfg.LogoPrefix) {
		return nil, services.ErrValidation
	}

	// The blob must actually exist; registration after a failed upload is
	// rejected rather than leaving a dangling active record.
	info, err := s.storage.StatObject(ctx, req.StorageKey)
	if err != nil {
		logger.WarnContext(ctx, "Logo registration for missing blob", "key", req.StorageKey)
		return nil, services.ErrNotFound
	}

	if !strings.HasPrefix(info.ContentType, "image/") {
		return nil, services.ErrValidation
	}
	if s.cfg.LogoMaxSize > 0 && info.Size > s.cfg.LogoMaxSize {
		return nil, services.ErrValidation
	}

	logo := &models.Logo{
		ID:         uuid.New(),
		StorageKey: req.StorageKey,
		UploadedBy: profile.Name,
		UploadedAt: time.Now(),
	}

	if err := s.logoRepo.ActivateNew(ctx, logo); err != nil {
		logger.ErrorContext(ctx, "Failed to register logo", "key", req.StorageKey, "error", err)
		return nil, err
	}

	s.invalidateCache(ctx)

	logger.InfoContext(ctx, "Logo registered", "logo_id", logo.ID, "uploaded_by", profile.Name)

	url, err := s.storage.PresignedGetURL(ctx, logo.StorageKey, fetchURLExpiry)
	if err != nil {
		logger.WarnContext(ctx, "Failed to resolve logo URL after register", "error", err)
		url = ""
	}

	return dto.LogoToLogoResponse(logo, url), nil
}

// GetActiveLogo resolves the single active record, or returns (nil, nil)
// when no logo has been registered yet.
func (s *LogoServiceImpl) GetActiveLogo(ctx context.Context) (*dto.LogoResponse, error) {
	if cached := s.cacheGet(ctx); cached != nil {
		return cached, nil
	}

	logo, err := s.logoRepo.GetActive(ctx)
	if err != nil {
		return nil, nil
	}

	url, err := s.storage.PresignedGetURL(ctx, logo.StorageKey, fetchURLExpiry)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to resolve logo URL", "key", logo.StorageKey, "error", err)
		return nil, err
	}

	resp := dto.LogoToLogoResponse(logo, url)
	s.cacheSet(ctx, resp)

	return resp, nil
}

func (s *LogoServiceImpl) cacheGet(ctx context.Context) *dto.LogoResponse {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, logoCacheKey)
	if err != nil {
		if !redispkg.IsNil(err) {
			logger.WarnContext(ctx, "Logo cache read failed", "error", err)
		}
		return nil
	}

	var resp dto.LogoResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *LogoServiceImpl) cacheSet(ctx context.Context, resp *dto.LogoResponse) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, logoCacheKey, data, logoCacheTTL); err != nil {
		logger.WarnContext(ctx, "Logo cache write failed", "error", err)
	}
}

func (s *LogoServiceImpl) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, logoCacheKey); err != nil {
		logger.WarnContext(ctx, "Logo cache invalidation failed", "error", err)
	}
}
