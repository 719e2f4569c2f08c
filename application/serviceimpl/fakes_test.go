package serviceimpl

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/ports"
)

// In-memory fakes for the repository and storage ports. They mirror the
// postgres adapters closely enough for service-level behavior: newest-first
// ordering, not-found errors, and the single-active logo swap.

var errFakeNotFound = errors.New("record not found")

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errFakeNotFound
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*models.Profile // keyed by user ID
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*models.Profile)}
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *models.Profile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, errFakeNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, id uuid.UUID, profile *models.Profile) error {
	for userID, existing := range r.profiles {
		if existing.ID == id {
			r.profiles[userID] = profile
			return nil
		}
	}
	return errFakeNotFound
}

func (r *fakeProfileRepo) TouchLastActive(_ context.Context, userID uuid.UUID, at time.Time) error {
	profile, ok := r.profiles[userID]
	if !ok {
		return errFakeNotFound
	}
	profile.LastActive = &at
	return nil
}

type fakeTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*models.Task)}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return task, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, id uuid.UUID, task *models.Task) error {
	if _, ok := r.tasks[id]; !ok {
		return errFakeNotFound
	}
	r.tasks[id] = task
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tasks[id]; !ok {
		return errFakeNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) list(match func(*models.Task) bool) []*models.Task {
	var out []*models.Task
	for _, task := range r.tasks {
		if match(task) {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *fakeTaskRepo) ListAll(_ context.Context) ([]*models.Task, error) {
	return r.list(func(*models.Task) bool { return true }), nil
}

func (r *fakeTaskRepo) ListByBedAndCase(_ context.Context, bedNumber, caseNumber string) ([]*models.Task, error) {
	return r.list(func(t *models.Task) bool {
		return t.BedNumber == bedNumber && t.CaseNumber != nil && *t.CaseNumber == caseNumber
	}), nil
}

func (r *fakeTaskRepo) ListByCreatorRole(_ context.Context, role models.Role) ([]*models.Task, error) {
	return r.list(func(t *models.Task) bool {
		return t.CreatedBy == role
	}), nil
}

func (r *fakeTaskRepo) ListPorterBoard(_ context.Context, types []models.TaskType, assigneeName string) ([]*models.Task, error) {
	typeSet := make(map[models.TaskType]struct{}, len(types))
	for _, tt := range types {
		typeSet[tt] = struct{}{}
	}
	return r.list(func(t *models.Task) bool {
		if _, ok := typeSet[t.Type]; !ok {
			return false
		}
		return t.Status == models.StatusNew || t.Assignee() == assigneeName
	}), nil
}

type fakeLogoRepo struct {
	logos []*models.Logo
}

func newFakeLogoRepo() *fakeLogoRepo {
	return &fakeLogoRepo{}
}

func (r *fakeLogoRepo) ActivateNew(_ context.Context, logo *models.Logo) error {
	for _, existing := range r.logos {
		existing.IsActive = false
	}
	logo.IsActive = true
	r.logos = append(r.logos, logo)
	return nil
}

func (r *fakeLogoRepo) GetActive(_ context.Context) (*models.Logo, error) {
	for _, logo := range r.logos {
		if logo.IsActive {
			return logo, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeLogoRepo) ListStorageKeys(_ context.Context) ([]string, error) {
	keys := make([]string, 0, len(r.logos))
	for _, logo := range r.logos {
		keys = append(keys, logo.StorageKey)
	}
	return keys, nil
}

func (r *fakeLogoRepo) activeCount() int {
	count := 0
	for _, logo := range r.logos {
		if logo.IsActive {
			count++
		}
	}
	return count
}

type fakeStorage struct {
	objects map[string]ports.ObjectInfo
	removed []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string]ports.ObjectInfo)}
}

func (s *fakeStorage) putObject(key, contentType string, size int64, lastModified time.Time) {
	s.objects[key] = ports.ObjectInfo{
		Key:          key,
		Size:         size,
		ContentType:  contentType,
		LastModified: lastModified,
	}
}

func (s *fakeStorage) PresignedPutURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://blobs.test/put/" + key, nil
}

func (s *fakeStorage) PresignedGetURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://blobs.test/get/" + key, nil
}

func (s *fakeStorage) StatObject(_ context.Context, key string) (ports.ObjectInfo, error) {
	info, ok := s.objects[key]
	if !ok {
		return ports.ObjectInfo{}, errFakeNotFound
	}
	return info, nil
}

func (s *fakeStorage) ListObjects(_ context.Context, prefix string) ([]ports.ObjectInfo, error) {
	var out []ports.ObjectInfo
	for key, info := range s.objects {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			out = append(out, info)
		}
	}
	return out, nil
}

func (s *fakeStorage) RemoveObject(_ context.Context, key string) error {
	if _, ok := s.objects[key]; !ok {
		return errFakeNotFound
	}
	delete(s.objects, key)
	s.removed = append(s.removed, key)
	return nil
}

func (s *fakeStorage) GetProviderName() string {
	return "fake"
}
