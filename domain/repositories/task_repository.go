package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
)

// TaskRepository exposes the queue plus the per-role projections the
// visibility filter needs. Every list comes back newest-first.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	Update(ctx context.Context, id uuid.UUID, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListAll is the supervisor view and the analytics input.
	ListAll(ctx context.Context) ([]*models.Task, error)
	// ListByBedAndCase is the patient view: exact match on both fields.
	ListByBedAndCase(ctx context.Context, bedNumber, caseNumber string) ([]*models.Task, error)
	// ListByCreatorRole is the nurse view: every task the role created.
	ListByCreatorRole(ctx context.Context, role models.Role) ([]*models.Task, error)
	// ListPorterBoard: tasks of the given types that are unclaimed or
	// assigned to the named porter.
	ListPorterBoard(ctx context.Context, types []models.TaskType, assigneeName string) ([]*models.Task, error)
}
