package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/dto"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
)

// TaskService is the task queue surface. Every call resolves the caller's
// profile first; an unauthenticated or profile-less caller gets the
// matching taxonomy error before any task is touched.
type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	// ListTasks returns the caller's role-filtered projection of the
	// queue, newest first.
	ListTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	// AcceptTask claims a task that is still new.
	AcceptTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) (*models.Task, error)
	// AssignTask force-assigns on behalf of a supervisor, overwriting any
	// previous assignee.
	AssignTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID, req *dto.AssignTaskRequest) (*models.Task, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, taskID uuid.UUID, req *dto.UpdateTaskStatusRequest) (*models.Task, error)
	UpdateNotes(ctx context.Context, userID uuid.UUID, taskID uuid.UUID, req *dto.UpdateTaskNotesRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) error
}
