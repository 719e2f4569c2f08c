package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/dto"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/policy"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/repositories"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/services"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/logger"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/pkg/utils"
)

type TaskServiceImpl struct {
	taskRepo    repositories.TaskRepository
	profileRepo repositories.ProfileRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, profileRepo repositories.ProfileRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:    taskRepo,
		profileRepo: profileRepo,
	}
}

// callerProfile resolves the caller before any task is touched.
func (s *TaskServiceImpl) callerProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, services.ErrProfileNotFound
	}
	return profile, nil
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	profile, err := s.callerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !policy.CanCreateTask(profile) {
		return nil, services.ErrNotAuthorized
	}

	now := time.Now()
	task := &models.Task{
		ID:            uuid.New(),
		TaskUID:       utils.GenerateTaskUID(),
		Type:          models.TaskType(req.Type),
		Priority:      models.TaskPriority(req.Priority),
		Status:        models.StatusNew,
		BedNumber:     req.BedNumber,
		PatientName:   req.PatientName,
		CaseNumber:    strPtrOrNil(req.CaseNumber),
		Description:   req.Description,
		Location:      strPtrOrNil(req.Location),
		CreatedBy:     profile.Role,
		CreatedByName: profile.Name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created",
		"task_id", task.ID,
		"task_uid", task.TaskUID,
		"type", task.Type,
		"priority", task.Priority,
		"created_by", task.CreatedBy,
	)

	return task, nil
}

// ListTasks is the visibility filter: each role gets its own projection of
// the queue, newest first.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	profile, err := s.callerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch profile.Role {
	case models.RolePatient:
		// Exact match on both bed and case number. A patient without a
		// case number sees nothing, matching bed alone is not enough.
		if profile.Bed() == "" || profile.Case() == "" {
			return []*models.Task{}, nil
		}
		return s.taskRepo.ListByBedAndCase(ctx, profile.Bed(), profile.Case())

	case models.RoleNurse:
		// Ward board: every nurse sees every nurse-created task.
		return s.taskRepo.ListByCreatorRole(ctx, models.RoleNurse)

	case models.RolePorter:
		return s.taskRepo.ListPorterBoard(ctx, models.PorterTaskTypes, profile.Name)

	case models.RoleSupervisor:
		return s.taskRepo.ListAll(ctx)
	}

	return []*models.Task{}, nil
}

func (s *TaskServiceImpl) AcceptTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) (*models.Task, error) {
	profile, err := s.callerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !policy.CanAcceptTask(profile) {
		return nil, services.ErrNotAuthorized
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, services.ErrNotFound
	}

	if task.Status != models.StatusNew {
		logger.WarnContext(ctx, "Accept rejected - task already claimed",
			"task_id", taskID, "status", task.Status)
		return nil, services.ErrInvalidState
	}

	now := time.Now()
	task.Status = models.StatusAccepted
	task.AssignedTo = &profile.Name
	task.AssignedToName = &profile.Name
	task.AcceptedAt = &now
	task.UpdatedAt = now

	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		logger.ErrorContext(ctx, "Failed to accept task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task accepted", "task_id", taskID, "assigned_to", profile.Name)
	return task, nil
}

func (s *TaskServiceImpl) AssignTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID, req *dto.AssignTaskRequest) (*models.Task, error) {
	profile, err := s.callerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !policy.CanAssignTask(profile) {
		return nil, services.ErrNotAuthorized
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, services.ErrNotFound
	}

	// Reassignment overwrites the assignee but never rewrites history:
	// acceptedAt is only filled when still empty.
	now := time.Now()
	task.AssignedTo = &req.AssignedTo
	task.AssignedToName = &req.AssignedTo
	if task.Status == models.StatusNew {
		task.Status = models.StatusAccepted
	}
	if task.AcceptedAt == nil {
		task.AcceptedAt = &now
	}
	task.UpdatedAt = now

	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		logger.ErrorContext(ctx, "Failed to assign task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task assigned", "task_id", taskID, "assigned_to", req.AssignedTo)
	return task, nil
}

func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, userID uuid.UUID, taskID uuid.UUID, req *dto.UpdateTaskStatusRequest) (*models.Task, error) {
	profile, err := s.callerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, services.ErrNotFound
	}

	if !policy.CanUpdateTask(profile, task) {
		return nil, services.ErrNotAuthorized
	}

	next := models.TaskStatus(req.Status)
	if !task.Status.CanAdvanceTo(next) {
		logger.WarnContext(ctx, "Illegal status transition",
			"task_id", taskID, "from", task.Status, "to", next)
		return nil, services.ErrInvalidState
	}

	// Each milestone timestamp is written exactly once, on first entry to
	// the state. Re-asserting the current status changes nothing.
	now := time.Now()
	switch next {
	case models.StatusAccepted:
		if task.AcceptedAt == nil {
			task.AcceptedAt = &now
		}
	case models.StatusInProgress:
		if task.StartedAt == nil {
			task.StartedAt = &now
		}
	case models.StatusDone:
		if task.CompletedAt == nil {
			task.CompletedAt = &now
		}
	}
	task.Status = next
	task.UpdatedAt = now

	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task status", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task status updated", "task_id", taskID, "status", next)
	return task, nil
}

func (s *TaskServiceImpl) UpdateNotes(ctx context.Context, userID uuid.UUID, taskID uuid.UUID, req *dto.UpdateTaskNotesRequest) (*models.Task, error) {
	profile, err := s.callerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, services.ErrNotFound
	}

	if !policy.CanUpdateTask(profile, task) {
		return nil, services.ErrNotAuthorized
	}

	task.Notes = strPtrOrNil(req.Notes)
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task notes", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task notes updated", "task_id", taskID)
	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) error {
	profile, err := s.callerProfile(ctx, userID)
	if err != nil {
		return err
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return services.ErrNotFound
	}

	if !policy.CanDeleteTask(profile, task) {
		return services.ErrNotAuthorized
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "deleted_by", profile.Name)
	return nil
}
