package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/services"
)

func seedAnalyticsTask(repo *fakeTaskRepo, status models.TaskStatus, priority models.TaskPriority, taskType models.TaskType, createdBy models.Role, age time.Duration) {
	repo.tasks[uuid.New()] = &models.Task{
		ID:          uuid.New(),
		TaskUID:     "TASK-test",
		Type:        taskType,
		Priority:    priority,
		Status:      status,
		BedNumber:   "B-1",
		PatientName: "P",
		Description: "d",
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().Add(-age),
	}
}

func TestGetAnalyticsRequiresSupervisor(t *testing.T) {
	tasks := newFakeTaskRepo()
	profiles := newFakeProfileRepo()
	svc := NewAnalyticsService(tasks, profiles)

	nurseID := uuid.New()
	profiles.profiles[nurseID] = &models.Profile{ID: uuid.New(), UserID: nurseID, Role: models.RoleNurse, Name: "Nurse Anong"}

	_, err := svc.GetAnalytics(context.Background(), nurseID)
	assert.ErrorIs(t, err, services.ErrNotAuthorized)

	_, err = svc.GetAnalytics(context.Background(), uuid.New())
	assert.ErrorIs(t, err, services.ErrProfileNotFound)
}

func TestGetAnalyticsCounts(t *testing.T) {
	tasks := newFakeTaskRepo()
	profiles := newFakeProfileRepo()
	svc := NewAnalyticsService(tasks, profiles)

	supID := uuid.New()
	profiles.profiles[supID] = &models.Profile{ID: uuid.New(), UserID: supID, Role: models.RoleSupervisor, Name: "Supervisor Mint"}

	// two active (one urgent), one urgent but done, one old completed
	seedAnalyticsTask(tasks, models.StatusNew, models.PriorityUrgent, models.TaskTypeTransport, models.RoleNurse, time.Hour)
	seedAnalyticsTask(tasks, models.StatusInProgress, models.PriorityLow, models.TaskTypeMeal, models.RoleNurse, 2*time.Hour)
	seedAnalyticsTask(tasks, models.StatusDone, models.PriorityUrgent, models.TaskTypeCleaning, models.RolePatient, 3*time.Hour)
	seedAnalyticsTask(tasks, models.StatusDone, models.PriorityMedium, models.TaskTypeNursing, models.RoleSupervisor, 10*24*time.Hour)

	resp, err := svc.GetAnalytics(context.Background(), supID)
	require.NoError(t, err)

	assert.Equal(t, 4, resp.TotalTasks)
	assert.Equal(t, 2, resp.ActiveTasks)
	assert.Equal(t, 2, resp.CompletedTasks)
	// urgent counts only open work: the done urgent task is excluded
	assert.Equal(t, 1, resp.UrgentTasks)
	// the 10-day-old task falls outside the 7-day window
	assert.Equal(t, 3, resp.RecentTasksCount)

	assert.Equal(t, 1, resp.StatusCounts["new"])
	assert.Equal(t, 0, resp.StatusCounts["accepted"])
	assert.Equal(t, 1, resp.StatusCounts["in_progress"])
	assert.Equal(t, 2, resp.StatusCounts["done"])

	assert.Equal(t, 2, resp.PriorityCounts["urgent"])
	assert.Equal(t, 2, resp.RoleCounts["nurse"])
	assert.Equal(t, 1, resp.TypeCounts["transport"])
}

func TestGetAnalyticsZeroFilledBreakdowns(t *testing.T) {
	tasks := newFakeTaskRepo()
	profiles := newFakeProfileRepo()
	svc := NewAnalyticsService(tasks, profiles)

	supID := uuid.New()
	profiles.profiles[supID] = &models.Profile{ID: uuid.New(), UserID: supID, Role: models.RoleSupervisor, Name: "Supervisor Mint"}

	resp, err := svc.GetAnalytics(context.Background(), supID)
	require.NoError(t, err)

	assert.Zero(t, resp.TotalTasks)

	// Every enum value must be present even with an empty queue, so
	// dashboard widgets never hit a missing key.
	assert.Len(t, resp.StatusCounts, len(models.TaskStatuses))
	assert.Len(t, resp.PriorityCounts, len(models.TaskPriorities))
	assert.Len(t, resp.TypeCounts, len(models.TaskTypes))
	assert.Len(t, resp.RoleCounts, len(models.Roles))

	for _, taskType := range models.TaskTypes {
		count, ok := resp.TypeCounts[string(taskType)]
		assert.True(t, ok)
		assert.Zero(t, count)
	}
}
