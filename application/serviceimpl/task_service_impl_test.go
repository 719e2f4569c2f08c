package serviceimpl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/dto"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/services"
)

type taskEnv struct {
	svc      services.TaskService
	tasks    *fakeTaskRepo
	profiles *fakeProfileRepo
}

func newTaskEnv() *taskEnv {
	tasks := newFakeTaskRepo()
	profiles := newFakeProfileRepo()
	return &taskEnv{
		svc:      NewTaskService(tasks, profiles),
		tasks:    tasks,
		profiles: profiles,
	}
}

func (e *taskEnv) seedProfile(role models.Role, name string) uuid.UUID {
	userID := uuid.New()
	e.profiles.profiles[userID] = &models.Profile{
		ID:     uuid.New(),
		UserID: userID,
		Role:   role,
		Name:   name,
	}
	return userID
}

func (e *taskEnv) seedPatient(name, bed, caseNum string) uuid.UUID {
	userID := e.seedProfile(models.RolePatient, name)
	e.profiles.profiles[userID].BedNumber = strPtrOrNil(bed)
	e.profiles.profiles[userID].CaseNumber = strPtrOrNil(caseNum)
	return userID
}

func validCreateRequest() *dto.CreateTaskRequest {
	return &dto.CreateTaskRequest{
		Type:        "transport",
		Priority:    "high",
		BedNumber:   "B-204",
		PatientName: "Somchai P.",
		Description: "Wheelchair transfer to radiology",
		CaseNumber:  "HN-5521",
	}
}

func TestCreateTask(t *testing.T) {
	env := newTaskEnv()
	nurse := env.seedProfile(models.RoleNurse, "Nurse Anong")

	task, err := env.svc.CreateTask(context.Background(), nurse, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, models.StatusNew, task.Status)
	assert.Equal(t, models.RoleNurse, task.CreatedBy)
	assert.Equal(t, "Nurse Anong", task.CreatedByName)
	assert.Nil(t, task.AssignedTo)
	assert.Nil(t, task.AcceptedAt)
	assert.True(t, strings.HasPrefix(task.TaskUID, "TASK-"))
}

func TestCreateTaskWithoutProfile(t *testing.T) {
	env := newTaskEnv()

	_, err := env.svc.CreateTask(context.Background(), uuid.New(), validCreateRequest())
	assert.ErrorIs(t, err, services.ErrProfileNotFound)
}

func TestTaskLifecycleHappyPath(t *testing.T) {
	env := newTaskEnv()
	ctx := context.Background()
	nurse := env.seedProfile(models.RoleNurse, "Nurse Anong")
	porter := env.seedProfile(models.RolePorter, "Porter Lek")

	task, err := env.svc.CreateTask(ctx, nurse, validCreateRequest())
	require.NoError(t, err)

	// claim
	task, err = env.svc.AcceptTask(ctx, porter, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, task.Status)
	assert.Equal(t, "Porter Lek", task.Assignee())
	require.NotNil(t, task.AcceptedAt)

	// start
	task, err = env.svc.UpdateStatus(ctx, porter, task.ID, &dto.UpdateTaskStatusRequest{Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, task.Status)
	require.NotNil(t, task.StartedAt)

	// finish
	task, err = env.svc.UpdateStatus(ctx, porter, task.ID, &dto.UpdateTaskStatusRequest{Status: "done"})
	require.NoError(t, err)
	assert.True(t, task.IsDone())
	require.NotNil(t, task.CompletedAt)

	// done is terminal: nothing moves it back
	_, err = env.svc.UpdateStatus(ctx, porter, task.ID, &dto.UpdateTaskStatusRequest{Status: "in_progress"})
	assert.ErrorIs(t, err, services.ErrInvalidState)
}

func TestAcceptAlreadyClaimedTask(t *testing.T) {
	env := newTaskEnv()
	ctx := context.Background()
	nurse := env.seedProfile(models.RoleNurse, "Nurse Anong")
	porterA := env.seedProfile(models.RolePorter, "Porter Lek")
	porterB := env.seedProfile(models.RolePorter, "Porter Chai")

	task, err := env.svc.CreateTask(ctx, nurse, validCreateRequest())
	require.NoError(t, err)

	_, err = env.svc.AcceptTask(ctx, porterA, task.ID)
	require.NoError(t, err)

	// The second claim loses and the first assignment stands.
	_, err = env.svc.AcceptTask(ctx, porterB, task.ID)
	assert.ErrorIs(t, err, services.ErrInvalidState)

	stored, err := env.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Porter Lek", stored.Assignee())
}

func TestAcceptMissingTask(t *testing.T) {
	env := newTaskEnv()
	porter := env.seedProfile(models.RolePorter, "Porter Lek")

	_, err := env.svc.AcceptTask(context.Background(), porter, uuid.New())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestStatusSkipRejected(t *testing.T) {
	env := newTaskEnv()
	ctx := context.Background()
	nurse := env.seedProfile(models.RoleNurse, "Nurse Anong")

	task, err := env.svc.CreateTask(ctx, nurse, validCreateRequest())
	require.NoError(t, err)

	_, err = env.svc.UpdateStatus(ctx, nurse, task.ID, &dto.UpdateTaskStatusRequest{Status: "in_progress"})
	assert.ErrorIs(t, err, services.ErrInvalidState)

	_, err = env.svc.UpdateStatus(ctx, nurse, task.ID, &dto.UpdateTaskStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, services.ErrInvalidState)
}

func TestSameStatusIsNoOp(t *testing.T) {
	env := newTaskEnv()
	ctx := context.Background()
	nurse := env.seedProfile(models.RoleNurse, "Nurse Anong")
	porter := env.seedProfile(models.RolePorter, "Porter Lek")

	task, err := env.svc.CreateTask(ctx, nurse, validCreateRequest())
	require.NoError(t, err)

	task, err = env.svc.AcceptTask(ctx, porter, task.ID)
	require.NoError(t, err)
	firstAccepted := *task.AcceptedAt

	time.Sleep(2 * time.Millisecond)

	// Re-asserting the current status must not rewrite the milestone.
	task, err = env.svc.UpdateStatus(ctx, porter, task.ID, &dto.UpdateTaskStatusRequest{Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, task.Status)
	assert.Equal(t, firstAccepted, *task.AcceptedAt)
}

func TestAssignTask(t *testing.T) {
	env := newTaskEnv()
	ctx := context.Background()
	nurse := env.seedProfile(models.RoleNurse, "Nurse Anong")
	supervisor := env.seedProfile(models.RoleSupervisor, "Supervisor Mint")

	task, err := env.svc.CreateTask(ctx, nurse, validCreateRequest())
	require.NoError(t, err)

	task, err = env.svc.AssignTask(ctx, supervisor, task.ID, &dto.AssignTaskRequest{AssignedTo: "Porter Lek"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, task.Status)
	assert.Equal(t, "Porter Lek", task.Assignee())
	require.NotNil(t, task.AcceptedAt)
	firstAccepted := *task.AcceptedAt

	time.Sleep(2 * time.Millisecond)

	// Reassignment overwrites the assignee but keeps the original
	// accepted timestamp.
	task, err = env.svc.AssignTask(ctx, supervisor, task.ID, &dto.AssignTaskRequest{AssignedTo: "Porter Chai"})
	require.NoError(t, err)
	assert.Equal(t, "Porter Chai", task.Assignee())
	assert.Equal(t, firstAccepted, *task.AcceptedAt)
}

func TestAssignTaskRequiresSupervisor(t *testing.T) {
	env := newTaskEnv()
	ctx := context.Background()
	nurse := env.seedProfile(models.RoleNurse, "Nurse Anong")
	porter := env.seedProfile(models.RolePorter, "Porter Lek")

	task, err := env.svc.CreateTask(ctx, nurse, validCreateRequest())
	require.NoError(t, err)

	_, err = env.svc.AssignTask(ctx, porter, task.ID, &dto.AssignTaskRequest{AssignedTo: "Porter Lek"})
	assert.ErrorIs(t, err, services.ErrNotAuthorized)
}

func TestUpdateRequiresAuthorization(t *testing.T) {
	env := newTaskEnv()
	ctx := context.Background()
	nurse := env.seedProfile(models.RoleNurse, "Nurse Anong")
	otherNurse := env.seedProfile(models.RoleNurse, "Nurse Fon")
	porter := env.seedProfile(models.RolePorter, "Porter Lek")

	task, err := env.svc.CreateTask(ctx, nurse, validCreateRequest())
	require.NoError(t, err)

	// An unrelated porter may not edit a nurse-created, unclaimed task.
	_, err = env.svc.UpdateNotes(ctx, porter, task.ID, &dto.UpdateTaskNotesRequest{Notes: "nope"})
	assert.ErrorIs(t, err, services.ErrNotAuthorized)

	// Any member of the creating role may. Ward responsibility is shared.
	updated, err := env.svc.UpdateNotes(ctx, otherNurse, task.ID, &dto.UpdateTaskNotesRequest{Notes: "patient ready"})
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "patient ready", *updated.Notes)
}

func TestDeleteTask(t *testing.T) {
	env := newTaskEnv()
	ctx := context.Background()
	nurse := env.seedProfile(models.RoleNurse, "Nurse Anong")
	otherNurse := env.seedProfile(models.RoleNurse, "Nurse Fon")
	porter := env.seedProfile(models.RolePorter, "Porter Lek")

	task, err := env.svc.CreateTask(ctx, nurse, validCreateRequest())
	require.NoError(t, err)

	err = env.svc.DeleteTask(ctx, porter, task.ID)
	assert.ErrorIs(t, err, services.ErrNotAuthorized)

	err = env.svc.DeleteTask(ctx, otherNurse, task.ID)
	require.NoError(t, err)

	err = env.svc.DeleteTask(ctx, otherNurse, task.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestVisibilityByRole(t *testing.T) {
	env := newTaskEnv()
	ctx := context.Background()

	nurse := env.seedProfile(models.RoleNurse, "Nurse Anong")
	supervisor := env.seedProfile(models.RoleSupervisor, "Supervisor Mint")
	porter := env.seedProfile(models.RolePorter, "Porter Lek")
	patient := env.seedPatient("Somchai P.", "B-204", "HN-5521")

	// Nurse raises a transport task for bed B-204 / case HN-5521.
	transport, err := env.svc.CreateTask(ctx, nurse, validCreateRequest())
	require.NoError(t, err)

	// Nurse raises an interpreter task for a different bed.
	interp := validCreateRequest()
	interp.Type = "interpreter"
	interp.BedNumber = "C-101"
	interp.CaseNumber = "HN-9000"
	_, err = env.svc.CreateTask(ctx, nurse, interp)
	require.NoError(t, err)

	// Supervisor raises a nursing task.
	nursing := validCreateRequest()
	nursing.Type = "nursing"
	nursing.BedNumber = "C-102"
	nursing.CaseNumber = ""
	_, err = env.svc.CreateTask(ctx, supervisor, nursing)
	require.NoError(t, err)

	t.Run("patient sees only own bed and case", func(t *testing.T) {
		tasks, err := env.svc.ListTasks(ctx, patient)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, transport.ID, tasks[0].ID)
	})

	t.Run("nurse sees all nurse-created tasks", func(t *testing.T) {
		tasks, err := env.svc.ListTasks(ctx, nurse)
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
		for _, task := range tasks {
			assert.Equal(t, models.RoleNurse, task.CreatedBy)
		}
	})

	t.Run("porter sees unclaimed porter-type tasks", func(t *testing.T) {
		// transport yes, interpreter and nursing never
		tasks, err := env.svc.ListTasks(ctx, porter)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, transport.ID, tasks[0].ID)
	})

	t.Run("supervisor sees everything", func(t *testing.T) {
		tasks, err := env.svc.ListTasks(ctx, supervisor)
		require.NoError(t, err)
		assert.Len(t, tasks, 3)
	})
}

func TestPatientWithoutCaseSeesNothing(t *testing.T) {
	env := newTaskEnv()
	ctx := context.Background()
	nurse := env.seedProfile(models.RoleNurse, "Nurse Anong")
	patient := env.seedPatient("Somchai P.", "B-204", "")

	// A task exists for the patient's bed, but without a case number the
	// patient cannot be matched to it.
	_, err := env.svc.CreateTask(ctx, nurse, validCreateRequest())
	require.NoError(t, err)

	tasks, err := env.svc.ListTasks(ctx, patient)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestPorterBoardKeepsClaimedOwnTasks(t *testing.T) {
	env := newTaskEnv()
	ctx := context.Background()
	nurse := env.seedProfile(models.RoleNurse, "Nurse Anong")
	porterA := env.seedProfile(models.RolePorter, "Porter Lek")
	porterB := env.seedProfile(models.RolePorter, "Porter Chai")

	task, err := env.svc.CreateTask(ctx, nurse, validCreateRequest())
	require.NoError(t, err)

	_, err = env.svc.AcceptTask(ctx, porterA, task.ID)
	require.NoError(t, err)

	// The claiming porter keeps the task on their board.
	tasks, err := env.svc.ListTasks(ctx, porterA)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	// Other porters no longer see it.
	tasks, err = env.svc.ListTasks(ctx, porterB)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
