package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskType is one of the six fixed service categories.
type TaskType string

const (
	TaskTypeTransport   TaskType = "transport"
	TaskTypeMeal        TaskType = "meal"
	TaskTypeCleaning    TaskType = "cleaning"
	TaskTypeInterpreter TaskType = "interpreter"
	TaskTypeEquipment   TaskType = "equipment"
	TaskTypeNursing     TaskType = "nursing"
)

// TaskTypes lists every valid task type.
var TaskTypes = []TaskType{
	TaskTypeTransport,
	TaskTypeMeal,
	TaskTypeCleaning,
	TaskTypeInterpreter,
	TaskTypeEquipment,
	TaskTypeNursing,
}

// PorterTaskTypes are the categories porters can pick up. Interpreter and
// nursing work never shows on the porter board.
var PorterTaskTypes = []TaskType{
	TaskTypeTransport,
	TaskTypeEquipment,
	TaskTypeCleaning,
	TaskTypeMeal,
}

func (t TaskType) Valid() bool {
	for _, v := range TaskTypes {
		if t == v {
			return true
		}
	}
	return false
}

// TaskPriority is a 4-level ordinal.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

var TaskPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p TaskPriority) Valid() bool {
	for _, v := range TaskPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// TaskStatus is the 4-state lifecycle: new -> accepted -> in_progress -> done.
type TaskStatus string

const (
	StatusNew        TaskStatus = "new"
	StatusAccepted   TaskStatus = "accepted"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

var TaskStatuses = []TaskStatus{StatusNew, StatusAccepted, StatusInProgress, StatusDone}

var statusOrder = map[TaskStatus]int{
	StatusNew:        0,
	StatusAccepted:   1,
	StatusInProgress: 2,
	StatusDone:       3,
}

func (s TaskStatus) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

// CanAdvanceTo reports whether a transition from s to next is legal.
// Transitions run forward one step at a time, never backward, and done is
// terminal. Re-asserting the current status is allowed as a no-op.
func (s TaskStatus) CanAdvanceTo(next TaskStatus) bool {
	cur, ok := statusOrder[s]
	if !ok {
		return false
	}
	nxt, ok := statusOrder[next]
	if !ok {
		return false
	}
	return nxt == cur || nxt == cur+1
}

// Task is a unit of requested hospital service work.
type Task struct {
	ID      uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TaskUID string    `gorm:"not null"` // human-readable label, not required to be unique

	Type     TaskType     `gorm:"index;not null"`
	Priority TaskPriority `gorm:"index;not null"`
	Status   TaskStatus   `gorm:"index;not null;default:'new'"`

	// Patient context
	BedNumber   string  `gorm:"index;not null"`
	PatientName string  `gorm:"not null"`
	CaseNumber  *string `gorm:"index"`

	Description string `gorm:"not null"`
	Notes       *string
	Location    *string

	// Creator is recorded at role granularity; edit rights are shared across
	// the creating role (ward responsibility), so the role is what matters.
	CreatedBy     Role   `gorm:"index;not null"`
	CreatedByName string `gorm:"not null"`

	AssignedTo     *string `gorm:"index"`
	AssignedToName *string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	AcceptedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// Assignee returns the assigned display name or "" when unclaimed.
func (t *Task) Assignee() string {
	if t.AssignedTo == nil {
		return ""
	}
	return *t.AssignedTo
}

// IsDone reports whether the task reached the terminal state.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}
