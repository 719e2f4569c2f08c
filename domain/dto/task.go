package dto

type CreateTaskRequest struct {
	Type        string `json:"type" validate:"required,oneof=transport meal cleaning interpreter equipment nursing"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high urgent"`
	BedNumber   string `json:"bedNumber" validate:"required,max=20"`
	PatientName string `json:"patientName" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"required,min=1,max=2000"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	CaseNumber  string `json:"caseNumber" validate:"omitempty,max=40"`
}

type AssignTaskRequest struct {
	AssignedTo string `json:"assignedTo" validate:"required,min=1,max=100"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted in_progress done"`
}

type UpdateTaskNotesRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

type TaskResponse struct {
	ID          string  `json:"id"`
	TaskUID     string  `json:"taskId"`
	Type        string  `json:"type"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	BedNumber   string  `json:"bedNumber"`
	PatientName string  `json:"patientName"`
	CaseNumber  *string `json:"caseNumber,omitempty"`
	Description string  `json:"description"`
	Notes       *string `json:"notes,omitempty"`
	Location    *string `json:"location,omitempty"`

	CreatedBy      string  `json:"createdBy"`
	CreatedByName  string  `json:"createdByName"`
	AssignedTo     *string `json:"assignedTo,omitempty"`
	AssignedToName *string `json:"assignedToName,omitempty"`

	CreatedAt   string  `json:"createdAt"`
	AcceptedAt  *string `json:"acceptedAt,omitempty"`
	StartedAt   *string `json:"startedAt,omitempty"`
	CompletedAt *string `json:"completedAt,omitempty"`
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}
