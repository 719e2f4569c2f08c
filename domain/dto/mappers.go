package dto

import (
	"time"

	"github.com/Abdul-Hannan-21/CareRelay-Healthcare-Task-Management-System/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}
}

func ProfileToProfileResponse(p *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:         p.ID.String(),
		UserID:     p.UserID.String(),
		Role:       string(p.Role),
		Name:       p.Name,
		BedNumber:  p.BedNumber,
		CaseNumber: p.CaseNumber,
		StaffID:    p.StaffID,
		Department: p.Department,
		LastActive: formatTimePtr(p.LastActive),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}

func TaskToTaskResponse(t *models.Task) *TaskResponse {
	return &TaskResponse{
		ID:             t.ID.String(),
		TaskUID:        t.TaskUID,
		Type:           string(t.Type),
		Priority:       string(t.Priority),
		Status:         string(t.Status),
		BedNumber:      t.BedNumber,
		PatientName:    t.PatientName,
		CaseNumber:     t.CaseNumber,
		Description:    t.Description,
		Notes:          t.Notes,
		Location:       t.Location,
		CreatedBy:      string(t.CreatedBy),
		CreatedByName:  t.CreatedByName,
		AssignedTo:     t.AssignedTo,
		AssignedToName: t.AssignedToName,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
		AcceptedAt:     formatTimePtr(t.AcceptedAt),
		StartedAt:      formatTimePtr(t.StartedAt),
		CompletedAt:    formatTimePtr(t.CompletedAt),
	}
}

func TasksToTaskListResponse(tasks []*models.Task) *TaskListResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = *TaskToTaskResponse(t)
	}
	return &TaskListResponse{Tasks: out, Total: len(out)}
}

func LogoToLogoResponse(l *models.Logo, url string) *LogoResponse {
	return &LogoResponse{
		ID:         l.ID.String(),
		URL:        url,
		UploadedBy: l.UploadedBy,
		UploadedAt: l.UploadedAt.Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
