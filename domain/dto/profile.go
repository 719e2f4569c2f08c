package dto

// CreateProfileRequest creates or replaces the caller's profile. Patient
// callers fill bed/case number, staff callers fill staff id/department;
// cross-role combinations are rejected in the service.
type CreateProfileRequest struct {
	Role string `json:"role" validate:"required,oneof=patient nurse porter supervisor"`
	Name string `json:"name" validate:"required,min=1,max=100"`

	BedNumber  string `json:"bedNumber" validate:"omitempty,max=20"`
	CaseNumber string `json:"caseNumber" validate:"omitempty,max=40"`

	StaffID    string `json:"staffId" validate:"omitempty,max=40"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

type ProfileResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	Role       string  `json:"role"`
	Name       string  `json:"name"`
	BedNumber  *string `json:"bedNumber,omitempty"`
	CaseNumber *string `json:"caseNumber,omitempty"`
	StaffID    *string `json:"staffId,omitempty"`
	Department *string `json:"department,omitempty"`
	LastActive *string `json:"lastActive,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}
