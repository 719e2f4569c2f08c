package dto

type LogoUploadTargetRequest struct {
	FileName    string `json:"fileName" validate:"required,min=1,max=255"`
	ContentType string `json:"contentType" validate:"required,max=100"`
}

// LogoUploadTargetResponse carries the presigned PUT target plus the key
// the caller passes back on registration.
type LogoUploadTargetResponse struct {
	UploadURL  string `json:"uploadUrl"`
	StorageKey string `json:"storageKey"`
	ExpiresIn  int    `json:"expiresIn"` // seconds
}

type RegisterLogoRequest struct {
	StorageKey string `json:"storageKey" validate:"required,min=1,max=512"`
}

type LogoResponse struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	UploadedBy string `json:"uploadedBy"`
	UploadedAt string `json:"uploadedAt"`
}
