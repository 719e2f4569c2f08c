package models

import (
	"time"

	"github.com/google/uuid"
)

// Logo is one uploaded branding image. At most one row is active at any
// time; the swap deactivates every other row before inserting the new one.
type Logo struct {
	ID         uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StorageKey string    `gorm:"not null"`
	UploadedBy string    `gorm:"not null"`
	UploadedAt time.Time `gorm:"not null"`
	IsActive   bool      `gorm:"index;default:false"`
}

func (Logo) TableName() string {
	return "logos"
}
