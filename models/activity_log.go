package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog records an admin write action for the audit trail.
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID      uuid.UUID      `json:"adminId" gorm:"column:admin_id;type:uuid;not null;index"`
	AdminEmail   string         `json:"adminEmail" gorm:"column:admin_email;type:varchar(255)"`
	Action       string         `json:"action" gorm:"type:varchar(100);not null"` // e.g. order.status_update
	ResourceType string         `json:"resourceType" gorm:"column:resource_type;type:varchar(100)"`
	ResourceID   string         `json:"resourceId" gorm:"column:resource_id;type:varchar(100);index"`
	ResourceName string         `json:"resourceName" gorm:"column:resource_name;type:varchar(255)"`
	Changes      datatypes.JSON `json:"changes,omitempty"`
	Status       string         `json:"status" gorm:"type:varchar(50);default:'success'"`
	IPAddress    string         `json:"ipAddress" gorm:"column:ip_address;type:varchar(64)"`
	UserAgent    string         `json:"userAgent" gorm:"column:user_agent;type:text"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"autoCreateTime;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}
