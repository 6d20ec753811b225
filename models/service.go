package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CleaningService is a catalog item customers can order (dry cleaning,
// ironing, etc.). Price is the CURRENT price; historical orders carry
// their own snapshot and must not be re-priced when this changes.
type CleaningService struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string    `json:"name" gorm:"type:varchar(255);not null"`
	Description     string    `json:"description" gorm:"type:text"`
	Price           float64   `json:"price" gorm:"type:numeric(10,2);not null"`
	TurnaroundHours int       `json:"turnaroundHours" gorm:"column:turnaround_hours;default:48"`
	IsActive        bool      `json:"isActive" gorm:"column:is_active;default:true;index"`
	CreatedAt       time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (CleaningService) TableName() string {
	return "cleaning_services"
}

func (s *CleaningService) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	TurnaroundHours int     `json:"turnaround_hours" binding:"omitempty,gt=0"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price" binding:"omitempty,gt=0"`
	TurnaroundHours *int     `json:"turnaround_hours" binding:"omitempty,gt=0"`
	IsActive        *bool    `json:"is_active"`
}
