package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is a customer pickup/delivery location. Orders keep their own
// JSON snapshot, so editing or removing an address never rewrites history.
type Address struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"column:user_id;type:uuid;not null;index"`
	Label     *string   `json:"label,omitempty" gorm:"type:varchar(100)"`
	Street    string    `json:"street" gorm:"type:varchar(255);not null"`
	City      string    `json:"city" gorm:"type:varchar(100);not null"`
	State     *string   `json:"state,omitempty" gorm:"type:varchar(100)"`
	Zip       *string   `json:"zip,omitempty" gorm:"type:varchar(20)"`
	Country   string    `json:"country" gorm:"type:varchar(100);not null"`
	Phone     *string   `json:"phone,omitempty" gorm:"type:varchar(50)"`
	IsDefault bool      `json:"isDefault" gorm:"column:is_default;default:false"`
	Status    string    `json:"status" gorm:"type:varchar(50);default:'active'"` // active | deleted
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Address) TableName() string {
	return "addresses"
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type CreateAddressRequest struct {
	Label     *string `json:"label"`
	Street    string  `json:"street" binding:"required"`
	City      string  `json:"city" binding:"required"`
	State     *string `json:"state"`
	Zip       *string `json:"zip"`
	Country   string  `json:"country" binding:"required"`
	Phone     *string `json:"phone"`
	IsDefault bool    `json:"is_default"`
}

type UpdateAddressRequest struct {
	Label   *string `json:"label"`
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Zip     *string `json:"zip"`
	Country *string `json:"country"`
	Phone   *string `json:"phone"`
}
