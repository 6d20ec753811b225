package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email         string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string     `json:"name" gorm:"type:varchar(255);not null"`
	PasswordHash  string     `json:"-" gorm:"column:password_hash;type:varchar(255);not null"`
	Phone         *string    `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Status        string     `json:"status" gorm:"type:varchar(50);default:'active';index"`
	EmailVerified bool       `json:"emailVerified" gorm:"column:email_verified;default:false"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
	SuspendedAt   *time.Time `json:"suspendedAt,omitempty" gorm:"column:suspended_at"`

	// Relationships
	Addresses []Address `json:"addresses,omitempty" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// UserResponse is the public-facing customer data
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Phone         *string   `json:"phone"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

// RegisterRequest for customer sign-up
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Phone    *string `json:"phone"`
}

// LoginRequest for customer sign-in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UpdateProfileRequest for profile updates
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// CMSCustomerListRow is one row in the admin customers table
type CMSCustomerListRow struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Orders      int        `json:"orders"`
	TotalSpent  float64    `json:"total_spent"`
	LastOrderAt *time.Time `json:"last_order_at,omitempty"`
	Status      string     `json:"status"`
	JoinDate    time.Time  `json:"join_date"`
}
