package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a catalog account. Email is the login identifier.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Name        string    `json:"name" gorm:"type:varchar(255)"`
	Password    string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	IsStaff     bool      `json:"is_staff" gorm:"not null;default:false"`
	IsSuperuser bool      `json:"is_superuser" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// NormalizeEmail trims surrounding space and lowercases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
