package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Label is the shape shared by tags and attributes: a name owned by one user.
type Label struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	UserID    string    `json:"-" gorm:"index;type:varchar(36);not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (l *Label) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

func (l Label) String() string {
	return l.Name
}

// Tag labels products, e.g. "Outdoors".
type Tag struct {
	Label
}

// Attribute describes a product property, e.g. "Waterproof".
type Attribute struct {
	Label
}
