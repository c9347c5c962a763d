package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog entry owned by one user.
type Product struct {
	ID            string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string      `json:"-" gorm:"index;type:varchar(36);not null"`
	Title         string      `json:"title" gorm:"type:varchar(255);not null"`
	TimeMinutes   int         `json:"time_minutes" gorm:"not null"`
	Price         float64     `json:"price" gorm:"not null"`
	Image         string      `json:"image"` // path relative to the media root, empty when unset
	ImageBlurHash string      `json:"image_blurhash"`
	Tags          []Tag       `json:"tags" gorm:"many2many:product_tags"`
	Attributes    []Attribute `json:"attributes" gorm:"many2many:product_attributes"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// BeforeCreate assigns a UUID when the caller did not.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TagIDs returns the ids of the product's tags.
func (p *Product) TagIDs() []string {
	ids := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// AttributeIDs returns the ids of the product's attributes.
func (p *Product) AttributeIDs() []string {
	ids := make([]string, 0, len(p.Attributes))
	for _, a := range p.Attributes {
		ids = append(ids, a.ID)
	}
	return ids
}
