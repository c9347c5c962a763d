package repositories

import (
	"katalog/internal/models"
)

// ProductFilter narrows a product listing. A product matches when it references
// any of the given tags and any of the given attributes; empty lists do not filter.
type ProductFilter struct {
	TagIDs       []string
	AttributeIDs []string
}

// ProductRepository defines the interface for product data access.
// Reads and deletes are scoped to ownerID; writes use product.UserID.
type ProductRepository interface {
	List(ownerID string, filter ProductFilter) ([]models.Product, error)
	GetByID(ownerID, id string) (*models.Product, error)
	Create(product *models.Product) error
	// Update saves scalar fields. Tag and attribute sets are replaced only when
	// the matching flag is set.
	Update(product *models.Product, replaceTags, replaceAttributes bool) error
	Delete(product *models.Product) error
}
