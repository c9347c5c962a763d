package repositories

import (
	"fmt"

	"katalog/internal/models"

	"gorm.io/gorm"
)

// GORMLabelRepository is a GORM implementation of LabelRepository.
type GORMLabelRepository[T models.Tag | models.Attribute] struct {
	db         *gorm.DB
	kind       string
	joinTable  string
	joinColumn string
}

// NewGORMTagRepository returns a label repository over the tags table.
func NewGORMTagRepository(db *gorm.DB) *GORMLabelRepository[models.Tag] {
	return &GORMLabelRepository[models.Tag]{
		db:         db,
		kind:       "tag",
		joinTable:  "product_tags",
		joinColumn: "tag_id",
	}
}

// NewGORMAttributeRepository returns a label repository over the attributes table.
func NewGORMAttributeRepository(db *gorm.DB) *GORMLabelRepository[models.Attribute] {
	return &GORMLabelRepository[models.Attribute]{
		db:         db,
		kind:       "attribute",
		joinTable:  "product_attributes",
		joinColumn: "attribute_id",
	}
}

// List retrieves the owner's labels, newest name first.
func (r *GORMLabelRepository[T]) List(ownerID string, assignedOnly bool) ([]T, error) {
	labels := make([]T, 0)
	query := r.db.Where("user_id = ?", ownerID)
	if assignedOnly {
		// IN over the join rows yields each label once however many products use it.
		assigned := r.db.Table(r.joinTable).
			Select(r.joinTable+"."+r.joinColumn).
			Joins("JOIN products ON products.id = "+r.joinTable+".product_id").
			Where("products.user_id = ?", ownerID)
		query = query.Where("id IN (?)", assigned)
	}
	if err := query.Order("name DESC").Find(&labels).Error; err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", r.kind, err)
	}
	return labels, nil
}

// Create creates a new label in the database.
func (r *GORMLabelRepository[T]) Create(label *T) error {
	if err := r.db.Create(label).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", r.kind, err)
	}
	return nil
}

// GetByIDs retrieves the owner's labels among ids.
func (r *GORMLabelRepository[T]) GetByIDs(ownerID string, ids []string) ([]T, error) {
	labels := make([]T, 0, len(ids))
	if len(ids) == 0 {
		return labels, nil
	}
	if err := r.db.Where("user_id = ? AND id IN ?", ownerID, ids).Find(&labels).Error; err != nil {
		return nil, fmt.Errorf("failed to get %ss by ID: %w", r.kind, err)
	}
	return labels, nil
}
