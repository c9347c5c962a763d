package repositories

import "katalog/internal/models"

// LabelRepository defines data access for user-owned labels (tags and attributes).
// Every method is scoped to ownerID.
type LabelRepository[T models.Tag | models.Attribute] interface {
	// List returns the owner's labels ordered by name descending. With assignedOnly
	// set, only labels referenced by at least one of the owner's products are returned.
	List(ownerID string, assignedOnly bool) ([]T, error)
	Create(label *T) error
	// GetByIDs returns the subset of ids that exist and belong to ownerID.
	GetByIDs(ownerID string, ids []string) ([]T, error)
}

type (
	TagRepository       = LabelRepository[models.Tag]
	AttributeRepository = LabelRepository[models.Attribute]
)
