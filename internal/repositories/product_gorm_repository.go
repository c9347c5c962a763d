package repositories

import (
	"errors"
	"fmt"

	domainerrors "katalog/internal/errors"
	"katalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name")
}

func (r *GORMProductRepository) withRelations() *gorm.DB {
	return r.db.Preload("Tags", orderByName).Preload("Attributes", orderByName)
}

// List retrieves the owner's products, newest first.
func (r *GORMProductRepository) List(ownerID string, filter ProductFilter) ([]models.Product, error) {
	products := make([]models.Product, 0)
	query := r.withRelations().Where("user_id = ?", ownerID)
	if len(filter.TagIDs) > 0 {
		query = query.Where("id IN (?)",
			r.db.Table("product_tags").Select("product_id").Where("tag_id IN ?", filter.TagIDs))
	}
	if len(filter.AttributeIDs) > 0 {
		query = query.Where("id IN (?)",
			r.db.Table("product_attributes").Select("product_id").Where("attribute_id IN ?", filter.AttributeIDs))
	}
	if err := query.Order("created_at DESC").Order("id DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves one of the owner's products with its tags and attributes.
func (r *GORMProductRepository) GetByID(ownerID, id string) (*models.Product, error) {
	var product models.Product
	if err := r.withRelations().First(&product, "id = ? AND user_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.NotFoundf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create inserts the product and its join rows. Referenced tags and
// attributes must already exist; they are linked, never upserted.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Omit("Tags.*", "Attributes.*").Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update saves the product in a single transaction.
func (r *GORMProductRepository) Update(product *models.Product, replaceTags, replaceAttributes bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(product).
			Where("user_id = ?", product.UserID).
			Select("Title", "TimeMinutes", "Price", "Image", "ImageBlurHash").
			Omit(clause.Associations).
			Updates(product)
		if res.Error != nil {
			return fmt.Errorf("failed to update product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domainerrors.NotFoundf("product with ID %s not found", product.ID)
		}

		if replaceTags {
			if err := replaceAssociation(tx, product, "Tags", product.Tags); err != nil {
				return err
			}
		}
		if replaceAttributes {
			if err := replaceAssociation(tx, product, "Attributes", product.Attributes); err != nil {
				return err
			}
		}
		return nil
	})
}

func replaceAssociation[T any](tx *gorm.DB, product *models.Product, name string, values []T) error {
	assoc := tx.Model(product).Omit(name + ".*").Association(name)
	var err error
	if len(values) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(values)
	}
	if err != nil {
		return fmt.Errorf("failed to replace product %s: %w", name, err)
	}
	return nil
}

// Delete removes the product and its join rows.
func (r *GORMProductRepository) Delete(product *models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(product).Association("Tags").Clear(); err != nil {
			return fmt.Errorf("failed to clear product tags: %w", err)
		}
		if err := tx.Model(product).Association("Attributes").Clear(); err != nil {
			return fmt.Errorf("failed to clear product attributes: %w", err)
		}
		res := tx.Where("user_id = ?", product.UserID).Delete(&models.Product{}, "id = ?", product.ID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domainerrors.NotFoundf("product with ID %s not found", product.ID)
		}
		return nil
	})
}
