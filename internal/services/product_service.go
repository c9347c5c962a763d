package services

import (
	"fmt"
	"strings"

	domainerrors "katalog/internal/errors"
	"katalog/internal/media"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImageStore persists uploaded product images. *media.Storage implements it.
type ImageStore interface {
	Save(name string, data []byte) (string, error)
	Delete(ref string) error
}

// ProductInput is the writable part of a product for create and full update.
// A nil Tags or Attributes slice leaves the current set untouched on update.
type ProductInput struct {
	Title       *string  `json:"title" validate:"required,notblank,max=255"`
	TimeMinutes *int     `json:"time_minutes" validate:"required,gt=0"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Tags        []string `json:"tags" validate:"omitempty,dive,uuid"`
	Attributes  []string `json:"attributes" validate:"omitempty,dive,uuid"`
}

// ProductPatch is ProductInput for partial updates: every field is optional.
type ProductPatch struct {
	Title       *string  `json:"title" validate:"omitnil,notblank,max=255"`
	TimeMinutes *int     `json:"time_minutes" validate:"omitnil,gt=0"`
	Price       *float64 `json:"price" validate:"omitnil,gt=0"`
	Tags        []string `json:"tags" validate:"omitempty,dive,uuid"`
	Attributes  []string `json:"attributes" validate:"omitempty,dive,uuid"`
}

func (in ProductInput) apply(p *models.Product) {
	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.TimeMinutes != nil {
		p.TimeMinutes = *in.TimeMinutes
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo          repositories.ProductRepository
	tagRepo       repositories.TagRepository
	attributeRepo repositories.AttributeRepository
	images        ImageStore
	events        EventPublisher
	validate      *validation.Validator
	log           *zap.Logger
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(
	repo repositories.ProductRepository,
	tagRepo repositories.TagRepository,
	attributeRepo repositories.AttributeRepository,
	images ImageStore,
	events EventPublisher,
	log *zap.Logger,
) *ProductService {
	return &ProductService{
		repo:          repo,
		tagRepo:       tagRepo,
		attributeRepo: attributeRepo,
		images:        images,
		events:        events,
		validate:      validation.New(),
		log:           log,
	}
}

// ListProducts returns the owner's products, optionally narrowed by tag and attribute ids.
func (s *ProductService) ListProducts(ownerID string, filter repositories.ProductFilter) ([]models.Product, error) {
	details := make(map[string]string)
	for field, ids := range map[string][]string{"tags": filter.TagIDs, "attributes": filter.AttributeIDs} {
		for _, id := range ids {
			if _, err := uuid.Parse(id); err != nil {
				details[field] = fmt.Sprintf("%q is not a valid UUID", id)
				break
			}
		}
	}
	if len(details) > 0 {
		return nil, domainerrors.ValidationWithDetails("invalid filter", details)
	}
	return s.repo.List(ownerID, filter)
}

// GetProduct returns one of the owner's products with tags and attributes loaded.
func (s *ProductService) GetProduct(ownerID, id string) (*models.Product, error) {
	return s.repo.GetByID(ownerID, id)
}

// CreateProduct validates in and stores a new product for ownerID.
func (s *ProductService) CreateProduct(ownerID string, in ProductInput) (*models.Product, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	product := &models.Product{UserID: ownerID}
	in.apply(product)
	if err := s.resolveRelations(ownerID, in, product); err != nil {
		return nil, err
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	publish(s.events, s.log, "product.created", ownerID, product.ID, productEventData(product))
	return product, nil
}

// UpdateProduct replaces the product's fields with in.
func (s *ProductService) UpdateProduct(ownerID, id string, in ProductInput) (*models.Product, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}
	return s.update(ownerID, id, in)
}

// PatchProduct updates only the fields present in patch.
func (s *ProductService) PatchProduct(ownerID, id string, patch ProductPatch) (*models.Product, error) {
	if err := s.validate.Validate(patch); err != nil {
		return nil, err
	}
	return s.update(ownerID, id, ProductInput(patch))
}

func (s *ProductService) update(ownerID, id string, in ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	in.apply(product)
	if err := s.resolveRelations(ownerID, in, product); err != nil {
		return nil, err
	}

	if err := s.repo.Update(product, in.Tags != nil, in.Attributes != nil); err != nil {
		return nil, err
	}

	publish(s.events, s.log, "product.updated", ownerID, product.ID, productEventData(product))
	return product, nil
}

// DeleteProduct removes the product and its stored image.
func (s *ProductService) DeleteProduct(ownerID, id string) error {
	product, err := s.repo.GetByID(ownerID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(product); err != nil {
		return err
	}

	s.removeImage(product.Image)
	publish(s.events, s.log, "product.deleted", ownerID, product.ID, nil)
	return nil
}

// UploadImage stores data as the product's image. Data that does not decode
// as an image is rejected and the product is left unchanged.
func (s *ProductService) UploadImage(ownerID, id string, data []byte) (*models.Product, error) {
	product, err := s.repo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	decoded, err := media.Decode(data)
	if err != nil {
		s.log.Debug("rejected product image", zap.String("product_id", id), zap.Error(err))
		return nil, domainerrors.FieldError("image",
			"upload a valid image. The file you uploaded was either not an image or a corrupted image")
	}

	blurHash, err := decoded.BlurHash()
	if err != nil {
		s.log.Warn("failed to compute blurhash", zap.String("product_id", id), zap.Error(err))
	}

	ref, err := s.images.Save(uuid.New().String()+decoded.Extension(), data)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to store image")
	}

	previous := product.Image
	product.Image = ref
	product.ImageBlurHash = blurHash
	if err := s.repo.Update(product, false, false); err != nil {
		s.removeImage(ref)
		return nil, err
	}
	s.removeImage(previous)

	publish(s.events, s.log, "product.image_uploaded", ownerID, product.ID, map[string]any{
		"image":  ref,
		"format": decoded.Format,
		"width":  decoded.Width,
		"height": decoded.Height,
	})
	return product, nil
}

func (s *ProductService) removeImage(ref string) {
	if ref == "" {
		return
	}
	if err := s.images.Delete(ref); err != nil {
		s.log.Warn("failed to remove product image", zap.String("image", ref), zap.Error(err))
	}
}

// resolveRelations swaps requested tag and attribute ids for the owner's
// records. Ids the owner does not have fail validation.
func (s *ProductService) resolveRelations(ownerID string, in ProductInput, product *models.Product) error {
	details := make(map[string]string)

	if in.Tags != nil {
		tags, missing, err := resolveLabels(s.tagRepo, ownerID, in.Tags)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			details["tags"] = "invalid tag IDs: " + strings.Join(missing, ", ")
		}
		product.Tags = tags
	}

	if in.Attributes != nil {
		attributes, missing, err := resolveLabels(s.attributeRepo, ownerID, in.Attributes)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			details["attributes"] = "invalid attribute IDs: " + strings.Join(missing, ", ")
		}
		product.Attributes = attributes
	}

	if len(details) > 0 {
		return domainerrors.ValidationWithDetails("validation failed", details)
	}
	return nil
}

func productEventData(p *models.Product) map[string]any {
	return map[string]any{
		"title":        p.Title,
		"time_minutes": p.TimeMinutes,
		"price":        p.Price,
		"tags":         p.TagIDs(),
		"attributes":   p.AttributeIDs(),
	}
}
