package handlers

import (
	"katalog/internal/dto"
	"katalog/internal/middleware"
	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LabelHandler serves /tags and /attributes.
type LabelHandler[T models.Tag | models.Attribute] struct {
	service *services.LabelService[T]
	path    string
}

// NewTagHandler creates the handler for /tags.
func NewTagHandler(service *services.LabelService[models.Tag]) *LabelHandler[models.Tag] {
	return &LabelHandler[models.Tag]{service: service, path: "/tags"}
}

// NewAttributeHandler creates the handler for /attributes.
func NewAttributeHandler(service *services.LabelService[models.Attribute]) *LabelHandler[models.Attribute] {
	return &LabelHandler[models.Attribute]{service: service, path: "/attributes"}
}

// RegisterRoutes registers the label routes behind requireAuth.
func (h *LabelHandler[T]) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	routes := router.Group(h.path, requireAuth)
	routes.Get("/", h.HandleList)
	routes.Post("/", h.HandleCreate)
}

// HandleList lists the caller's labels. ?assigned_only=1 keeps only labels used by a product.
func (h *LabelHandler[T]) HandleList(c *fiber.Ctx) error {
	labels, err := h.service.List(middleware.CurrentUserID(c), c.QueryBool("assigned_only", false))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromLabels(labels))
}

// LabelRequest is the body of POST /tags and POST /attributes.
type LabelRequest struct {
	Name string `json:"name"`
}

// HandleCreate creates a label owned by the caller.
func (h *LabelHandler[T]) HandleCreate(c *fiber.Ctx) error {
	var req LabelRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	label, err := h.service.Create(middleware.CurrentUserID(c), req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromLabel(*label))
}
