package handlers

import (
	"io"
	"strings"

	"katalog/internal/dto"
	domainerrors "katalog/internal/errors"
	"katalog/internal/middleware"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service        *services.ProductService
	maxUploadBytes int64
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, maxUploadBytes int) *ProductHandler {
	return &ProductHandler{
		service:        service,
		maxUploadBytes: int64(maxUploadBytes),
	}
}

// RegisterRoutes registers the product routes behind requireAuth.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	productRoutes := router.Group("/products", requireAuth)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Patch("/:id", h.HandlePatchProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
	productRoutes.Post("/:id/upload-image", h.HandleUploadImage)
}

// HandleGetProducts lists the caller's products. ?tags= and ?attributes= take
// comma-separated IDs.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		TagIDs:       splitIDs(c.Query("tags")),
		AttributeIDs: splitIDs(c.Query("attributes")),
	}

	products, err := h.service.ListProducts(middleware.CurrentUserID(c), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromProducts(products))
}

// HandleGetProductByID returns a product with nested tags and attributes.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(middleware.CurrentUserID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromProductDetail(product))
}

// HandleCreateProduct creates a product owned by the caller.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	product, err := h.service.CreateProduct(middleware.CurrentUserID(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromProduct(product))
}

// HandleUpdateProduct replaces a product's fields.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	product, err := h.service.UpdateProduct(middleware.CurrentUserID(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromProduct(product))
}

// HandlePatchProduct updates the fields present in the body.
func (h *ProductHandler) HandlePatchProduct(c *fiber.Ctx) error {
	var patch services.ProductPatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}

	product, err := h.service.PatchProduct(middleware.CurrentUserID(c), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromProduct(product))
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(middleware.CurrentUserID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleUploadImage stores the multipart "image" file as the product's image.
func (h *ProductHandler) HandleUploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.FieldError("image", "no file was submitted")
	}
	if fileHeader.Size > h.maxUploadBytes {
		return domainerrors.FieldError("image", "file is too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainerrors.FieldError("image", "the submitted file could not be read")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes))
	if err != nil {
		return domainerrors.FieldError("image", "the submitted file could not be read")
	}

	product, err := h.service.UploadImage(middleware.CurrentUserID(c), c.Params("id"), data)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromProduct(product))
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
