package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvr-infra/materials-api/internal/application/catalog"
	"github.com/mvr-infra/materials-api/internal/application/dto"
)

// CatalogHandler serves the per-category item catalog.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// RegisterItem godoc
// @Summary      Register a material in a category's catalog
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        category  path  string  true  "ppe | mechanical | scaffolding | electrical | consumables"
// @Param        body      body  dto.RegisterItemRequest  true  "name, unit, per_unit_weight (weight-tracked categories)"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/catalog/{category}/items [post]
func (h *CatalogHandler) RegisterItem(c *fiber.Ctx) error {
	var in dto.RegisterItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	item, err := h.uc.RegisterItem(c.Params("category"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// ListItems godoc
// @Summary      List a category's catalog
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        category  path  string  true  "category"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/catalog/{category}/items [get]
func (h *CatalogHandler) ListItems(c *fiber.Ctx) error {
	list, err := h.uc.ListItems(c.Params("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// LookupItem godoc
// @Summary      Look up one catalog entry by name
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        category  path  string  true  "category"
// @Param        name      path  string  true  "item name (case-insensitive)"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/{category}/items/{name} [get]
func (h *CatalogHandler) LookupItem(c *fiber.Ctx) error {
	item, err := h.uc.LookupItem(c.Params("category"), c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}
