package handler

import (
	"net/http"

	"causes/internal/delivery/http/response"
	"causes/internal/domain/entity"
	"causes/internal/domain/schema"

	"github.com/labstack/echo/v4"
)

// SchemaHandler exposes the field schema registry so clients can render
// authoring forms without hardcoding the category field sets.
type SchemaHandler struct{}

// NewSchemaHandler creates a new SchemaHandler instance
func NewSchemaHandler() *SchemaHandler {
	return &SchemaHandler{}
}

// schemasResponse bundles the common schema with every category schema.
type schemasResponse struct {
	Common     []schema.FieldDefinition                    `json:"common"`
	Categories map[entity.Category][]schema.FieldDefinition `json:"categories"`
}

// ListSchemas returns the common field schema and all category schemas.
func (h *SchemaHandler) ListSchemas(c echo.Context) error {
	categories := make(map[entity.Category][]schema.FieldDefinition, len(entity.Categories()))
	for _, category := range entity.Categories() {
		categories[category] = schema.SchemaFor(category)
	}

	return response.Success(c, http.StatusOK, schemasResponse{
		Common:     schema.CommonSchema(),
		Categories: categories,
	})
}

// GetCategorySchema returns the detail field schema of one category.
func (h *SchemaHandler) GetCategorySchema(c echo.Context) error {
	category := entity.Category(c.Param("category"))
	fields := schema.SchemaFor(category)
	if fields == nil {
		return response.NotFound(c, "UNKNOWN_CATEGORY", "Unknown cause category")
	}

	return response.Success(c, http.StatusOK, fields)
}
