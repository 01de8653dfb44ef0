package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/proposal-desk/internal/domain/repository"
	"github.com/ignatzorin/proposal-desk/internal/interface/http/dto"
	"github.com/ignatzorin/proposal-desk/internal/interface/http/response"
)

type CatalogHandler struct {
	catalog repository.CatalogRepository
}

func NewCatalogHandler(catalog repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCategories GET /api/catalog/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToCategoryResponses(categories))
}

// GetCategory GET /api/catalog/categories/:name
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	name := strings.TrimSpace(c.Param("name"))
	for _, category := range categories {
		if strings.EqualFold(category.Name, name) {
			response.Success(c, dto.CategoryResponse{
				Name:     category.Name,
				Services: dto.ToServiceResponses(category.Services),
			})
			return
		}
	}
	response.NotFound(c, "категория не найдена")
}

// ListServices GET /api/catalog/services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalog.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToServiceResponses(services))
}

// GetService GET /api/catalog/services/:id
func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.catalog.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToServiceResponse(*service))
}
