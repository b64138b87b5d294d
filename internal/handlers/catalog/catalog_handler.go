// internal/handlers/catalog/catalog_handler.go
package catalog

import (
	"net/http"
	"strconv"

	"gari-service/internal/pkg/response"
	service "gari-service/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListMakes retrieves all makes
func (h *CatalogHandler) ListMakes(c *gin.Context) {
	makes, err := h.catalogService.ListMakes(c.Request.Context())
	if err != nil {
		response.FromServiceError(c, "failed to list makes", err)
		return
	}

	response.Success(c, http.StatusOK, "makes retrieved", makes)
}

// GetMake retrieves a make with its models
func (h *CatalogHandler) GetMake(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid make ID", err)
		return
	}

	detail, err := h.catalogService.GetMake(c.Request.Context(), id)
	if err != nil {
		response.FromServiceError(c, "make not found", err)
		return
	}

	response.Success(c, http.StatusOK, "make retrieved", detail)
}
