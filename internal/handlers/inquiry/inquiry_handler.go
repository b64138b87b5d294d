// internal/handlers/inquiry/inquiry_handler.go
package inquiry

import (
	"net/http"
	"strconv"

	"gari-service/internal/domain/inquiry"
	"gari-service/internal/middleware"
	"gari-service/internal/pkg/response"
	service "gari-service/internal/service/inquiry"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryService *service.InquiryService
}

func NewInquiryHandler(inquiryService *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
	}
}

// Submit creates an inquiry against a listing; open to anonymous callers
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req inquiry.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.inquiryService.Submit(c.Request.Context(), c.Param("slug"), c.ClientIP(), &req)
	if err != nil {
		response.FromServiceError(c, "failed to submit inquiry", err)
		return
	}

	response.Success(c, http.StatusCreated, "your inquiry has been sent successfully", result)
}

// ListMine retrieves inquiries across all of the caller's listings
func (h *InquiryHandler) ListMine(c *gin.Context) {
	sellerID := middleware.MustGetUserID(c)

	inquiries, err := h.inquiryService.ListMine(c.Request.Context(), sellerID)
	if err != nil {
		response.FromServiceError(c, "failed to list inquiries", err)
		return
	}

	response.Success(c, http.StatusOK, "inquiries retrieved", inquiries)
}

// ToggleResponded flips an inquiry's responded flag
func (h *InquiryHandler) ToggleResponded(c *gin.Context) {
	sellerID := middleware.MustGetUserID(c)

	inquiryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid inquiry ID", err)
		return
	}

	result, err := h.inquiryService.ToggleResponded(c.Request.Context(), sellerID, inquiryID)
	if err != nil {
		response.FromServiceError(c, "failed to update inquiry", err)
		return
	}

	status := "not responded to"
	if result.Responded {
		status = "responded to"
	}
	response.Success(c, http.StatusOK, "inquiry marked as "+status, result)
}
