package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/clinic-api/internal/models"
	"github.com/harentsoaR/clinic-api/internal/utils"
)

// ListServices returns the catalogue with names only.
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.Stores.Services.ListNames(c.Request.Context())
	if err != nil {
		h.storeFailure(c, err, "Failed to retrieve services")
		return
	}

	summaries := make([]models.ServiceSummary, 0, len(services))
	for _, svc := range services {
		summaries = append(summaries, svc.Summary())
	}
	c.JSON(http.StatusOK, summaries)
}

// GetAvailable returns every service with the slots still free on ?date=.
func (h *Handler) GetAvailable(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.BadRequest(c, "date query parameter is required")
		return
	}

	services, err := h.Availability.Resolve(c.Request.Context(), date)
	if err != nil {
		h.storeFailure(c, err, "Failed to compute availability")
		return
	}
	c.JSON(http.StatusOK, services)
}
