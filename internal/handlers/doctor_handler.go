package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/clinic-api/internal/models"
	"github.com/harentsoaR/clinic-api/internal/utils"
)

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.Stores.Doctors.List(c.Request.Context())
	if err != nil {
		h.storeFailure(c, err, "Failed to retrieve doctors")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor stores the doctor exactly as sent.
func (h *Handler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if !utils.BindJSON(c, &doctor) {
		return
	}

	result, err := h.Stores.Doctors.Insert(c.Request.Context(), &doctor)
	if err != nil {
		h.storeFailure(c, err, "Failed to create doctor")
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteDoctor removes the doctor with :email. Deleting an unknown email
// succeeds with deletedCount 0.
func (h *Handler) DeleteDoctor(c *gin.Context) {
	result, err := h.Stores.Doctors.DeleteByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.storeFailure(c, err, "Failed to delete doctor")
		return
	}
	c.JSON(http.StatusOK, result)
}
