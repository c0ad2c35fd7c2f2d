package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/clinic-api/internal/middleware"
	"github.com/harentsoaR/clinic-api/internal/models"
	"github.com/harentsoaR/clinic-api/internal/store"
	"github.com/harentsoaR/clinic-api/internal/utils"
)

// ListBookings returns the caller's own bookings; patient must match the token email.
func (h *Handler) ListBookings(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		utils.Unauthorized(c, "UnAuthorized access")
		return
	}

	patient := c.Query("patient")
	if patient != claims.Email {
		utils.Forbidden(c, "forbidden Access")
		return
	}

	bookings, err := h.Stores.Bookings.ListByPatient(c.Request.Context(), patient)
	if err != nil {
		h.storeFailure(c, err, "Failed to retrieve bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns one booking by its object id.
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := models.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid booking ID")
		return
	}

	booking, err := h.Stores.Bookings.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "Booking not found")
		return
	}
	if err != nil {
		h.storeFailure(c, err, "Failed to retrieve booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CreateBooking inserts a booking. Repeating an existing (treatment, date,
// patient) is not an error: the existing record comes back with success=false.
func (h *Handler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if !utils.BindJSON(c, &booking) {
		return
	}
	ctx := c.Request.Context()

	existing, err := h.Stores.Bookings.FindDuplicate(ctx, booking)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": existing})
		return
	case !errors.Is(err, store.ErrNotFound):
		h.storeFailure(c, err, "Failed to check existing bookings")
		return
	}

	result, err := h.Stores.Bookings.Insert(ctx, &booking)
	if errors.Is(err, store.ErrDuplicate) {
		// Lost the race against an identical booking; report it like the
		// read-before-write path does.
		existing, err = h.Stores.Bookings.FindDuplicate(ctx, booking)
		if err != nil {
			h.storeFailure(c, err, "Failed to load conflicting booking")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": existing})
		return
	}
	if err != nil {
		h.storeFailure(c, err, "Failed to create booking")
		return
	}

	h.Notifier.BookingCreated(&booking)

	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}
