package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/clinic-api/internal/middleware"
	"github.com/harentsoaR/clinic-api/internal/services"
	"github.com/harentsoaR/clinic-api/internal/store"
	"github.com/harentsoaR/clinic-api/internal/utils"
	"github.com/rs/zerolog"
)

// Stores groups the collections the handlers read and write.
type Stores struct {
	Services store.ServiceStore
	Bookings store.BookingStore
	Users    store.UserStore
	Doctors  store.DoctorStore
	Health   store.Pinger
}

// TokenSigner issues the bearer token returned on login.
type TokenSigner interface {
	Sign(email string) (string, error)
}

type Handler struct {
	Stores       Stores
	Availability *services.AvailabilityService
	Tokens       TokenSigner
	Notifier     services.BookingNotifier
	Logger       zerolog.Logger
}

func NewHandler(stores Stores, tokens TokenSigner, notifier services.BookingNotifier, logger zerolog.Logger) *Handler {
	if notifier == nil {
		notifier = services.NopNotifier{}
	}
	return &Handler{
		Stores:       stores,
		Availability: services.NewAvailabilityService(stores.Services, stores.Bookings),
		Tokens:       tokens,
		Notifier:     notifier,
		Logger:       logger,
	}
}

// storeFailure logs err and replies 504 when the request deadline expired,
// 500 otherwise.
func (h *Handler) storeFailure(c *gin.Context, err error, msg string) {
	_ = c.Error(err)
	h.Logger.Error().
		Err(err).
		Str("request_id", middleware.RequestIDFromContext(c)).
		Str("path", c.FullPath()).
		Msg(msg)

	if errors.Is(err, context.DeadlineExceeded) {
		utils.Error(c, http.StatusGatewayTimeout, "Request timed out")
		return
	}
	utils.InternalServerError(c, msg)
}
