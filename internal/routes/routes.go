package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/clinic-api/internal/handlers"
	"github.com/harentsoaR/clinic-api/internal/middleware"
	"github.com/rs/zerolog"
)

type Options struct {
	CORSOrigins    []string // empty or ["*"] allows every origin
	RequestTimeout time.Duration
	Logger         zerolog.Logger
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(h *handlers.Handler, verifier middleware.TokenVerifier, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(opts.Logger),
		middleware.Recovery(opts.Logger),
		cors.New(corsConfig(opts.CORSOrigins)),
		middleware.RequestTimeout(opts.RequestTimeout),
	)

	auth := middleware.AuthMiddleware(verifier)

	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	r.GET("/service", h.ListServices)
	r.GET("/available", h.GetAvailable)

	r.GET("/user", h.ListUsers)
	r.PUT("/user/:email", h.UpsertUser)
	r.PUT("/user/admin/:email", auth, h.MakeAdmin)
	r.GET("/admin/:email", h.CheckAdmin)

	bookingRoutes := r.Group("/booking")
	{
		bookingRoutes.GET("", auth, h.ListBookings)
		bookingRoutes.GET("/:id", h.GetBooking)
		bookingRoutes.POST("", h.CreateBooking)
	}

	doctorRoutes := r.Group("/doctor")
	{
		doctorRoutes.GET("", h.ListDoctors)
		doctorRoutes.POST("", h.CreateDoctor)
		doctorRoutes.DELETE("/:email", h.DeleteDoctor)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
