// Package store is the document store behind the API. Handlers depend on the
// interfaces declared here; the MongoDB types in this package implement them.
package store

import (
	"context"
	"errors"

	"github.com/harentsoaR/clinic-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a single-document lookup matches nothing.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a unique index.
var ErrDuplicate = errors.New("duplicate document")

type ServiceStore interface {
	// List returns every service with its full slot list.
	List(ctx context.Context) ([]models.Service, error)
	// ListNames returns every service with only its id and name populated.
	ListNames(ctx context.Context) ([]models.Service, error)
	UpsertByName(ctx context.Context, svc models.Service) (*models.UpdateResult, error)
}

type BookingStore interface {
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	ListByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	// FindDuplicate returns the booking sharing b's treatment, date and
	// patient, or ErrNotFound.
	FindDuplicate(ctx context.Context, b models.Booking) (*models.Booking, error)
	Insert(ctx context.Context, b *models.Booking) (*models.InsertResult, error)
}

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Upsert(ctx context.Context, email string, profile models.UserProfile) (*models.UpdateResult, error)
	// SetRole updates an existing user only; it never creates one.
	SetRole(ctx context.Context, email, role string) (*models.UpdateResult, error)
}

type DoctorStore interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Insert(ctx context.Context, d *models.Doctor) (*models.InsertResult, error)
	DeleteByEmail(ctx context.Context, email string) (*models.DeleteResult, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
