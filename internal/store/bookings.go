package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/harentsoaR/clinic-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Bookings struct {
	col *mongo.Collection
}

func (s *Bookings) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	bookings, err := findAll[models.Booking](ctx, s.col, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", date, err)
	}
	return bookings, nil
}

func (s *Bookings) ListByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	bookings, err := findAll[models.Booking](ctx, s.col, bson.M{"patient": patient})
	if err != nil {
		return nil, fmt.Errorf("list bookings of patient: %w", err)
	}
	return bookings, nil
}

func (s *Bookings) Get(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var b models.Booking
	if err := findOne(ctx, s.col, bson.M{"_id": id}, &b); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get booking %s: %w", id.Hex(), err)
	}
	return &b, nil
}

func (s *Bookings) FindDuplicate(ctx context.Context, b models.Booking) (*models.Booking, error) {
	var existing models.Booking
	if err := findOne(ctx, s.col, duplicateFilter(b), &existing); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find duplicate booking: %w", err)
	}
	return &existing, nil
}

func (s *Bookings) Insert(ctx context.Context, b *models.Booking) (*models.InsertResult, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	res, err := s.col.InsertOne(ctx, b)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return insertResult(res), nil
}

// duplicateFilter matches bookings that collide with b.
func duplicateFilter(b models.Booking) bson.M {
	return bson.M{"treatment": b.Treatment, "date": b.Date, "patient": b.Patient}
}
