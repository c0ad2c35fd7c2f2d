package store

import (
	"context"
	"fmt"

	"github.com/harentsoaR/clinic-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Doctors struct {
	col *mongo.Collection
}

func (s *Doctors) List(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := findAll[models.Doctor](ctx, s.col, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (s *Doctors) Insert(ctx context.Context, d *models.Doctor) (*models.InsertResult, error) {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	res, err := s.col.InsertOne(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}
	return insertResult(res), nil
}

// DeleteByEmail removes at most one doctor. Zero matches is not an error.
func (s *Doctors) DeleteByEmail(ctx context.Context, email string) (*models.DeleteResult, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("delete doctor: %w", err)
	}
	return deleteResult(res), nil
}
