package store

import (
	"context"
	"fmt"

	"github.com/harentsoaR/clinic-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Services struct {
	col *mongo.Collection
}

func (s *Services) List(ctx context.Context) ([]models.Service, error) {
	services, err := findAll[models.Service](ctx, s.col, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (s *Services) ListNames(ctx context.Context) ([]models.Service, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1})
	services, err := findAll[models.Service](ctx, s.col, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list service names: %w", err)
	}
	return services, nil
}

func (s *Services) UpsertByName(ctx context.Context, svc models.Service) (*models.UpdateResult, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"name": svc.Name},
		bson.M{"$set": bson.M{"name": svc.Name, "slots": svc.Slots}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert service %q: %w", svc.Name, err)
	}
	return updateResult(res), nil
}
