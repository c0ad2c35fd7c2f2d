package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/harentsoaR/clinic-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Users struct {
	col *mongo.Collection
}

func (s *Users) List(ctx context.Context) ([]models.User, error) {
	users, err := findAll[models.User](ctx, s.col, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := findOne(ctx, s.col, bson.M{"email": email}, &u); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (s *Users) Upsert(ctx context.Context, email string, profile models.UserProfile) (*models.UpdateResult, error) {
	set := bson.M{"email": email}
	if profile.Name != "" {
		set["name"] = profile.Name
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set}, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return updateResult(res), nil
}

func (s *Users) SetRole(ctx context.Context, email, role string) (*models.UpdateResult, error) {
	res, err := s.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}
	return updateResult(res), nil
}
