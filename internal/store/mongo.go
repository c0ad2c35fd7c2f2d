package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harentsoaR/clinic-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	ServicesCollection = "services"
	BookingsCollection = "bookings"
	UsersCollection    = "users"
	DoctorsCollection  = "doctors"
)

// Mongo bundles the collection-backed stores that share one client.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database

	Services *Services
	Bookings *Bookings
	Users    *Users
	Doctors  *Doctors
}

// Connect dials the server and verifies it answers before returning.
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return New(client, client.Database(database)), nil
}

func New(client *mongo.Client, db *mongo.Database) *Mongo {
	return &Mongo{
		client:   client,
		db:       db,
		Services: &Services{col: db.Collection(ServicesCollection)},
		Bookings: &Bookings{col: db.Collection(BookingsCollection)},
		Users:    &Users{col: db.Collection(UsersCollection)},
		Doctors:  &Doctors{col: db.Collection(DoctorsCollection)},
	}
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes backs the booking duplicate check and the user natural key
// with unique indexes. It fails if existing documents already collide.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.Bookings.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "treatment", Value: 1}, {Key: "date", Value: 1}, {Key: "patient", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("treatment_date_patient"),
	})
	if err != nil {
		return fmt.Errorf("create bookings index: %w", err)
	}
	_, err = m.Users.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email"),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}
	return nil
}

// Writes use the default acknowledged write concern, so a result without an
// error is always acknowledged.

func insertResult(res *mongo.InsertOneResult) *models.InsertResult {
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func updateResult(res *mongo.UpdateResult) *models.UpdateResult {
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func deleteResult(res *mongo.DeleteResult) *models.DeleteResult {
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

// findOne decodes a single match into out, mapping no-match to ErrNotFound.
func findOne(ctx context.Context, col *mongo.Collection, filter interface{}, out interface{}) error {
	err := col.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// findAll never returns a nil slice so empty results encode as [].
func findAll[T any](ctx context.Context, col *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
