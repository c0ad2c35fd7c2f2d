package handlers

import (
	"context"
	"errors"
	"sync"

	"github.com/harentsoaR/clinic-api/internal/models"
	"github.com/harentsoaR/clinic-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory stand-in for the Mongo collections.
type memStore struct {
	mu       sync.Mutex
	services []models.Service
	bookings []models.Booking
	users    []models.User
	doctors  []models.Doctor
	err      error
}

type (
	memServices struct{ *memStore }
	memBookings struct{ *memStore }
	memUsers    struct{ *memStore }
	memDoctors  struct{ *memStore }
)

func (m *memStore) stores() Stores {
	return Stores{
		Services: memServices{m},
		Bookings: memBookings{m},
		Users:    memUsers{m},
		Doctors:  memDoctors{m},
		Health:   m,
	}
}

func (m *memStore) Ping(ctx context.Context) error { return m.err }

func (s memServices) List(ctx context.Context) ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Service, len(s.services))
	copy(out, s.services)
	return out, nil
}

func (s memServices) ListNames(ctx context.Context) ([]models.Service, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		all[i].Slots = nil
	}
	return all, nil
}

func (s memServices) UpsertByName(ctx context.Context, svc models.Service) (*models.UpdateResult, error) {
	return nil, errors.New("not implemented")
}

func (s memBookings) filter(keep func(models.Booking) bool) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Booking, 0)
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s memBookings) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return s.filter(func(b models.Booking) bool { return b.Date == date })
}

func (s memBookings) ListByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return s.filter(func(b models.Booking) bool { return b.Patient == patient })
}

func (s memBookings) Get(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	found, err := s.filter(func(b models.Booking) bool { return b.ID == id })
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, store.ErrNotFound
	}
	return &found[0], nil
}

func (s memBookings) FindDuplicate(ctx context.Context, want models.Booking) (*models.Booking, error) {
	found, err := s.filter(func(b models.Booking) bool {
		return b.Treatment == want.Treatment && b.Date == want.Date && b.Patient == want.Patient
	})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, store.ErrNotFound
	}
	return &found[0], nil
}

func (s memBookings) Insert(ctx context.Context, b *models.Booking) (*models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	s.bookings = append(s.bookings, *b)
	return &models.InsertResult{Acknowledged: true, InsertedID: b.ID}, nil
}

func (s memUsers) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s memUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s memUsers) Upsert(ctx context.Context, email string, profile models.UserProfile) (*models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.users {
		if s.users[i].Email == email {
			modified := int64(0)
			if profile.Name != "" && s.users[i].Name != profile.Name {
				s.users[i].Name = profile.Name
				modified = 1
			}
			return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	id := primitive.NewObjectID()
	s.users = append(s.users, models.User{ID: id, Email: email, Name: profile.Name})
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
}

func (s memUsers) SetRole(ctx context.Context, email, role string) (*models.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.users {
		if s.users[i].Email == email {
			modified := int64(0)
			if s.users[i].Role != role {
				s.users[i].Role = role
				modified = 1
			}
			return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &models.UpdateResult{Acknowledged: true}, nil
}

func (s memDoctors) List(ctx context.Context) ([]models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out, nil
}

func (s memDoctors) Insert(ctx context.Context, d *models.Doctor) (*models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	s.doctors = append(s.doctors, *d)
	return &models.InsertResult{Acknowledged: true, InsertedID: d.ID}, nil
}

func (s memDoctors) DeleteByEmail(ctx context.Context, email string) (*models.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for i, d := range s.doctors {
		if d.Email == email {
			s.doctors = append(s.doctors[:i], s.doctors[i+1:]...)
			return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.DeleteResult{Acknowledged: true}, nil
}

// recordingNotifier remembers the bookings it was told about.
type recordingNotifier struct {
	mu      sync.Mutex
	created []models.Booking
}

func (n *recordingNotifier) BookingCreated(b *models.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, *b)
}

// raceBookings reports no duplicate on the first look, then fails the insert
// on the unique index, as happens when two identical requests interleave.
type raceBookings struct {
	memBookings
	looked int
}

func (r *raceBookings) FindDuplicate(ctx context.Context, want models.Booking) (*models.Booking, error) {
	r.looked++
	if r.looked == 1 {
		return nil, store.ErrNotFound
	}
	return r.memBookings.FindDuplicate(ctx, want)
}

func (r *raceBookings) Insert(ctx context.Context, b *models.Booking) (*models.InsertResult, error) {
	return nil, store.ErrDuplicate
}
