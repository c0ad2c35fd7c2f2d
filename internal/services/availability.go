package services

import (
	"context"

	"github.com/harentsoaR/clinic-api/internal/models"
	"github.com/harentsoaR/clinic-api/internal/store"
)

// AvailabilityService answers which slots of each service are still free on
// a given date. It keeps no state between calls.
type AvailabilityService struct {
	services store.ServiceStore
	bookings store.BookingStore
}

func NewAvailabilityService(services store.ServiceStore, bookings store.BookingStore) *AvailabilityService {
	return &AvailabilityService{services: services, bookings: bookings}
}

// Resolve returns every service with its slots narrowed to those not booked
// on date.
func (s *AvailabilityService) Resolve(ctx context.Context, date string) ([]models.Service, error) {
	all, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	booked, err := s.bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return FilterAvailable(all, booked), nil
}

// FilterAvailable removes from each service the slots taken by bookings whose
// treatment matches the service name. Slot labels are compared exactly and
// the order of the remaining slots is kept. The caller's slices are not
// modified.
func FilterAvailable(services []models.Service, bookings []models.Booking) []models.Service {
	taken := make(map[string]map[string]struct{})
	for _, b := range bookings {
		slots, ok := taken[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			taken[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]models.Service, 0, len(services))
	for _, svc := range services {
		booked := taken[svc.Name]
		available := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, ok := booked[slot]; !ok {
				available = append(available, slot)
			}
		}
		svc.Slots = available
		out = append(out, svc)
	}
	return out
}
