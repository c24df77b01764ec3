package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/kvstore"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/utils"
)

// Store appends reservations to a single persisted list. There is no update or delete.
type Store struct {
	store kvstore.Store
}

func NewStore(store kvstore.Store) *Store {
	return &Store{
		store: store,
	}
}

// New builds the denormalized reservation for flight at the given instant.
func New(flight dto.Flight, userID string, at time.Time) dto.Reservation {
	return dto.Reservation{
		ID:        fmt.Sprintf("%s_%d", flight.ID, at.UnixMilli()),
		FlightID:  flight.ID,
		UserID:    userID,
		Company:   flight.Company,
		Time:      flight.Time,
		Price:     flight.Price,
		CreatedAt: utils.FormatISO(at),
	}
}

func (s *Store) Save(ctx context.Context, reservation dto.Reservation) error {
	reservations, err := s.List(ctx)
	if err != nil {
		return err
	}

	reservations = append(reservations, reservation)

	data, err := json.Marshal(reservations)
	if err != nil {
		return fmt.Errorf("failed to marshal reservations: %w", err)
	}

	if err := s.store.Set(ctx, kvstore.ReservationsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save reservation: %w", err)
	}

	return nil
}

func (s *Store) List(ctx context.Context) ([]dto.Reservation, error) {
	data, found, err := s.store.Get(ctx, kvstore.ReservationsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	if !found || data == "" {
		return []dto.Reservation{}, nil
	}

	var reservations []dto.Reservation
	if err := json.Unmarshal([]byte(data), &reservations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reservations: %w", err)
	}

	if reservations == nil {
		reservations = []dto.Reservation{}
	}

	return reservations, nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]dto.Reservation, error) {
	reservations, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]dto.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.UserID == userID {
			results = append(results, r)
		}
	}

	return results, nil
}
