package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/events"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/reservation"
)

type ReservationStore interface {
	Save(ctx context.Context, reservation dto.Reservation) error
	ListByUser(ctx context.Context, userID string) ([]dto.Reservation, error)
}

type ReservationCreatedEvent struct {
	Type        string          `json:"type"`
	Reservation dto.Reservation `json:"reservation"`
}

type ReservationService struct {
	Catalog   FlightCatalog
	Store     ReservationStore
	Publisher events.Publisher
	Topic     string
	now       func() time.Time
}

func NewReservationService(
	catalog FlightCatalog,
	store ReservationStore,
	publisher events.Publisher,
	topic string,
) *ReservationService {
	return &ReservationService{
		Catalog:   catalog,
		Store:     store,
		Publisher: publisher,
		Topic:     topic,
		now:       time.Now,
	}
}

// ConfirmReservation godoc
// @Summary      Reserve a seat on a flight
// @Tags         Reservations
// @Param        request  body      dto.ReservationRequest  true  "Flight to reserve"
// @Success      201      {object}  dto.Reservation
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /api/v1/reservations [post]
func (s *ReservationService) ConfirmReservation(
	ctx context.Context,
	userID string,
	req dto.ReservationRequest,
) (dto.Reservation, error) {
	f, ok := s.Catalog.Get(ctx, req.FlightID)
	if !ok {
		return dto.Reservation{}, ErrFlightNotFound
	}

	r := reservation.New(f, userID, s.now().UTC())

	if err := s.Store.Save(ctx, r); err != nil {
		slog.ErrorContext(ctx, "failed to save reservation",
			slog.String("flight_id", f.ID), slog.String("error", err.Error()))

		return dto.Reservation{}, ErrReservationFailed.WithCause(err)
	}

	if s.Publisher != nil {
		event := ReservationCreatedEvent{Type: events.ReservationCreated, Reservation: r}
		if err := s.Publisher.Publish(ctx, s.Topic, r.ID, event); err != nil {
			slog.WarnContext(ctx, "failed to publish reservation event", slog.String("error", err.Error()))
		}
	}

	return r, nil
}

func (s *ReservationService) ListReservations(ctx context.Context, userID string) (dto.ReservationListResponse, error) {
	reservations, err := s.Store.ListByUser(ctx, userID)
	if err != nil {
		return dto.ReservationListResponse{}, err
	}

	return dto.ReservationListResponse{
		Reservations: reservations,
		Total:        len(reservations),
	}, nil
}
