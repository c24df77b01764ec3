package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
)

type ReservationService interface {
	ConfirmReservation(ctx context.Context, userID string, req dto.ReservationRequest) (dto.Reservation, error)
	ListReservations(ctx context.Context, userID string) (dto.ReservationListResponse, error)
}

type ReservationEndpoint struct {
	ConfirmReservation endpoint.Endpoint
	ListReservations   endpoint.Endpoint
}

func MakeReservationEndpoint(service ReservationService) ReservationEndpoint {
	return ReservationEndpoint{
		ConfirmReservation: makeConfirmReservationEndpoint(service),
		ListReservations:   makeListReservationsEndpoint(service),
	}
}

func makeConfirmReservationEndpoint(service ReservationService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ReservationRequest)
		if !ok || request == nil {
			return nil, errInvalidRequest
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		reservation, err := service.ConfirmReservation(ctx, session.UserID, *request)
		if err != nil {
			return nil, fmt.Errorf("reservation service: %w", err)
		}

		return reservation, nil
	}
}

func makeListReservationsEndpoint(service ReservationService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		reservations, err := service.ListReservations(ctx, session.UserID)
		if err != nil {
			return nil, fmt.Errorf("reservation service: %w", err)
		}

		return reservations, nil
	}
}
