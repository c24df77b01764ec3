package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
)

type FlightService interface {
	ListFlights(ctx context.Context) (dto.FlightListResponse, error)
	SearchFlights(ctx context.Context, criteria dto.SearchCriteria) (dto.SearchFlightResponse, error)
	GetFlight(ctx context.Context, id string) (dto.Flight, error)
	RefreshFlights(ctx context.Context, count int) (dto.RefreshResponse, error)
	LastUpdate(ctx context.Context) (dto.LastUpdateResponse, error)
}

type FlightEndpoint struct {
	ListFlights    endpoint.Endpoint
	SearchFlights  endpoint.Endpoint
	GetFlight      endpoint.Endpoint
	RefreshFlights endpoint.Endpoint
	LastUpdate     endpoint.Endpoint
}

func MakeFlightEndpoint(service FlightService) FlightEndpoint {
	return FlightEndpoint{
		ListFlights:    makeListFlightsEndpoint(service),
		SearchFlights:  makeSearchFlightsEndpoint(service),
		GetFlight:      makeGetFlightEndpoint(service),
		RefreshFlights: makeRefreshFlightsEndpoint(service),
		LastUpdate:     makeLastUpdateEndpoint(service),
	}
}

func makeListFlightsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		flights, err := service.ListFlights(ctx)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return flights, nil
	}
}

func makeSearchFlightsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchCriteria)
		if !ok || request == nil {
			return nil, errInvalidRequest
		}

		flights, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return flights, nil
	}
}

func makeGetFlightEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		id, ok := req.(string)
		if !ok {
			return nil, errInvalidRequest
		}

		flight, err := service.GetFlight(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return flight, nil
	}
}

func makeRefreshFlightsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.RefreshRequest)
		if !ok || request == nil {
			return nil, errInvalidRequest
		}

		res, err := service.RefreshFlights(ctx, request.CountOrDefault())
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return res, nil
	}
}

func makeLastUpdateEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		res, err := service.LastUpdate(ctx)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return res, nil
	}
}
