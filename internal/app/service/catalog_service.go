package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/events"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/flight"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/utils"
)

type FlightCatalog interface {
	Initialize(ctx context.Context) []dto.Flight
	GetAll(ctx context.Context) []dto.Flight
	Get(ctx context.Context, id string) (dto.Flight, bool)
	Search(ctx context.Context, criteria dto.SearchCriteria) []dto.Flight
	Refresh(ctx context.Context, count int) flight.RefreshResult
	LastUpdate(ctx context.Context) (time.Time, bool)
}

type CatalogRefreshedEvent struct {
	Type       string   `json:"type"`
	AddedCount int      `json:"added_count"`
	Total      int      `json:"total"`
	LastUpdate string   `json:"last_update"`
	FlightIDs  []string `json:"flight_ids"`
}

type CatalogService struct {
	Catalog   FlightCatalog
	Publisher events.Publisher
	Topic     string
}

func NewCatalogService(catalog FlightCatalog, publisher events.Publisher, topic string) *CatalogService {
	return &CatalogService{
		Catalog:   catalog,
		Publisher: publisher,
		Topic:     topic,
	}
}

// Initialize seeds the catalog on first start.
func (s *CatalogService) Initialize(ctx context.Context) int {
	return len(s.Catalog.Initialize(ctx))
}

// ListFlights godoc
// @Summary      List flights
// @Tags         Flights
// @Success      200      {object}  dto.FlightListResponse
// @Router       /api/v1/flights [get]
func (s *CatalogService) ListFlights(ctx context.Context) (dto.FlightListResponse, error) {
	flights := s.Catalog.GetAll(ctx)

	return dto.FlightListResponse{
		Flights:    flights,
		Total:      len(flights),
		LastUpdate: s.lastUpdate(ctx),
	}, nil
}

// SearchFlights godoc
// @Summary      Search flights
// @Tags         Flights
// @Param        request  body      dto.SearchCriteria  true  "Search Criteria"
// @Success      200      {object}  dto.SearchFlightResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *CatalogService) SearchFlights(ctx context.Context, criteria dto.SearchCriteria) (dto.SearchFlightResponse, error) {
	flights := s.Catalog.Search(ctx, criteria)
	if len(flights) == 0 {
		return dto.SearchFlightResponse{}, ErrNoFlightsFound
	}

	return dto.SearchFlightResponse{
		SearchCriteria: criteria,
		Flights:        flights,
		Total:          len(flights),
		LastUpdate:     s.lastUpdate(ctx),
	}, nil
}

func (s *CatalogService) GetFlight(ctx context.Context, id string) (dto.Flight, error) {
	f, ok := s.Catalog.Get(ctx, id)
	if !ok {
		return dto.Flight{}, ErrFlightNotFound
	}

	return f, nil
}

// RefreshFlights godoc
// @Summary      Add generated flights to the catalog
// @Tags         Flights
// @Param        request  body      dto.RefreshRequest  false  "Number of flights"
// @Success      200      {object}  dto.RefreshResponse
// @Router       /api/v1/flights/refresh [post]
func (s *CatalogService) RefreshFlights(ctx context.Context, count int) (dto.RefreshResponse, error) {
	res := s.Refresh(ctx, count)

	return dto.RefreshResponse{
		AddedCount: res.AddedCount,
		LastUpdate: utils.FormatISO(res.LastUpdate),
		Flights:    res.Flights,
	}, nil
}

// Refresh refreshes the catalog and announces the new flights. The scheduler calls it on every tick.
func (s *CatalogService) Refresh(ctx context.Context, count int) flight.RefreshResult {
	res := s.Catalog.Refresh(ctx, count)
	if res.AddedCount == 0 || s.Publisher == nil {
		return res
	}

	ids := make([]string, res.AddedCount)
	for i := range ids {
		ids[i] = res.Flights[i].ID
	}

	event := CatalogRefreshedEvent{
		Type:       events.CatalogRefreshed,
		AddedCount: res.AddedCount,
		Total:      len(res.Flights),
		LastUpdate: utils.FormatISO(res.LastUpdate),
		FlightIDs:  ids,
	}

	if err := s.Publisher.Publish(ctx, s.Topic, "catalog", event); err != nil {
		slog.WarnContext(ctx, "failed to publish catalog event", slog.String("error", err.Error()))
	}

	return res
}

func (s *CatalogService) LastUpdate(ctx context.Context) (dto.LastUpdateResponse, error) {
	return dto.LastUpdateResponse{LastUpdate: s.lastUpdate(ctx)}, nil
}

func (s *CatalogService) lastUpdate(ctx context.Context) *string {
	ts, ok := s.Catalog.LastUpdate(ctx)
	if !ok {
		return nil
	}

	formatted := utils.FormatISO(ts)

	return &formatted
}
