package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/kvstore"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/utils"
)

type FlightGenerator interface {
	Batch(count int) []dto.Flight
}

type RefreshResult struct {
	AddedCount int
	LastUpdate time.Time
	Flights    []dto.Flight
}

// Catalog owns the persisted flight list and its last update timestamp.
// None of its methods return errors: storage failures are logged and a
// degraded value is served instead.
//
// Refresh is a read-modify-write on a single key with no locking, so two
// concurrent refreshes resolve last-write-wins.
type Catalog struct {
	store     kvstore.Store
	generator FlightGenerator
	seed      func() []dto.Flight
	now       func() time.Time
}

func NewCatalog(store kvstore.Store, generator FlightGenerator, seed func() []dto.Flight) *Catalog {
	return &Catalog{
		store:     store,
		generator: generator,
		seed:      seed,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for timestamps.
func (c *Catalog) WithClock(now func() time.Time) *Catalog {
	c.now = now
	return c
}

// Initialize seeds the catalog on first use and returns it.
func (c *Catalog) Initialize(ctx context.Context) []dto.Flight {
	flights, found, err := c.load(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to read flight catalog, serving static flights",
			slog.String("error", err.Error()))
		return c.seed()
	}

	if found {
		return flights
	}

	initial := c.seed()
	now := c.timestamp()

	if err := c.save(ctx, initial, now); err != nil {
		slog.WarnContext(ctx, "failed to seed flight catalog, serving static flights",
			slog.String("error", err.Error()))
		return c.seed()
	}

	slog.InfoContext(ctx, "flight catalog seeded", slog.Int("flights", len(initial)))

	return initial
}

// GetAll returns the persisted catalog, seeding it when absent.
func (c *Catalog) GetAll(ctx context.Context) []dto.Flight {
	flights, found, err := c.load(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to get flights", slog.String("error", err.Error()))
		return []dto.Flight{}
	}

	if !found {
		return c.Initialize(ctx)
	}

	return flights
}

// Get looks a flight up by id.
func (c *Catalog) Get(ctx context.Context, id string) (dto.Flight, bool) {
	for _, flight := range c.GetAll(ctx) {
		if flight.ID == id {
			return flight, true
		}
	}

	return dto.Flight{}, false
}

// Search filters and sorts the current catalog.
func (c *Catalog) Search(ctx context.Context, criteria dto.SearchCriteria) []dto.Flight {
	filtered := FilterFlights(ctx, c.GetAll(ctx), criteria)
	return SortFlights(filtered, criteria.SortOption)
}

// Refresh prepends count generated flights and stamps the catalog.
// On storage failure nothing is reported as added and the current catalog is returned.
func (c *Catalog) Refresh(ctx context.Context, count int) RefreshResult {
	if count < 0 {
		count = 0
	}

	previous, found, err := c.load(ctx)
	if err != nil {
		return c.failedRefresh(ctx, err)
	}

	if !found {
		previous = c.Initialize(ctx)
	}

	fresh := c.generator.Batch(count)

	updated := make([]dto.Flight, 0, len(fresh)+len(previous))
	updated = append(updated, fresh...)
	updated = append(updated, previous...)

	now := c.timestamp()
	if err := c.save(ctx, updated, now); err != nil {
		return c.failedRefresh(ctx, err)
	}

	return RefreshResult{
		AddedCount: len(fresh),
		LastUpdate: now,
		Flights:    updated,
	}
}

// LastUpdate returns the instant of the latest catalog write, if any.
func (c *Catalog) LastUpdate(ctx context.Context) (time.Time, bool) {
	value, found, err := c.store.Get(ctx, kvstore.LastUpdateKey)
	if err != nil {
		slog.WarnContext(ctx, "failed to get last update", slog.String("error", err.Error()))
		return time.Time{}, false
	}

	if !found {
		return time.Time{}, false
	}

	lastUpdate, err := utils.ParseISO(value)
	if err != nil {
		slog.WarnContext(ctx, "malformed last update", slog.String("value", value))
		return time.Time{}, false
	}

	return lastUpdate, true
}

func (c *Catalog) failedRefresh(ctx context.Context, err error) RefreshResult {
	slog.WarnContext(ctx, "failed to refresh flights", slog.String("error", err.Error()))

	return RefreshResult{
		AddedCount: 0,
		LastUpdate: c.timestamp(),
		Flights:    c.GetAll(ctx),
	}
}

// load reports a malformed catalog as absent so the next read reseeds it.
func (c *Catalog) load(ctx context.Context) ([]dto.Flight, bool, error) {
	data, found, err := c.store.Get(ctx, kvstore.FlightsKey)
	if err != nil {
		return nil, false, err
	}

	if !found || data == "" {
		return nil, false, nil
	}

	var flights []dto.Flight
	if err := json.Unmarshal([]byte(data), &flights); err != nil {
		slog.WarnContext(ctx, "malformed flight catalog, reseeding", slog.String("error", err.Error()))
		return nil, false, nil
	}

	if flights == nil {
		flights = []dto.Flight{}
	}

	return flights, true, nil
}

func (c *Catalog) save(ctx context.Context, flights []dto.Flight, now time.Time) error {
	data, err := json.Marshal(flights)
	if err != nil {
		return fmt.Errorf("failed to marshal flights: %w", err)
	}

	if err := c.store.Set(ctx, kvstore.FlightsKey, string(data)); err != nil {
		return fmt.Errorf("failed to set flights: %w", err)
	}

	if err := c.store.Set(ctx, kvstore.LastUpdateKey, utils.FormatISO(now)); err != nil {
		return fmt.Errorf("failed to set last update: %w", err)
	}

	return nil
}

// timestamp is truncated to what the persisted ISO string can hold.
func (c *Catalog) timestamp() time.Time {
	return c.now().UTC().Truncate(time.Millisecond)
}
