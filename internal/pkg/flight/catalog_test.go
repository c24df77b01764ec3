package flight

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/kvstore"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStorage = errors.New("storage unavailable")

// faultyStore wraps a memory store and fails selected operations.
type faultyStore struct {
	*kvstore.MemoryStore
	failGet bool
	failSet map[string]bool
}

func newFaultyStore() *faultyStore {
	return &faultyStore{MemoryStore: kvstore.NewMemoryStore(), failSet: map[string]bool{}}
}

func (s *faultyStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.failGet {
		return "", false, errStorage
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *faultyStore) Set(ctx context.Context, key, value string) error {
	if s.failSet[key] {
		return errStorage
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func staticFlights() []dto.Flight {
	return []dto.Flight{
		{ID: "1", From: "Alger", To: "Paris", Time: "08:30", Price: 25000, Company: "Air Algérie", Class: []string{dto.ClassEconomy}},
		{ID: "2", From: "Oran", To: "Lyon", Time: "06:00", Price: 21500, Company: "Air Algérie"},
		{ID: "3", From: "Constantine", To: "Doha", Time: "14:00", Price: 48000, Company: "Qatar Airways", Class: []string{dto.ClassBusiness}},
	}
}

func numberedFlights(n int) []dto.Flight {
	flights := make([]dto.Flight, n)
	for i := range flights {
		flights[i] = dto.Flight{ID: fmt.Sprintf("S%d", i), From: "Alger", To: "Nice", Time: "11:00", Price: 20000}
	}
	return flights
}

func newTestCatalog(store kvstore.Store, now time.Time) *Catalog {
	gen := NewGenerator(WithRand(rand.New(rand.NewSource(1))), WithClock(fixedClock(now)))
	return NewCatalog(store, gen, staticFlights).WithClock(fixedClock(now))
}

func TestCatalog_Initialize_EmptyStoreSeeds(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 30, 0, 123_456_789, time.UTC)
	store := kvstore.NewMemoryStore()
	c := newTestCatalog(store, now)

	got := c.Initialize(ctx)
	if diff := cmp.Diff(staticFlights(), got); diff != "" {
		t.Fatalf("Initialize mismatch (-want +got):\n%s", diff)
	}

	raw, found, err := store.Get(ctx, kvstore.LastUpdateKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2025-06-01T09:30:00.123Z", raw)

	lastUpdate, ok := c.LastUpdate(ctx)
	require.True(t, ok)
	assert.True(t, lastUpdate.Equal(now.Truncate(time.Millisecond)))
}

func TestCatalog_Initialize_Idempotent(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(kvstore.NewMemoryStore(), time.Now())

	first := c.Initialize(ctx)
	second := c.Initialize(ctx)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Initialize not idempotent (-first +second):\n%s", diff)
	}
}

func TestCatalog_Initialize_KeepsExistingCatalog(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, kvstore.FlightsKey, `[{"id":"X1","from":"Oran","to":"Nice","time":"19:00","price":19900,"company":"Air Algérie"}]`))

	got := newTestCatalog(store, time.Now()).Initialize(ctx)

	want := []dto.Flight{{ID: "X1", From: "Oran", To: "Nice", Time: "19:00", Price: 19900, Company: "Air Algérie"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Initialize mismatch (-want +got):\n%s", diff)
	}

	_, found, _ := store.Get(ctx, kvstore.LastUpdateKey)
	assert.False(t, found, "existing catalog must not be restamped")
}

func TestCatalog_Initialize_StorageFailureServesStatic(t *testing.T) {
	ctx := context.Background()

	t.Run("read_failure", func(t *testing.T) {
		store := newFaultyStore()
		store.failGet = true

		got := newTestCatalog(store, time.Now()).Initialize(ctx)
		assert.Equal(t, staticFlights(), got)
	})

	t.Run("write_failure", func(t *testing.T) {
		store := newFaultyStore()
		store.failSet[kvstore.FlightsKey] = true

		got := newTestCatalog(store, time.Now()).Initialize(ctx)
		assert.Equal(t, staticFlights(), got)

		_, found, _ := store.MemoryStore.Get(ctx, kvstore.FlightsKey)
		assert.False(t, found)
	})
}

func TestCatalog_Initialize_MalformedCatalogReseeds(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, kvstore.FlightsKey, `{not json`))

	got := newTestCatalog(store, time.Now()).Initialize(ctx)
	assert.Equal(t, staticFlights(), got)

	raw, _, _ := store.Get(ctx, kvstore.FlightsKey)
	assert.True(t, strings.HasPrefix(raw, `[{"id":"1"`))
}

func TestCatalog_GetAll_Closure(t *testing.T) {
	getAllRequest := func(setup func(s *faultyStore), want []dto.Flight) func(t *testing.T) {
		return func(t *testing.T) {
			store := newFaultyStore()
			setup(store)

			got := newTestCatalog(store, time.Now()).GetAll(context.Background())
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("GetAll mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("absent_behaves_as_initialize", getAllRequest(func(s *faultyStore) {}, staticFlights()))

	t.Run("get_failure_returns_empty", getAllRequest(func(s *faultyStore) {
		s.failGet = true
	}, []dto.Flight{}))

	t.Run("persisted_empty_list", getAllRequest(func(s *faultyStore) {
		_ = s.MemoryStore.Set(context.Background(), kvstore.FlightsKey, `[]`)
	}, []dto.Flight{}))
}

func TestCatalog_Refresh_PrependsGeneratedFlights(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := kvstore.NewMemoryStore()
	c := newTestCatalog(store, now)

	existing := numberedFlights(10)
	require.NoError(t, c.save(ctx, existing, now.Add(-time.Hour)))

	res := c.Refresh(ctx, 3)

	assert.Equal(t, 3, res.AddedCount)
	assert.True(t, res.LastUpdate.Equal(now))
	require.Len(t, res.Flights, 13)

	for i, f := range res.Flights[:3] {
		assert.Equal(t, fmt.Sprintf("R%d-%d", now.UnixMilli(), i), f.ID)
	}
	assert.Equal(t, existing, res.Flights[3:])

	if diff := cmp.Diff(res.Flights, c.GetAll(ctx)); diff != "" {
		t.Fatalf("persisted catalog mismatch (-want +got):\n%s", diff)
	}

	lastUpdate, ok := c.LastUpdate(ctx)
	require.True(t, ok)
	assert.True(t, lastUpdate.Equal(now))
}

func TestCatalog_Refresh_GrowsByCount(t *testing.T) {
	ctx := context.Background()

	for _, count := range []int{0, 1, 5, 25} {
		t.Run(fmt.Sprintf("count_%d", count), func(t *testing.T) {
			c := newTestCatalog(kvstore.NewMemoryStore(), time.Now())
			before := len(c.Initialize(ctx))

			res := c.Refresh(ctx, count)

			assert.Equal(t, count, res.AddedCount)
			assert.Len(t, c.GetAll(ctx), before+count)
		})
	}
}

func TestCatalog_Refresh_NegativeCountAddsNothing(t *testing.T) {
	c := newTestCatalog(kvstore.NewMemoryStore(), time.Now())

	res := c.Refresh(context.Background(), -2)

	assert.Equal(t, 0, res.AddedCount)
	assert.Len(t, res.Flights, len(staticFlights()))
}

func TestCatalog_Refresh_EmptyStoreSeedsFirst(t *testing.T) {
	c := newTestCatalog(kvstore.NewMemoryStore(), time.Now())

	res := c.Refresh(context.Background(), 2)

	require.Len(t, res.Flights, len(staticFlights())+2)
	assert.Equal(t, staticFlights(), res.Flights[2:])
}

func TestCatalog_Refresh_TimestampNeverGoesBack(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := kvstore.NewMemoryStore()
	c := NewCatalog(store, NewGenerator(), staticFlights).WithClock(func() time.Time { return clock })

	c.Initialize(ctx)
	before, ok := c.LastUpdate(ctx)
	require.True(t, ok)

	clock = clock.Add(1500 * time.Millisecond)
	c.Refresh(ctx, 1)

	after, ok := c.LastUpdate(ctx)
	require.True(t, ok)
	assert.False(t, after.Before(before))
	assert.GreaterOrEqual(t, utils.FormatISO(after), utils.FormatISO(before))
}

func TestCatalog_Refresh_StorageFailure(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("read_failure", func(t *testing.T) {
		store := newFaultyStore()
		c := newTestCatalog(store, now)
		c.Initialize(ctx)
		store.failGet = true

		res := c.Refresh(ctx, 3)

		assert.Equal(t, 0, res.AddedCount)
		assert.True(t, res.LastUpdate.Equal(now))
		assert.Equal(t, []dto.Flight{}, res.Flights)
	})

	t.Run("write_failure_keeps_catalog", func(t *testing.T) {
		store := newFaultyStore()
		c := newTestCatalog(store, now)
		c.Initialize(ctx)
		store.failSet[kvstore.FlightsKey] = true

		res := c.Refresh(ctx, 3)

		assert.Equal(t, 0, res.AddedCount)
		assert.Equal(t, staticFlights(), res.Flights)
	})

	t.Run("self_heals_on_next_attempt", func(t *testing.T) {
		store := newFaultyStore()
		c := newTestCatalog(store, now)
		c.Initialize(ctx)

		store.failSet[kvstore.FlightsKey] = true
		assert.Equal(t, 0, c.Refresh(ctx, 3).AddedCount)

		delete(store.failSet, kvstore.FlightsKey)
		res := c.Refresh(ctx, 3)
		assert.Equal(t, 3, res.AddedCount)
		assert.Len(t, res.Flights, len(staticFlights())+3)
	})
}

func TestCatalog_LastUpdate_Closure(t *testing.T) {
	lastUpdateRequest := func(setup func(s *faultyStore), wantOK bool) func(t *testing.T) {
		return func(t *testing.T) {
			store := newFaultyStore()
			setup(store)

			_, ok := newTestCatalog(store, time.Now()).LastUpdate(context.Background())
			assert.Equal(t, wantOK, ok)
		}
	}

	t.Run("never_set", lastUpdateRequest(func(s *faultyStore) {}, false))
	t.Run("storage_failure", lastUpdateRequest(func(s *faultyStore) { s.failGet = true }, false))
	t.Run("malformed", lastUpdateRequest(func(s *faultyStore) {
		_ = s.MemoryStore.Set(context.Background(), kvstore.LastUpdateKey, "yesterday")
	}, false))
	t.Run("rfc3339_accepted", lastUpdateRequest(func(s *faultyStore) {
		_ = s.MemoryStore.Set(context.Background(), kvstore.LastUpdateKey, "2025-06-01T12:00:00Z")
	}, true))
}

func TestCatalog_GetAndSearch(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(kvstore.NewMemoryStore(), time.Now())

	f, ok := c.Get(ctx, "3")
	require.True(t, ok)
	assert.Equal(t, "Qatar Airways", f.Company)

	_, ok = c.Get(ctx, "missing")
	assert.False(t, ok)

	got := c.Search(ctx, dto.SearchCriteria{From: "al", SortOption: &dto.SortOption{Field: "price", Order: "desc"}})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}
