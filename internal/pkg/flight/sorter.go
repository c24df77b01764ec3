package flight

import (
	"sort"

	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
)

// SortFlights sorts in place. Without an option the catalog order (newest first) is kept.
func SortFlights(flights []dto.Flight, sortOption *dto.SortOption) []dto.Flight {
	if sortOption == nil {
		return flights
	}

	desc := sortOption.Order == "desc"

	switch sortOption.Field {
	case "price":
		sort.SliceStable(flights, func(i, j int) bool {
			if desc {
				return flights[i].Price > flights[j].Price
			}
			return flights[i].Price < flights[j].Price
		})
	case "time":
		// HH:MM labels order lexically
		sort.SliceStable(flights, func(i, j int) bool {
			if desc {
				return flights[i].Time > flights[j].Time
			}
			return flights[i].Time < flights[j].Time
		})
	}

	return flights
}
