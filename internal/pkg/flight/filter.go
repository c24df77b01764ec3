package flight

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
)

const timeLabelLayout = "15:04"

// FilterFlights applies the results screen matching: origin and destination are
// case-insensitive substrings, the fare class must be offered by the flight.
// Zero-valued criteria match everything.
func FilterFlights(ctx context.Context, flights []dto.Flight, criteria dto.SearchCriteria) []dto.Flight {
	from := strings.ToLower(strings.TrimSpace(criteria.From))
	to := strings.ToLower(strings.TrimSpace(criteria.To))

	results := make([]dto.Flight, 0, len(flights))

	for _, flight := range flights {
		if from != "" && !strings.Contains(strings.ToLower(flight.From), from) {
			continue
		}

		if to != "" && !strings.Contains(strings.ToLower(flight.To), to) {
			continue
		}

		if criteria.FlightClass != "" && !slices.Contains(flight.Class, criteria.FlightClass) {
			continue
		}

		if criteria.MaxPrice != nil && flight.Price > *criteria.MaxPrice {
			continue
		}

		if criteria.MinPrice != nil && flight.Price < *criteria.MinPrice {
			continue
		}

		if criteria.DepartureTimeStart != nil && criteria.DepartureTimeEnd != nil {
			if !isWithinTimeRange(ctx, flight.Time, *criteria.DepartureTimeStart, *criteria.DepartureTimeEnd) {
				continue
			}
		}

		results = append(results, flight)
	}

	return results
}

// targetTime, startTime and endTime are all HH:MM labels, bounds inclusive.
func isWithinTimeRange(ctx context.Context, targetTime string, startTime string, endTime string) bool {
	targetTimeParsed, err := time.Parse(timeLabelLayout, targetTime)
	if err != nil {
		return false
	}

	startTimeParsed, err := time.Parse(timeLabelLayout, startTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse start time", slog.String("time", startTime), slog.Any("error", err))
		return false
	}

	endTimeParsed, err := time.Parse(timeLabelLayout, endTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse end time", slog.String("time", endTime), slog.Any("error", err))
		return false
	}

	return !targetTimeParsed.Before(startTimeParsed) && !targetTimeParsed.After(endTimeParsed)
}
