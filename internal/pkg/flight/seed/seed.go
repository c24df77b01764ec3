// Package seed holds the flights a fresh install starts with.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/ijalalfrz/flyair-flight-service/internal/app/dto"
	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/utils"
)

//go:embed flights.json
var flightsJSON []byte

// record is the bundled shape: price is either a number or a "25 000 DA" label.
type record struct {
	ID      string          `json:"id"`
	From    string          `json:"from"`
	To      string          `json:"to"`
	Time    string          `json:"time"`
	Price   json.RawMessage `json:"price"`
	Company string          `json:"company"`
	Class   []string        `json:"class,omitempty"`
}

// Flights returns the static dataset with every price normalized to an integer.
func Flights() []dto.Flight {
	flights, err := Parse(flightsJSON)
	if err != nil {
		// the file is embedded at build time
		panic(err)
	}

	return flights
}

// Parse decodes a dataset in the bundled shape.
func Parse(data []byte) ([]dto.Flight, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed flights: %w", err)
	}

	flights := make([]dto.Flight, len(records))
	for i, r := range records {
		flights[i] = dto.Flight{
			ID:      r.ID,
			From:    r.From,
			To:      r.To,
			Time:    r.Time,
			Price:   normalizePrice(r.Price),
			Company: r.Company,
			Class:   r.Class,
		}
	}

	return flights, nil
}

func normalizePrice(raw json.RawMessage) int64 {
	var amount float64
	if err := json.Unmarshal(raw, &amount); err == nil {
		return utils.ClampPrice(amount)
	}

	var label string
	if err := json.Unmarshal(raw, &label); err == nil {
		return utils.ParsePrice(label)
	}

	return 0
}
