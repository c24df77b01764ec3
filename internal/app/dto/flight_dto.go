package dto

import (
	"fmt"
	"net/http"

	"github.com/ijalalfrz/flyair-flight-service/internal/pkg/exception"
)

// Fare classes offered in the search form.
const (
	ClassEconomy        = "Économique"
	ClassBusiness       = "Affaires"
	ClassPremiumEconomy = "Économique Premium"
	ClassFirst          = "Première classe"
)

const (
	DefaultRefreshCount = 5
	MaxRefreshCount     = 100
)

var AllowedSortField = map[string]bool{
	"price": true,
	"time":  true,
}

// Flight is the persisted catalog record. Field names match the stored JSON.
type Flight struct {
	ID      string   `json:"id"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	Time    string   `json:"time"`
	Price   int64    `json:"price"`
	Company string   `json:"company"`
	Class   []string `json:"class,omitempty"`
}

type SortOption struct {
	Field string `json:"field"`
	Order string `json:"order" validate:"omitempty,oneof=asc desc"`
}

type SearchCriteria struct {
	From        string      `json:"from"`
	To          string      `json:"to"`
	DepartDate  string      `json:"depart_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate  string      `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Passengers  int         `json:"passengers,omitempty" validate:"omitempty,min=1,max=9"`
	FlightClass string      `json:"flight_class,omitempty" validate:"omitempty,oneof='Économique' 'Affaires' 'Économique Premium' 'Première classe'"`
	TripType    string      `json:"trip_type,omitempty" validate:"omitempty,oneof=round oneway"`
	SortOption  *SortOption `json:"sort_option,omitempty"`

	MinPrice           *int64  `json:"min_price,omitempty" validate:"omitempty,gte=0"`
	MaxPrice           *int64  `json:"max_price,omitempty" validate:"omitempty,gt=0"`
	DepartureTimeStart *string `json:"departure_time_start,omitempty" validate:"omitempty,datetime=15:04"`
	DepartureTimeEnd   *string `json:"departure_time_end,omitempty" validate:"omitempty,datetime=15:04"`
}

func (s *SearchCriteria) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchCriteria) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if s.SortOption != nil {
		if !AllowedSortField[s.SortOption.Field] {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("Invalid sort field %s", s.SortOption.Field),
			}
		}
	}

	if s.MinPrice != nil && s.MaxPrice != nil && *s.MaxPrice <= *s.MinPrice {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "max_price must be greater than min_price",
		}
	}

	if s.TripType == "round" && s.DepartDate != "" && s.ReturnDate != "" && s.ReturnDate < s.DepartDate {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "return_date must not be before depart_date",
		}
	}

	return nil
}

type RefreshRequest struct {
	Count *int `json:"count,omitempty" validate:"omitempty,gte=0,lte=100"`
}

func (r *RefreshRequest) Bind(_ *http.Request) error {
	return validateRequest(r)
}

// CountOrDefault returns the requested count, falling back to DefaultRefreshCount.
func (r *RefreshRequest) CountOrDefault() int {
	if r.Count == nil {
		return DefaultRefreshCount
	}

	return *r.Count
}

type FlightIDRequest struct {
	ID string `json:"id" validate:"required"`
}

type FlightListResponse struct {
	Flights    []Flight `json:"flights"`
	Total      int      `json:"total"`
	LastUpdate *string  `json:"last_update"`
}

type SearchFlightResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Flights        []Flight       `json:"flights"`
	Total          int            `json:"total"`
	LastUpdate     *string        `json:"last_update"`
}

type RefreshResponse struct {
	AddedCount int      `json:"added_count"`
	LastUpdate string   `json:"last_update"`
	Flights    []Flight `json:"flights"`
}

type LastUpdateResponse struct {
	LastUpdate *string `json:"last_update"`
}
