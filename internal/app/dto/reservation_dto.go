package dto

import "net/http"

// Reservation is a denormalized copy of the flight taken at confirmation time.
type Reservation struct {
	ID        string `json:"id"`
	FlightID  string `json:"flightId"`
	UserID    string `json:"userId,omitempty"`
	Company   string `json:"company"`
	Time      string `json:"time"`
	Price     int64  `json:"price"`
	CreatedAt string `json:"createdAt"`
}

type ReservationRequest struct {
	FlightID string `json:"flight_id" validate:"required"`
}

func (r *ReservationRequest) Bind(_ *http.Request) error {
	return validateRequest(r)
}

type ReservationListResponse struct {
	Reservations []Reservation `json:"reservations"`
	Total        int           `json:"total"`
}
