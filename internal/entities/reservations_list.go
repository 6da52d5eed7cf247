package entities

type ReservationsList struct {
	Total        int           `json:"total"`
	Reservations []Reservation `json:"reservations"`
}
