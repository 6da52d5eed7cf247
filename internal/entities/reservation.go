package entities

// Status is the lifecycle tag of a reservation. Wire values match the
// upstream reservation store.
type Status string

const (
	StatusPending   Status = "RESERVA_PENDIENTE"
	StatusConfirmed Status = "RESERVA_CONFIRMADA"
	StatusCancelled Status = "RESERVA_CANCELADA"
)

// CountsTowardOccupancy reports whether a reservation in this status
// occupies room capacity. Only confirmed reservations do; unknown or
// absent tags never count.
func (s Status) CountsTowardOccupancy() bool {
	return s == StatusConfirmed
}

// ReservationDate splits the scheduled moment the way the upstream
// store expects it: day as YYYY-MM-DD, time as HH:MM:SS.
type ReservationDate struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

type Reservation struct {
	ID       string          `json:"id,omitempty"`
	UserName string          `json:"userName"`
	UserID   string          `json:"userId"`
	RoomID   string          `json:"roomId"`
	Date     ReservationDate `json:"date"`
	People   int             `json:"people"`
	State    Status          `json:"state"`
}

// SubmitRequest is a candidate reservation as received from the caller.
// Identity and credential travel separately in the session.
type SubmitRequest struct {
	RoomID string `json:"roomId" validate:"required"`
	Day    string `json:"day" validate:"required"`
	Time   string `json:"time" validate:"required"`
	People int    `json:"people" validate:"required,gte=1"`
}
