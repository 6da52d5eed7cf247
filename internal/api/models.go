package api

import "salascrea/internal/entities"

// Reservation
type CreateReservationResponse struct {
	Reservation entities.Reservation `json:"reservation"`
	Message     string               `json:"message"`
}

// Rooms
type RoomsResponse struct {
	MaxCapacity int                   `json:"max_capacity"`
	Rooms       []entities.RoomStatus `json:"rooms"`
}

// Specialties
type SpecialtiesResponse struct {
	Specialties []entities.Specialty `json:"specialties"`
}
