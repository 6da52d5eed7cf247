package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"salascrea/internal/auth"
	"salascrea/internal/engine"
	"salascrea/internal/entities"
	"salascrea/internal/errors"
)

type ReservationHandler struct {
	Engine *engine.Engine
	Logger *zap.Logger
}

func NewReservationHandler(eng *engine.Engine, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Engine: eng, Logger: logger}
}

// ListRooms refreshes the engine and answers with the room catalog plus
// derived occupancy. A failed refresh degrades to the previous figures.
func (h *ReservationHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.Engine.Refresh(r.Context(), session)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RoomsResponse{
		MaxCapacity: entities.MaxCapacity,
		Rooms:       h.Engine.RoomStatuses(),
	})
}

// ListReservations answers with the engine's current snapshot.
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.Engine.Refresh(r.Context(), session)

	reservations := h.Engine.Reservations()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entities.ReservationsList{
		Total:        len(reservations),
		Reservations: reservations,
	})
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	reservation, err := h.Engine.Submit(r.Context(), session, req)
	if err != nil {
		httpErr := errors.FromSubmission(err)
		h.Logger.Warn("Reservation submission failed",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.String("room_id", req.RoomID),
			zap.Int("status", httpErr.Code),
			zap.Error(err),
		)
		http.Error(w, httpErr.Message, httpErr.Code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateReservationResponse{
		Reservation: *reservation,
		Message:     "Reserva creada correctamente",
	})
}
