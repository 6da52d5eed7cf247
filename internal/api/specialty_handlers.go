package api

import (
	"encoding/json"
	"net/http"

	"salascrea/internal/entities"
)

type SpecialtyHandler struct{}

func NewSpecialtyHandler() *SpecialtyHandler {
	return &SpecialtyHandler{}
}

// ListSpecialties serves the fixed entry-screen menu.
func (h *SpecialtyHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SpecialtiesResponse{Specialties: entities.Specialties})
}
