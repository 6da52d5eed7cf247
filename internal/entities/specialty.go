package entities

// Specialty is one entry of the entry-screen menu. Route points at the
// shift-booking screen the frontend navigates to.
type Specialty struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Route string `json:"route"`
}

var Specialties = []Specialty{
	{ID: "medicina-general", Name: "Medicina General", Route: "/Pantalla_Entrada/Turnos"},
	{ID: "psicologia", Name: "Psicología", Route: "/Pantalla_Entrada/Turnos"},
	{ID: "odontologia", Name: "Odontología", Route: "/Pantalla_Entrada/Turnos"},
}
