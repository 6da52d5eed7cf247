package entities

// MaxCapacity is the fixed aforo shared by every room. The catalog is
// not sourced from the backend.
const MaxCapacity = 30

type Room struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RoomStatus is a room together with its derived occupancy figures for
// the room-card view.
type RoomStatus struct {
	Room
	Capacity  int `json:"capacity"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

var Rooms = []Room{
	{
		ID:          "Sala-Crea",
		Name:        "Sala CREA",
		Description: "Espacio para actividades creativas",
	},
	{
		ID:          "Sala-De-Descanso",
		Name:        "Sala de Descanso",
		Description: "Espacio para relajación",
	},
}

func RoomByID(id string) (Room, bool) {
	for _, r := range Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}
