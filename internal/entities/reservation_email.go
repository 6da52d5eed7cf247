package entities

type ReservationEmailData struct {
	UserName      string
	RoomName      string
	DayFormatted  string
	TimeFormatted string
	People        int
	CurrentYear   int
}
