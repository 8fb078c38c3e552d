package models

// Trip is a sellable departure. Importe is the price per passenger in the
// trip's currency. BusID only applies to type "grupal".
type Trip struct {
	ID            int64   `json:"id"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departureDate"`
	ReturnDate    string  `json:"returnDate"`
	Importe       float64 `json:"importe"`
	Currency      string  `json:"currency"`
	Type          string  `json:"type"`
	BusID         int64   `json:"busId,omitempty"`
	Archived      bool    `json:"archived"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

// TripPassenger links a client to a trip. Depending on the trip type either
// SeatNumber (bus/aereo) or CabinNumber (crucero) is meaningful, never both.
type TripPassenger struct {
	ID          int64  `json:"id"`
	TripID      int64  `json:"tripId"`
	ClientID    int64  `json:"clientId"`
	SeatNumber  string `json:"seatNumber,omitempty"`
	CabinNumber string `json:"cabinNumber,omitempty"`
	Paid        bool   `json:"paid"`
	ReservedAt  string `json:"reservedAt,omitempty"`
}
