package models

// Bus is a unit of the fleet used by group trips.
type Bus struct {
	ID          int64  `json:"id"`
	Patente     string `json:"patente"`
	Seats       int    `json:"seats"`
	ServiceType string `json:"serviceType"`
	// SeatMapImage holds an optional data URL with the seat layout.
	SeatMapImage string `json:"seatMapImage,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}
