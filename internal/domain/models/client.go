package models

// Client is a customer of the agency. DNI/passport expirations are optional
// and kept as YYYY-MM-DD strings (empty means not loaded).
type Client struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DNI            string `json:"dni"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	DNIExpiry      string `json:"dniExpiry,omitempty"`
	PassportExpiry string `json:"passportExpiry,omitempty"`
	Notes          string `json:"notes,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}
