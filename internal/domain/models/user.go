package models

// User is a back-office account. PasswordHash never leaves the server.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"createdAt,omitempty"`
}
