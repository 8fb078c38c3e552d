package models

// Payment is a monetary movement on a client account. Type "payment" is money
// received from the client, "charge" is a manual debit outside a trip.
type Payment struct {
	ID            int64   `json:"id"`
	ClientID      int64   `json:"clientId"`
	TripID        int64   `json:"tripId,omitempty"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
	ReceiptNumber string  `json:"receiptNumber,omitempty"`
	Date          string  `json:"date"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}
