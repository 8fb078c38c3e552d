// Package ledger computes client account balances from the in-memory entity
// collections. Every function is pure: it only reads its inputs, never touches
// storage, and never fails — rows whose linked trip is missing contribute zero
// and are surfaced through the orphan counters so callers can flag them.
package ledger

import (
	"sort"

	"backend/internal/domain"
	"backend/internal/domain/models"
)

// BalanceSummary is the per-client, per-currency aggregate.
// Balance > 0 means the client owes money; < 0 is credit in their favor.
type BalanceSummary struct {
	TotalCharges  float64 `json:"totalCharges"`
	TotalPayments float64 `json:"totalPayments"`
	Balance       float64 `json:"balance"`
	// OrphanRows counts trip-passenger rows whose trip id resolved to nothing.
	OrphanRows int `json:"orphanRows,omitempty"`
}

// Transaction is one entry of a client account history.
type Transaction struct {
	Type          string  `json:"type"` // charge | payment
	Date          string  `json:"date"` // YYYY-MM-DD
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
	TripID        int64   `json:"tripId,omitempty"`
	PaymentID     int64   `json:"paymentId,omitempty"`
	ReceiptNumber string  `json:"receiptNumber,omitempty"`
}

// Totals aggregates balances across a set of clients for one currency.
type Totals struct {
	TotalCharges  float64 `json:"totalCharges"`
	TotalPayments float64 `json:"totalPayments"`
	// TotalPending sums only positive balances; credits never offset debts.
	TotalPending  float64 `json:"totalPending"`
	TotalReceipts int     `json:"totalReceipts"`
	OrphanRows    int     `json:"orphanRows,omitempty"`
}

func indexTrips(trips []models.Trip) map[int64]models.Trip {
	idx := make(map[int64]models.Trip, len(trips))
	for _, t := range trips {
		idx[t.ID] = t
	}
	return idx
}

// ComputeBalance sums trip charges (via trip-passenger links, filtered by the
// linked trip's currency) minus received payments in that same currency.
// Currencies are never mixed in one computation.
func ComputeBalance(clientID int64, currency string, trips []models.Trip, passengers []models.TripPassenger, payments []models.Payment) BalanceSummary {
	tripsByID := indexTrips(trips)

	var out BalanceSummary
	for _, tp := range passengers {
		if tp.ClientID != clientID {
			continue
		}
		trip, ok := tripsByID[tp.TripID]
		if !ok {
			// referencia rota: contribuye cero, pero queda contada
			out.OrphanRows++
			continue
		}
		if trip.Currency != currency {
			continue
		}
		out.TotalCharges += trip.Importe
	}

	for _, p := range payments {
		if p.ClientID != clientID || p.Type != domain.MovementPayment || p.Currency != currency {
			continue
		}
		out.TotalPayments += p.Amount
	}

	out.Balance = out.TotalCharges - out.TotalPayments
	return out
}

// TransactionHistory mixes charge entries (trip-passenger + trip) and payment
// entries for one client and currency, most recent first. Entries with equal
// dates have no guaranteed relative order.
func TransactionHistory(clientID int64, currency string, trips []models.Trip, passengers []models.TripPassenger, payments []models.Payment) []Transaction {
	tripsByID := indexTrips(trips)

	history := []Transaction{}
	for _, tp := range passengers {
		if tp.ClientID != clientID {
			continue
		}
		trip, ok := tripsByID[tp.TripID]
		if !ok || trip.Currency != currency {
			continue
		}
		date := tp.ReservedAt
		if date == "" {
			date = trip.DepartureDate
		}
		history = append(history, Transaction{
			Type:        domain.MovementCharge,
			Date:        date,
			Amount:      trip.Importe,
			Currency:    trip.Currency,
			Description: trip.Destination,
			TripID:      trip.ID,
		})
	}

	for _, p := range payments {
		if p.ClientID != clientID || p.Currency != currency {
			continue
		}
		history = append(history, Transaction{
			Type:          p.Type,
			Date:          p.Date,
			Amount:        p.Amount,
			Currency:      p.Currency,
			Description:   p.Description,
			TripID:        p.TripID,
			PaymentID:     p.ID,
			ReceiptNumber: p.ReceiptNumber,
		})
	}

	// ISO dates sort lexicographically
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})
	return history
}

// CurrencyTotals aggregates ComputeBalance across clients for one currency.
// onlyClient scopes the aggregate to a single client when > 0.
func CurrencyTotals(currency string, clients []models.Client, trips []models.Trip, passengers []models.TripPassenger, payments []models.Payment, onlyClient int64) Totals {
	var out Totals
	for _, cl := range clients {
		if onlyClient > 0 && cl.ID != onlyClient {
			continue
		}
		bal := ComputeBalance(cl.ID, currency, trips, passengers, payments)
		out.TotalCharges += bal.TotalCharges
		out.TotalPayments += bal.TotalPayments
		out.OrphanRows += bal.OrphanRows
		if bal.Balance > 0 {
			out.TotalPending += bal.Balance
		}
	}

	for _, p := range payments {
		if p.Type != domain.MovementPayment || p.Currency != currency || p.ReceiptNumber == "" {
			continue
		}
		if onlyClient > 0 && p.ClientID != onlyClient {
			continue
		}
		out.TotalReceipts++
	}
	return out
}
