package services

import (
	"fmt"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/ledger"
	"backend/internal/repositories"
	"backend/internal/utils"
)

// AccountService resolves the entity collections through the repositories and
// runs the pure ledger functions over them. Balances are recomputed on every
// call; nothing is cached.
type AccountService struct {
	ClientRepo    repositories.ClientRepository
	TripRepo      repositories.TripRepository
	PassengerRepo repositories.TripPassengerRepository
	PaymentRepo   repositories.PaymentRepository
	RequestID     string
}

type collections struct {
	clients    []models.Client
	trips      []models.Trip
	passengers []models.TripPassenger
	payments   []models.Payment
}

func (s AccountService) load() (collections, error) {
	var col collections
	var err error

	if col.clients, err = s.ClientRepo.List(); err != nil {
		return col, domain.InternalError{Msg: "no se pudieron cargar los clientes", Err: err}
	}
	if col.trips, err = s.TripRepo.List(); err != nil {
		return col, domain.InternalError{Msg: "no se pudieron cargar los viajes", Err: err}
	}
	if col.passengers, err = s.PassengerRepo.List(); err != nil {
		return col, domain.InternalError{Msg: "no se pudieron cargar los pasajeros", Err: err}
	}
	if col.payments, err = s.PaymentRepo.List(); err != nil {
		return col, domain.InternalError{Msg: "no se pudieron cargar los pagos", Err: err}
	}
	return col, nil
}

func (s AccountService) logOrphans(clientID int64, orphans int) {
	if orphans == 0 {
		return
	}
	// referencia rota trip_passenger -> trip: se tolera pero queda registrado
	utils.LogWarn(s.RequestID, "accounts", "orphan_rows",
		fmt.Sprintf("client_id=%d rows_without_trip=%d", clientID, orphans))
}

// ClientBalance computes the per-currency balance summary for one client.
func (s AccountService) ClientBalance(clientID int64, currency string) (ledger.BalanceSummary, error) {
	if !domain.ValidCurrency(currency) {
		return ledger.BalanceSummary{}, domain.ValidationError{Field: "currency", Msg: "moneda desconocida"}
	}
	if _, err := s.ClientRepo.GetByID(clientID); err != nil {
		return ledger.BalanceSummary{}, err
	}

	col, err := s.load()
	if err != nil {
		return ledger.BalanceSummary{}, err
	}

	bal := ledger.ComputeBalance(clientID, currency, col.trips, col.passengers, col.payments)
	s.logOrphans(clientID, bal.OrphanRows)
	return bal, nil
}

// ClientHistory returns the ordered movement list for one client and currency.
func (s AccountService) ClientHistory(clientID int64, currency string) ([]ledger.Transaction, error) {
	if !domain.ValidCurrency(currency) {
		return nil, domain.ValidationError{Field: "currency", Msg: "moneda desconocida"}
	}
	if _, err := s.ClientRepo.GetByID(clientID); err != nil {
		return nil, err
	}

	col, err := s.load()
	if err != nil {
		return nil, err
	}
	return ledger.TransactionHistory(clientID, currency, col.trips, col.passengers, col.payments), nil
}

// Totals aggregates balances across clients; onlyClient=0 means all.
func (s AccountService) Totals(currency string, onlyClient int64) (ledger.Totals, error) {
	if !domain.ValidCurrency(currency) {
		return ledger.Totals{}, domain.ValidationError{Field: "currency", Msg: "moneda desconocida"}
	}

	col, err := s.load()
	if err != nil {
		return ledger.Totals{}, err
	}

	totals := ledger.CurrencyTotals(currency, col.clients, col.trips, col.passengers, col.payments, onlyClient)
	s.logOrphans(onlyClient, totals.OrphanRows)
	return totals, nil
}

// AccountRow is one line of the account summary export.
type AccountRow struct {
	ClientID      int64
	ClientName    string
	Currency      string
	TotalCharges  float64
	TotalPayments float64
	Balance       float64
}

// SummaryRows produces one row per client per currency with activity,
// in client-id order (the export's documented row order).
func (s AccountService) SummaryRows() ([]AccountRow, error) {
	col, err := s.load()
	if err != nil {
		return nil, err
	}

	rows := []AccountRow{}
	for _, cl := range col.clients {
		for _, cur := range []string{domain.CurrencyARS, domain.CurrencyUSD} {
			bal := ledger.ComputeBalance(cl.ID, cur, col.trips, col.passengers, col.payments)
			s.logOrphans(cl.ID, bal.OrphanRows)
			if bal.TotalCharges == 0 && bal.TotalPayments == 0 {
				continue
			}
			rows = append(rows, AccountRow{
				ClientID:      cl.ID,
				ClientName:    cl.Name,
				Currency:      cur,
				TotalCharges:  bal.TotalCharges,
				TotalPayments: bal.TotalPayments,
				Balance:       bal.Balance,
			})
		}
	}
	return rows, nil
}
