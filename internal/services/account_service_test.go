package services

import (
	"testing"

	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func clientRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "dni", "phone", "email", "address", "dni_expiry", "passport_expiry", "notes", "created_at"}).
		AddRow(1, "Maria Lopez", "30111222", "", "", "", "", "", "", "2025-01-01 10:00:00")
}

func tripRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "destination", "departure_date", "return_date", "importe", "currency", "type", "bus_id", "archived", "created_at"}).
		AddRow(10, "Bariloche", "2025-07-10", "2025-07-17", 1000.0, "ARS", "grupal", 5, false, "")
}

func passengerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "trip_id", "client_id", "seat_number", "cabin_number", "paid", "reserved_at"}).
		AddRow(100, 10, 1, "12", "", false, "2025-05-01")
}

func paymentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "client_id", "trip_id", "type", "amount", "currency", "description", "receipt_number", "date", "created_at"}).
		AddRow(200, 1, 10, "payment", 400.0, "ARS", "Seña", "R-0001", "2025-05-02", "")
}

func accountServiceWithMock(t *testing.T) (AccountService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := AccountService{
		ClientRepo:    repositories.ClientRepository{DB: db},
		TripRepo:      repositories.TripRepository{DB: db},
		PassengerRepo: repositories.TripPassengerRepository{DB: db},
		PaymentRepo:   repositories.PaymentRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func expectCollections(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("FROM clients ORDER").WillReturnRows(clientRows())
	mock.ExpectQuery("FROM trips ORDER").WillReturnRows(tripRows())
	mock.ExpectQuery("FROM trip_passengers ORDER").WillReturnRows(passengerRows())
	mock.ExpectQuery("FROM payments ORDER").WillReturnRows(paymentRows())
}

func TestAccountServiceClientBalance(t *testing.T) {
	svc, mock, done := accountServiceWithMock(t)
	defer done()

	mock.ExpectQuery("FROM clients WHERE id").WithArgs(1).WillReturnRows(clientRows())
	expectCollections(mock)

	bal, err := svc.ClientBalance(1, "ARS")
	if err != nil {
		t.Fatalf("ClientBalance error: %v", err)
	}
	if bal.TotalCharges != 1000 || bal.TotalPayments != 400 || bal.Balance != 600 {
		t.Fatalf("unexpected balance %+v", bal)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountServiceRejectsUnknownCurrency(t *testing.T) {
	svc, _, done := accountServiceWithMock(t)
	defer done()

	if _, err := svc.ClientBalance(1, "EUR"); err == nil {
		t.Fatal("expected validation error for unknown currency")
	}
}

func TestAccountServiceTotals(t *testing.T) {
	svc, mock, done := accountServiceWithMock(t)
	defer done()

	expectCollections(mock)

	totals, err := svc.Totals("ARS", 0)
	if err != nil {
		t.Fatalf("Totals error: %v", err)
	}
	if totals.TotalPending != 600 {
		t.Fatalf("TotalPending = %v, want 600", totals.TotalPending)
	}
	if totals.TotalReceipts != 1 {
		t.Fatalf("TotalReceipts = %d, want 1", totals.TotalReceipts)
	}
}

func TestAccountServiceSummaryRows(t *testing.T) {
	svc, mock, done := accountServiceWithMock(t)
	defer done()

	expectCollections(mock)

	rows, err := svc.SummaryRows()
	if err != nil {
		t.Fatalf("SummaryRows error: %v", err)
	}
	// un solo cliente con movimientos, solo en ARS
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Currency != "ARS" || rows[0].Balance != 600 {
		t.Fatalf("unexpected row %+v", rows[0])
	}
}
