package repositories

import (
	"testing"

	"backend/internal/domain"
	"backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func userFixture(role string) models.User {
	return models.User{Name: "Test", Username: "test", Email: "test@agencia.test", Role: role, Active: true}
}

func TestTripCreateDropsBusForNonGrupal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO trips").
		WillReturnResult(sqlmock.NewResult(3, 1))

	trip, err := TripRepository{DB: db}.Create(models.Trip{
		Destination: "Rio de Janeiro",
		Importe:     800,
		Currency:    "usd",
		Type:        "AEREO",
		BusID:       5,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if trip.BusID != 0 {
		t.Fatalf("bus_id should be cleared for non-grupal trips, got %d", trip.BusID)
	}
	if trip.Currency != "USD" || trip.Type != "aereo" {
		t.Fatalf("currency/type not normalized: %+v", trip)
	}
}

func TestTripCreateRejectsUnknownCurrency(t *testing.T) {
	_, err := TripRepository{}.Create(models.Trip{Destination: "Bariloche", Currency: "EUR", Type: "grupal"})
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTripPassengerSeatCabinExclusive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cruiseTrip := sqlmock.NewRows([]string{"id", "destination", "departure_date", "return_date", "importe", "currency", "type", "bus_id", "archived", "created_at"}).
		AddRow(20, "Caribe", "2025-12-01", "2025-12-10", 2500.0, "USD", "crucero", 0, false, "")
	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(20)).WillReturnRows(cruiseTrip)
	mock.ExpectExec("INSERT INTO trip_passengers").WillReturnResult(sqlmock.NewResult(1, 1))

	tp, err := TripPassengerRepository{DB: db}.Create(models.TripPassenger{
		TripID:      20,
		ClientID:    1,
		SeatNumber:  "12",
		CabinNumber: "B204",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	// en un crucero solo la cabina es significativa
	if tp.SeatNumber != "" || tp.CabinNumber != "B204" {
		t.Fatalf("seat/cabin rule not applied: %+v", tp)
	}
}

func TestTripPassengerCreateRejectsMissingTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = TripPassengerRepository{DB: db}.Create(models.TripPassenger{TripID: 999, ClientID: 1})
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPaymentCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		payment models.Payment
	}{
		{"missing client", models.Payment{Type: "payment", Amount: 100, Currency: "ARS", Date: "2025-01-01"}},
		{"bad type", models.Payment{ClientID: 1, Type: "refund", Amount: 100, Currency: "ARS", Date: "2025-01-01"}},
		{"zero amount", models.Payment{ClientID: 1, Type: "payment", Amount: 0, Currency: "ARS", Date: "2025-01-01"}},
		{"bad currency", models.Payment{ClientID: 1, Type: "payment", Amount: 100, Currency: "BRL", Date: "2025-01-01"}},
		{"missing date", models.Payment{ClientID: 1, Type: "payment", Amount: 100, Currency: "ARS"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PaymentRepository{}.Create(tt.payment)
			if err == nil || !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
