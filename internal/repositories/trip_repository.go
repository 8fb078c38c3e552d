package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `
	id,
	COALESCE(destination, ''),
	COALESCE(departure_date, ''),
	COALESCE(return_date, ''),
	COALESCE(importe, 0),
	COALESCE(currency, 'ARS'),
	COALESCE(type, 'grupal'),
	COALESCE(bus_id, 0),
	COALESCE(archived, 0),
	COALESCE(created_at, '')`

func scanTrip(row interface{ Scan(...any) error }) (models.Trip, error) {
	var t models.Trip
	err := row.Scan(
		&t.ID,
		&t.Destination,
		&t.DepartureDate,
		&t.ReturnDate,
		&t.Importe,
		&t.Currency,
		&t.Type,
		&t.BusID,
		&t.Archived,
		&t.CreatedAt,
	)
	return t, err
}

// List returns every trip, archived included; the caller filters.
func (r TripRepository) List() ([]models.Trip, error) {
	rows, err := r.db().Query(`SELECT ` + tripColumns + ` FROM trips ORDER BY departure_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	t, err := scanTrip(r.db().QueryRow(`SELECT `+tripColumns+` FROM trips WHERE id=? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "viaje"}
	}
	return t, err
}

func validateTrip(t *models.Trip) error {
	t.Destination = strings.TrimSpace(t.Destination)
	t.Currency = strings.ToUpper(strings.TrimSpace(t.Currency))
	t.Type = strings.ToLower(strings.TrimSpace(t.Type))

	if t.Destination == "" {
		return domain.ValidationError{Field: "destination", Msg: "el destino es obligatorio"}
	}
	if !domain.ValidCurrency(t.Currency) {
		return domain.ValidationError{Field: "currency", Msg: "moneda desconocida"}
	}
	if !domain.ValidTripType(t.Type) {
		return domain.ValidationError{Field: "type", Msg: "tipo de viaje desconocido"}
	}
	if t.Importe < 0 {
		return domain.ValidationError{Field: "importe", Msg: "el importe no puede ser negativo"}
	}
	// solo los viajes grupales llevan bus asignado
	if t.Type != domain.TripGrupal {
		t.BusID = 0
	}
	return nil
}

func (r TripRepository) Create(t models.Trip) (models.Trip, error) {
	if err := validateTrip(&t); err != nil {
		return models.Trip{}, err
	}

	res, err := r.db().Exec(`
		INSERT INTO trips (destination, departure_date, return_date, importe, currency, type, bus_id, archived)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.Destination,
		nullIfEmpty(t.DepartureDate),
		nullIfEmpty(t.ReturnDate),
		t.Importe,
		t.Currency,
		t.Type,
		nullIfZero(t.BusID),
		t.Archived,
	)
	if err != nil {
		return models.Trip{}, err
	}
	t.ID, _ = res.LastInsertId()
	return t, nil
}

func (r TripRepository) Update(id int64, t models.Trip) (models.Trip, error) {
	if err := validateTrip(&t); err != nil {
		return models.Trip{}, err
	}

	if _, err := r.db().Exec(`
		UPDATE trips
		SET destination=?, departure_date=?, return_date=?, importe=?, currency=?, type=?, bus_id=?, archived=?
		WHERE id=?
	`,
		t.Destination,
		nullIfEmpty(t.DepartureDate),
		nullIfEmpty(t.ReturnDate),
		t.Importe,
		t.Currency,
		t.Type,
		nullIfZero(t.BusID),
		t.Archived,
		id,
	); err != nil {
		return models.Trip{}, err
	}
	t.ID = id
	return t, nil
}

func (r TripRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM trips WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "viaje"}
	}
	return nil
}

func nullIfZero(n int64) any {
	if n == 0 {
		return nil
	}
	return n
}
