package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type TripPassengerRepository struct {
	DB *sql.DB
}

func (r TripPassengerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripPassengerColumns = `
	id,
	COALESCE(trip_id, 0),
	COALESCE(client_id, 0),
	COALESCE(seat_number, ''),
	COALESCE(cabin_number, ''),
	COALESCE(paid, 0),
	COALESCE(reserved_at, '')`

func scanTripPassenger(row interface{ Scan(...any) error }) (models.TripPassenger, error) {
	var tp models.TripPassenger
	err := row.Scan(
		&tp.ID,
		&tp.TripID,
		&tp.ClientID,
		&tp.SeatNumber,
		&tp.CabinNumber,
		&tp.Paid,
		&tp.ReservedAt,
	)
	return tp, err
}

func (r TripPassengerRepository) List() ([]models.TripPassenger, error) {
	rows, err := r.db().Query(`SELECT ` + tripPassengerColumns + ` FROM trip_passengers ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TripPassenger{}
	for rows.Next() {
		tp, err := scanTripPassenger(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tp)
	}
	return out, rows.Err()
}

func (r TripPassengerRepository) GetByID(id int64) (models.TripPassenger, error) {
	tp, err := scanTripPassenger(r.db().QueryRow(`SELECT `+tripPassengerColumns+` FROM trip_passengers WHERE id=? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TripPassenger{}, domain.NotFoundError{Resource: "pasajero"}
	}
	return tp, err
}

func validateTripPassenger(tp *models.TripPassenger, tripType string) error {
	if tp.TripID <= 0 {
		return domain.ValidationError{Field: "tripId", Msg: "id de viaje invalido"}
	}
	if tp.ClientID <= 0 {
		return domain.ValidationError{Field: "clientId", Msg: "id de cliente invalido"}
	}
	tp.SeatNumber = strings.TrimSpace(tp.SeatNumber)
	tp.CabinNumber = strings.TrimSpace(tp.CabinNumber)

	// un solo identificador de ubicacion segun el tipo de viaje
	if tripType == domain.TripCrucero {
		tp.SeatNumber = ""
	} else {
		tp.CabinNumber = ""
	}
	return nil
}

// Create validates the seat/cabin rule against the linked trip's type. A
// missing trip at creation time is a validation error; only ledger reads
// tolerate broken references.
func (r TripPassengerRepository) Create(tp models.TripPassenger) (models.TripPassenger, error) {
	trip, err := TripRepository{DB: r.DB}.GetByID(tp.TripID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.TripPassenger{}, domain.ValidationError{Field: "tripId", Msg: "el viaje no existe"}
		}
		return models.TripPassenger{}, err
	}
	if err := validateTripPassenger(&tp, trip.Type); err != nil {
		return models.TripPassenger{}, err
	}

	res, err := r.db().Exec(`
		INSERT INTO trip_passengers (trip_id, client_id, seat_number, cabin_number, paid, reserved_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		tp.TripID,
		tp.ClientID,
		tp.SeatNumber,
		tp.CabinNumber,
		tp.Paid,
		nullIfEmpty(tp.ReservedAt),
	)
	if err != nil {
		return models.TripPassenger{}, err
	}
	tp.ID, _ = res.LastInsertId()
	return tp, nil
}

func (r TripPassengerRepository) Update(id int64, tp models.TripPassenger) (models.TripPassenger, error) {
	trip, err := TripRepository{DB: r.DB}.GetByID(tp.TripID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.TripPassenger{}, domain.ValidationError{Field: "tripId", Msg: "el viaje no existe"}
		}
		return models.TripPassenger{}, err
	}
	if err := validateTripPassenger(&tp, trip.Type); err != nil {
		return models.TripPassenger{}, err
	}

	if _, err := r.db().Exec(`
		UPDATE trip_passengers
		SET trip_id=?, client_id=?, seat_number=?, cabin_number=?, paid=?, reserved_at=?
		WHERE id=?
	`,
		tp.TripID,
		tp.ClientID,
		tp.SeatNumber,
		tp.CabinNumber,
		tp.Paid,
		nullIfEmpty(tp.ReservedAt),
		id,
	); err != nil {
		return models.TripPassenger{}, err
	}
	tp.ID = id
	return tp, nil
}

func (r TripPassengerRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM trip_passengers WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "pasajero"}
	}
	return nil
}
