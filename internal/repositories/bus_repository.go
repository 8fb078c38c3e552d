package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type BusRepository struct {
	DB *sql.DB
}

func (r BusRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const busColumns = `
	id,
	COALESCE(patente, ''),
	COALESCE(seats, 0),
	COALESCE(service_type, ''),
	COALESCE(seat_map_image, ''),
	COALESCE(created_at, '')`

func scanBus(row interface{ Scan(...any) error }) (models.Bus, error) {
	var b models.Bus
	err := row.Scan(
		&b.ID,
		&b.Patente,
		&b.Seats,
		&b.ServiceType,
		&b.SeatMapImage,
		&b.CreatedAt,
	)
	return b, err
}

func (r BusRepository) List() ([]models.Bus, error) {
	rows, err := r.db().Query(`SELECT ` + busColumns + ` FROM buses ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buses := []models.Bus{}
	for rows.Next() {
		b, err := scanBus(rows)
		if err != nil {
			return nil, err
		}
		buses = append(buses, b)
	}
	return buses, rows.Err()
}

func (r BusRepository) GetByID(id int64) (models.Bus, error) {
	b, err := scanBus(r.db().QueryRow(`SELECT `+busColumns+` FROM buses WHERE id=? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bus{}, domain.NotFoundError{Resource: "bus"}
	}
	return b, err
}

func (r BusRepository) Create(b models.Bus) (models.Bus, error) {
	b.Patente = strings.ToUpper(strings.TrimSpace(b.Patente))
	if b.Patente == "" {
		return models.Bus{}, domain.ValidationError{Field: "patente", Msg: "la patente es obligatoria"}
	}
	if b.Seats <= 0 {
		return models.Bus{}, domain.ValidationError{Field: "seats", Msg: "la cantidad de asientos debe ser mayor a cero"}
	}

	res, err := r.db().Exec(`
		INSERT INTO buses (patente, seats, service_type, seat_map_image)
		VALUES (?, ?, ?, ?)
	`,
		b.Patente,
		b.Seats,
		strings.TrimSpace(b.ServiceType),
		b.SeatMapImage,
	)
	if err != nil {
		return models.Bus{}, err
	}
	b.ID, _ = res.LastInsertId()
	return b, nil
}

func (r BusRepository) Update(id int64, b models.Bus) (models.Bus, error) {
	b.Patente = strings.ToUpper(strings.TrimSpace(b.Patente))
	if b.Patente == "" {
		return models.Bus{}, domain.ValidationError{Field: "patente", Msg: "la patente es obligatoria"}
	}

	if _, err := r.db().Exec(`
		UPDATE buses
		SET patente=?, seats=?, service_type=?, seat_map_image=?
		WHERE id=?
	`,
		b.Patente,
		b.Seats,
		strings.TrimSpace(b.ServiceType),
		b.SeatMapImage,
		id,
	); err != nil {
		return models.Bus{}, err
	}
	b.ID = id
	return b, nil
}

func (r BusRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM buses WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "bus"}
	}
	return nil
}
