package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/utils"
)

type ClientRepository struct {
	DB *sql.DB
}

func (r ClientRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const clientColumns = `
	id,
	COALESCE(name, ''),
	COALESCE(dni, ''),
	COALESCE(phone, ''),
	COALESCE(email, ''),
	COALESCE(address, ''),
	COALESCE(dni_expiry, ''),
	COALESCE(passport_expiry, ''),
	COALESCE(notes, ''),
	COALESCE(created_at, '')`

func scanClient(row interface{ Scan(...any) error }) (models.Client, error) {
	var c models.Client
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.DNI,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.DNIExpiry,
		&c.PassportExpiry,
		&c.Notes,
		&c.CreatedAt,
	)
	return c, err
}

func (r ClientRepository) List() ([]models.Client, error) {
	rows, err := r.db().Query(`SELECT ` + clientColumns + ` FROM clients ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r ClientRepository) GetByID(id int64) (models.Client, error) {
	c, err := scanClient(r.db().QueryRow(`SELECT `+clientColumns+` FROM clients WHERE id=? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, domain.NotFoundError{Resource: "cliente"}
	}
	return c, err
}

func (r ClientRepository) Create(c models.Client) (models.Client, error) {
	c.Name = utils.NormalizeSpace(c.Name)
	if c.Name == "" {
		return models.Client{}, domain.ValidationError{Field: "name", Msg: "el nombre es obligatorio"}
	}

	res, err := r.db().Exec(`
		INSERT INTO clients (name, dni, phone, email, address, dni_expiry, passport_expiry, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		c.Name,
		strings.TrimSpace(c.DNI),
		strings.TrimSpace(c.Phone),
		strings.TrimSpace(c.Email),
		strings.TrimSpace(c.Address),
		nullIfEmpty(c.DNIExpiry),
		nullIfEmpty(c.PassportExpiry),
		strings.TrimSpace(c.Notes),
	)
	if err != nil {
		return models.Client{}, err
	}

	c.ID, _ = res.LastInsertId()
	_ = r.db().QueryRow(`SELECT COALESCE(created_at, '') FROM clients WHERE id=?`, c.ID).Scan(&c.CreatedAt)
	return c, nil
}

func (r ClientRepository) Update(id int64, c models.Client) (models.Client, error) {
	c.Name = utils.NormalizeSpace(c.Name)
	if c.Name == "" {
		return models.Client{}, domain.ValidationError{Field: "name", Msg: "el nombre es obligatorio"}
	}

	res, err := r.db().Exec(`
		UPDATE clients
		SET name=?, dni=?, phone=?, email=?, address=?, dni_expiry=?, passport_expiry=?, notes=?
		WHERE id=?
	`,
		c.Name,
		strings.TrimSpace(c.DNI),
		strings.TrimSpace(c.Phone),
		strings.TrimSpace(c.Email),
		strings.TrimSpace(c.Address),
		nullIfEmpty(c.DNIExpiry),
		nullIfEmpty(c.PassportExpiry),
		strings.TrimSpace(c.Notes),
		id,
	)
	if err != nil {
		return models.Client{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// puede ser no-op update; confirmamos existencia
		if _, err := r.GetByID(id); err != nil {
			return models.Client{}, err
		}
	}
	c.ID = id
	return c, nil
}

func (r ClientRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM clients WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "cliente"}
	}
	return nil
}

// AppendClients bulk-inserts imported rows inside one transaction: a store
// failure mid-file rolls back every row already written. Incoming ids are
// ignored so the store assigns fresh ones; nothing is replaced or deduplicated.
func (r ClientRepository) AppendClients(rows []models.Client) (int, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, c := range rows {
		name := utils.NormalizeSpace(c.Name)
		if name == "" {
			continue
		}
		if _, err := tx.Exec(`
			INSERT INTO clients (name, dni, phone, email, address, dni_expiry, passport_expiry, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			name,
			strings.TrimSpace(c.DNI),
			strings.TrimSpace(c.Phone),
			strings.TrimSpace(c.Email),
			strings.TrimSpace(c.Address),
			nullIfEmpty(c.DNIExpiry),
			nullIfEmpty(c.PassportExpiry),
			strings.TrimSpace(c.Notes),
		); err != nil {
			_ = tx.Rollback()
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// nullIfEmpty stores optional strings as NULL instead of ”.
func nullIfEmpty(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
