package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const paymentColumns = `
	id,
	COALESCE(client_id, 0),
	COALESCE(trip_id, 0),
	COALESCE(type, 'payment'),
	COALESCE(amount, 0),
	COALESCE(currency, 'ARS'),
	COALESCE(description, ''),
	COALESCE(receipt_number, ''),
	COALESCE(date, ''),
	COALESCE(created_at, '')`

func scanPayment(row interface{ Scan(...any) error }) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.ID,
		&p.ClientID,
		&p.TripID,
		&p.Type,
		&p.Amount,
		&p.Currency,
		&p.Description,
		&p.ReceiptNumber,
		&p.Date,
		&p.CreatedAt,
	)
	return p, err
}

func (r PaymentRepository) List() ([]models.Payment, error) {
	rows, err := r.db().Query(`SELECT ` + paymentColumns + ` FROM payments ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r PaymentRepository) GetByID(id int64) (models.Payment, error) {
	p, err := scanPayment(r.db().QueryRow(`SELECT `+paymentColumns+` FROM payments WHERE id=? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, domain.NotFoundError{Resource: "pago"}
	}
	return p, err
}

func validatePayment(p *models.Payment) error {
	p.Type = strings.ToLower(strings.TrimSpace(p.Type))
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	p.Description = strings.TrimSpace(p.Description)
	p.ReceiptNumber = strings.TrimSpace(p.ReceiptNumber)

	if p.ClientID <= 0 {
		return domain.ValidationError{Field: "clientId", Msg: "id de cliente invalido"}
	}
	if p.Type != domain.MovementPayment && p.Type != domain.MovementCharge {
		return domain.ValidationError{Field: "type", Msg: "tipo de movimiento desconocido"}
	}
	if p.Amount <= 0 {
		return domain.ValidationError{Field: "amount", Msg: "el monto debe ser mayor a cero"}
	}
	if !domain.ValidCurrency(p.Currency) {
		return domain.ValidationError{Field: "currency", Msg: "moneda desconocida"}
	}
	if strings.TrimSpace(p.Date) == "" {
		return domain.ValidationError{Field: "date", Msg: "la fecha es obligatoria"}
	}
	return nil
}

func (r PaymentRepository) Create(p models.Payment) (models.Payment, error) {
	if err := validatePayment(&p); err != nil {
		return models.Payment{}, err
	}

	res, err := r.db().Exec(`
		INSERT INTO payments (client_id, trip_id, type, amount, currency, description, receipt_number, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ClientID,
		nullIfZero(p.TripID),
		p.Type,
		p.Amount,
		p.Currency,
		p.Description,
		nullIfEmpty(p.ReceiptNumber),
		p.Date,
	)
	if err != nil {
		return models.Payment{}, err
	}
	p.ID, _ = res.LastInsertId()
	return p, nil
}

func (r PaymentRepository) Update(id int64, p models.Payment) (models.Payment, error) {
	if err := validatePayment(&p); err != nil {
		return models.Payment{}, err
	}

	if _, err := r.db().Exec(`
		UPDATE payments
		SET client_id=?, trip_id=?, type=?, amount=?, currency=?, description=?, receipt_number=?, date=?
		WHERE id=?
	`,
		p.ClientID,
		nullIfZero(p.TripID),
		p.Type,
		p.Amount,
		p.Currency,
		p.Description,
		nullIfEmpty(p.ReceiptNumber),
		p.Date,
		id,
	); err != nil {
		return models.Payment{}, err
	}
	p.ID = id
	return p, nil
}

func (r PaymentRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM payments WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "pago"}
	}
	return nil
}
