package repositories

import (
	"errors"
	"testing"

	"backend/internal/domain"
	"backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestClientRepositoryList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "dni", "phone", "email", "address", "dni_expiry", "passport_expiry", "notes", "created_at"}).
		AddRow(2, "Juan Perez", "28555666", "11-5555", "juan@example.com", "", "2027-03-01", "", "", "").
		AddRow(1, "Maria Lopez", "30111222", "", "", "", "", "", "", "")
	mock.ExpectQuery("FROM clients ORDER").WillReturnRows(rows)

	clients, err := ClientRepository{DB: db}.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("len = %d, want 2", len(clients))
	}
	if clients[0].Name != "Juan Perez" || clients[0].DNIExpiry != "2027-03-01" {
		t.Fatalf("unexpected first client %+v", clients[0])
	}
}

func TestClientRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO clients").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("created_at").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow("2025-01-01 10:00:00"))

	c, err := ClientRepository{DB: db}.Create(models.Client{Name: "  Maria  Lopez ", DNI: "30111222"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.ID != 7 {
		t.Fatalf("ID = %d, want 7", c.ID)
	}
	if c.Name != "Maria Lopez" {
		t.Fatalf("name not normalized: %q", c.Name)
	}
}

func TestClientRepositoryCreateRequiresName(t *testing.T) {
	_, err := ClientRepository{}.Create(models.Client{Name: "   "})
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestClientRepositoryDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM clients").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = ClientRepository{DB: db}.Delete(99)
	if err == nil || !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestClientRepositoryAppendSkipsNameless(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO clients").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	n, err := ClientRepository{DB: db}.AppendClients([]models.Client{
		{Name: "Maria Lopez"},
		{Name: "   "},
	})
	if err != nil {
		t.Fatalf("AppendClients error: %v", err)
	}
	if n != 1 {
		t.Fatalf("inserted = %d, want 1", n)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestClientRepositoryAppendRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO clients").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO clients").WillReturnError(errors.New("columna demasiado larga"))
	mock.ExpectRollback()

	n, err := ClientRepository{DB: db}.AppendClients([]models.Client{
		{Name: "Maria Lopez"},
		{Name: "Juan Perez"},
	})
	if err == nil {
		t.Fatal("expected append error")
	}
	if n != 0 {
		t.Fatalf("inserted = %d, want 0 after rollback", n)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
