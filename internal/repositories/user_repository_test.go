package repositories

import (
	"testing"

	"backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func userRow(t *testing.T, active bool, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return sqlmock.NewRows([]string{"id", "name", "username", "email", "password_hash", "role", "active", "created_at"}).
		AddRow(1, "Admin", "admin", "admin@agencia.test", string(hash), "admin", active, "")
}

func TestAuthenticateSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM users").WithArgs("admin", "admin").WillReturnRows(userRow(t, true, "secreto1"))

	u, err := UserRepository{DB: db}.Authenticate("admin", "secreto1")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if u.Role != "admin" {
		t.Fatalf("role = %q, want admin", u.Role)
	}
	if u.PasswordHash != "" {
		t.Fatal("password hash leaked out of Authenticate")
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM users").WithArgs("admin", "admin").WillReturnRows(userRow(t, true, "secreto1"))

	_, err = UserRepository{DB: db}.Authenticate("admin", "otra-cosa")
	if err == nil || !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAuthenticateInactiveUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM users").WithArgs("admin", "admin").WillReturnRows(userRow(t, false, "secreto1"))

	_, err = UserRepository{DB: db}.Authenticate("admin", "secreto1")
	if err == nil || !domain.IsNotFound(err) {
		t.Fatalf("expected not found for inactive user, got %v", err)
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	_, err := UserRepository{}.Create(userFixture("root"), "secreto1")
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	_, err := UserRepository{}.Create(userFixture("operator"), "123")
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
