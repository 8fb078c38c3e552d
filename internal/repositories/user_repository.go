package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intauth "backend/internal/auth"
	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"

	"golang.org/x/crypto/bcrypt"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = `
	id,
	COALESCE(name, ''),
	COALESCE(username, ''),
	COALESCE(email, ''),
	COALESCE(password_hash, ''),
	COALESCE(role, 'readonly'),
	COALESCE(active, 1),
	COALESCE(created_at, '')`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Active,
		&u.CreatedAt,
	)
	return u, err
}

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.db().Query(`SELECT ` + userColumns + ` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	u, err := scanUser(r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id=? LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "usuario"}
	}
	return u, err
}

func (r UserRepository) Create(u models.User, password string) (models.User, error) {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	u.Role = strings.ToLower(strings.TrimSpace(u.Role))

	if u.Username == "" {
		return models.User{}, domain.ValidationError{Field: "username", Msg: "el usuario es obligatorio"}
	}
	if len(password) < 6 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "la contraseña es demasiado corta"}
	}
	if !intauth.ValidRole(u.Role) {
		return models.User{}, domain.ValidationError{Field: "role", Msg: "rol desconocido"}
	}

	var exists int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE username=? OR email=?`, u.Username, u.Email).Scan(&exists); err != nil {
		return models.User{}, err
	}
	if exists > 0 {
		return models.User{}, domain.ConflictError{Resource: "usuario", Msg: "usuario o email ya registrado"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, password_hash, role, active)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		strings.TrimSpace(u.Name),
		u.Username,
		u.Email,
		string(hash),
		u.Role,
		u.Active,
	)
	if err != nil {
		return models.User{}, err
	}
	u.ID, _ = res.LastInsertId()
	u.PasswordHash = ""
	return u, nil
}

// Update changes profile fields; password only when newPassword is non-empty.
func (r UserRepository) Update(id int64, u models.User, newPassword string) (models.User, error) {
	u.Role = strings.ToLower(strings.TrimSpace(u.Role))
	if !intauth.ValidRole(u.Role) {
		return models.User{}, domain.ValidationError{Field: "role", Msg: "rol desconocido"}
	}

	if newPassword != "" {
		if len(newPassword) < 6 {
			return models.User{}, domain.ValidationError{Field: "password", Msg: "la contraseña es demasiado corta"}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		if _, err := r.db().Exec(`UPDATE users SET password_hash=? WHERE id=?`, string(hash), id); err != nil {
			return models.User{}, err
		}
	}

	if _, err := r.db().Exec(`
		UPDATE users
		SET name=?, username=?, email=?, role=?, active=?
		WHERE id=?
	`,
		strings.TrimSpace(u.Name),
		strings.TrimSpace(u.Username),
		strings.TrimSpace(u.Email),
		u.Role,
		u.Active,
		id,
	); err != nil {
		return models.User{}, err
	}
	u.ID = id
	u.PasswordHash = ""
	return u, nil
}

func (r UserRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "usuario"}
	}
	return nil
}

// Authenticate returns the active user matching the credentials, or a
// NotFoundError when either the user is missing or the password is wrong —
// callers must not distinguish the two cases.
func (r UserRepository) Authenticate(usernameOrEmail, password string) (models.User, error) {
	u, err := scanUser(r.db().QueryRow(`
		SELECT `+userColumns+`
		FROM users
		WHERE username=? OR email=?
		LIMIT 1
	`, usernameOrEmail, usernameOrEmail))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "usuario"}
	}
	if err != nil {
		return models.User{}, err
	}

	if !u.Active {
		return models.User{}, domain.NotFoundError{Resource: "usuario"}
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return models.User{}, domain.NotFoundError{Resource: "usuario"}
	}

	u.PasswordHash = ""
	return u, nil
}
