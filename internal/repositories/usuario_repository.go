package repositories

import (
	"database/sql"
	"errors"
	"time"

	"pasajes/internal/domain"
)

type Usuario struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

type UsuarioRepository struct {
	DB *sql.DB
}

// BuscarPorEmail returns the account plus its password hash for login.
func (r UsuarioRepository) BuscarPorEmail(email string) (Usuario, string, error) {
	var (
		u    Usuario
		hash string
	)
	err := r.DB.QueryRow(`
		SELECT id, nombre, email, password_hash, rol
		FROM usuarios
		WHERE email = ?
	`, email).Scan(&u.ID, &u.Nombre, &u.Email, &hash, &u.Rol)
	if errors.Is(err, sql.ErrNoRows) {
		return Usuario{}, "", domain.NotFoundError{Resource: "usuario", Err: err}
	}
	if err != nil {
		return Usuario{}, "", err
	}
	return u, hash, nil
}

func (r UsuarioRepository) Crear(nombre, email, passwordHash, rol string) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO usuarios (nombre, email, password_hash, rol, creado_en)
		VALUES (?, ?, ?, ?, ?)
	`, nombre, email, passwordHash, rol, time.Now())
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r UsuarioRepository) ExisteEmail(email string) (bool, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM usuarios WHERE email = ?`, email).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
