package services

import (
	"strings"
	"time"

	"pasajes/internal/domain"
	"pasajes/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Usuarios  repositories.UsuarioRepository
	JWTSecret []byte
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegistroInput struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a 24h HS256 token. Wrong email and
// wrong password are indistinguishable on purpose.
func (s AuthService) Login(input LoginInput) (string, repositories.Usuario, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return "", repositories.Usuario{}, domain.ValidationError{Msg: "email y password son obligatorios"}
	}

	usuario, hash, err := s.Usuarios.BuscarPorEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", repositories.Usuario{}, domain.ValidationError{Msg: "email o password incorrectos"}
		}
		return "", repositories.Usuario{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		return "", repositories.Usuario{}, domain.ValidationError{Msg: "email o password incorrectos"}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": usuario.ID,
		"rol":     usuario.Rol,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	firmado, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", repositories.Usuario{}, domain.InternalError{Msg: "no se pudo firmar el token", Err: err}
	}

	return firmado, usuario, nil
}

func (s AuthService) Registrar(input RegistroInput) (repositories.Usuario, error) {
	nombre := strings.TrimSpace(input.Nombre)
	email := strings.TrimSpace(input.Email)
	if nombre == "" || email == "" || len(input.Password) < 6 {
		return repositories.Usuario{}, domain.ValidationError{Msg: "nombre, email y password (mínimo 6 caracteres) son obligatorios"}
	}

	existe, err := s.Usuarios.ExisteEmail(email)
	if err != nil {
		return repositories.Usuario{}, err
	}
	if existe {
		return repositories.Usuario{}, domain.ConflictError{Resource: "usuario", Msg: "el email ya está registrado"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return repositories.Usuario{}, domain.InternalError{Msg: "no se pudo generar el hash", Err: err}
	}

	id, err := s.Usuarios.Crear(nombre, email, string(hash), "operador")
	if err != nil {
		return repositories.Usuario{}, err
	}

	return repositories.Usuario{ID: id, Nombre: nombre, Email: email, Rol: "operador"}, nil
}
