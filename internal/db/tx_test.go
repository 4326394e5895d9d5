package db

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestWithTxConfirmaAlTerminar(t *testing.T) {
	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer database.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO rutas").WithArgs("Ruta Norte").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = WithTx(database, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO rutas (nombre) VALUES (?)`, "Ruta Norte")
		return err
	})
	if err != nil {
		t.Fatalf("unidad de trabajo exitosa: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTxRevierteYPropagaElError(t *testing.T) {
	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer database.Close()

	fallo := errors.New("violación de integridad")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO rutas").WillReturnError(fallo)
	mock.ExpectRollback()

	err = WithTx(database, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO rutas (nombre) VALUES (?)`, "Ruta Norte")
		return err
	})
	if !errors.Is(err, fallo) {
		t.Fatalf("el error del trabajo debe propagarse sin cambios, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
