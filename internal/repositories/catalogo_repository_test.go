package repositories

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestResolverRutaCreaYReutiliza(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := CatalogoRepository{DB: db}

	// primera resolución: no existe, se inserta y se relee
	mock.ExpectQuery("SELECT id_ruta FROM rutas").WithArgs("Ruta Norte").
		WillReturnRows(sqlmock.NewRows([]string{"id_ruta"}))
	mock.ExpectExec("INSERT INTO rutas").WithArgs("Ruta Norte").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(`SELECT id_ruta FROM rutas WHERE nombre = \? FOR UPDATE`).WithArgs("Ruta Norte").
		WillReturnRows(sqlmock.NewRows([]string{"id_ruta"}).AddRow(7))

	// segunda resolución: mismo nombre, mismo id, sin insert
	mock.ExpectQuery("SELECT id_ruta FROM rutas").WithArgs("Ruta Norte").
		WillReturnRows(sqlmock.NewRows([]string{"id_ruta"}).AddRow(7))

	id1, err := repo.ResolverRuta(db, "Ruta Norte")
	if err != nil {
		t.Fatalf("primera resolución: %v", err)
	}
	id2, err := repo.ResolverRuta(db, "Ruta Norte")
	if err != nil {
		t.Fatalf("segunda resolución: %v", err)
	}
	if id1 != 7 || id2 != 7 {
		t.Fatalf("ids distintos para la misma clave: %d vs %d", id1, id2)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestResolverUnidadGanaCarreraDeDuplicado(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := CatalogoRepository{DB: db}

	// otra transacción insertó la placa entre el select y el insert: el
	// 1062 se absorbe y la relectura devuelve el id ganador. La relectura
	// tiene que ser FOR UPDATE: una lectura normal reutiliza el snapshot
	// del primer select y no ve el commit concurrente.
	mock.ExpectQuery("SELECT id_unidad FROM unidades").WithArgs("ABC-123").
		WillReturnRows(sqlmock.NewRows([]string{"id_unidad"}))
	mock.ExpectExec("INSERT INTO unidades").WithArgs("ABC-123").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectQuery(`SELECT id_unidad FROM unidades WHERE placa = \? FOR UPDATE`).WithArgs("ABC-123").
		WillReturnRows(sqlmock.NewRows([]string{"id_unidad"}).AddRow(3))

	id, err := repo.ResolverUnidad(db, "ABC-123")
	if err != nil {
		t.Fatalf("la carrera de duplicado debería resolverse, got %v", err)
	}
	if id != 3 {
		t.Fatalf("id esperado 3, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestResolverTipoPropagaErrorDeAlmacenamiento(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := CatalogoRepository{DB: db}

	fallo := errors.New("connection reset")
	mock.ExpectQuery("SELECT id_tipo FROM tipos_pasaje").WithArgs("Normal").
		WillReturnRows(sqlmock.NewRows([]string{"id_tipo"}))
	mock.ExpectExec("INSERT INTO tipos_pasaje").WithArgs("Normal").
		WillReturnError(fallo)

	if _, err := repo.ResolverTipo(db, "Normal"); !errors.Is(err, fallo) {
		t.Fatalf("el error de almacenamiento debe propagarse sin envolver, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
