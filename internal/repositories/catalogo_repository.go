package repositories

import (
	"database/sql"
	"errors"

	"pasajes/internal/db"

	"github.com/go-sql-driver/mysql"
)

const mysqlErrDuplicateEntry = 1062

// CatalogoRepository resolves reference rows (rutas, unidades, tipos_pasaje)
// by natural key, creating them on first use. Resolver methods take the
// enclosing transaction so a lookup miss plus insert stays atomic with the
// pasaje write that depends on the returned id.
type CatalogoRepository struct {
	DB *sql.DB
}

// CatalogoItem is a reference row as shown in selects and filters.
type CatalogoItem struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

func (r CatalogoRepository) ResolverRuta(q db.Queryer, nombre string) (int64, error) {
	return resolver(q,
		`SELECT id_ruta FROM rutas WHERE nombre = ?`,
		`INSERT INTO rutas (nombre) VALUES (?)`,
		nombre)
}

func (r CatalogoRepository) ResolverUnidad(q db.Queryer, placa string) (int64, error) {
	return resolver(q,
		`SELECT id_unidad FROM unidades WHERE placa = ?`,
		`INSERT INTO unidades (placa) VALUES (?)`,
		placa)
}

func (r CatalogoRepository) ResolverTipo(q db.Queryer, nombre string) (int64, error) {
	return resolver(q,
		`SELECT id_tipo FROM tipos_pasaje WHERE nombre = ?`,
		`INSERT INTO tipos_pasaje (nombre) VALUES (?)`,
		nombre)
}

// resolver implements find-or-create: select by natural key, insert on miss,
// then select again. If a concurrent transaction wins the insert race the
// duplicate-key error (1062) is swallowed and the re-read returns the
// winner's id, so both callers resolve to the same row.
func resolver(q db.Queryer, selectSQL, insertSQL, key string) (int64, error) {
	var id int64
	err := q.QueryRow(selectSQL, key).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	if _, err := q.Exec(insertSQL, key); err != nil {
		var me *mysql.MySQLError
		if !errors.As(err, &me) || me.Number != mysqlErrDuplicateEntry {
			return 0, err
		}
	}

	// The re-read must be a locking read. Under REPEATABLE READ a plain
	// SELECT reuses the snapshot taken by the miss above and cannot see the
	// row a concurrent transaction committed after it; FOR UPDATE reads the
	// latest committed version.
	if err := q.QueryRow(selectSQL+" FOR UPDATE", key).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r CatalogoRepository) ListarRutas() ([]CatalogoItem, error) {
	return r.listar(`SELECT id_ruta, nombre FROM rutas ORDER BY nombre`)
}

func (r CatalogoRepository) ListarUnidades() ([]CatalogoItem, error) {
	return r.listar(`SELECT id_unidad, placa FROM unidades ORDER BY placa`)
}

func (r CatalogoRepository) ListarTipos() ([]CatalogoItem, error) {
	return r.listar(`SELECT id_tipo, nombre FROM tipos_pasaje ORDER BY nombre`)
}

func (r CatalogoRepository) listar(query string) ([]CatalogoItem, error) {
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CatalogoItem{}
	for rows.Next() {
		var item CatalogoItem
		if err := rows.Scan(&item.ID, &item.Nombre); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
