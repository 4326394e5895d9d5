package repositories

import (
	"database/sql"
	"errors"
	"time"

	"pasajes/internal/db"
	"pasajes/internal/domain"
)

// PasajeView is the denormalized listing projection: reference names joined
// in, fecha_viaje split into separate date and time strings.
type PasajeView struct {
	ID     int64   `json:"id"`
	Ruta   string  `json:"ruta"`
	Unidad string  `json:"unidad"`
	Tipo   string  `json:"tipo"`
	Valor  float64 `json:"valor"`
	Fecha  string  `json:"fecha"`
	Hora   string  `json:"hora"`
}

// PasajeDetalle carries the raw foreign keys for the edit form.
type PasajeDetalle struct {
	ID       int64   `json:"id"`
	IDRuta   int64   `json:"idRuta"`
	IDUnidad int64   `json:"idUnidad"`
	IDTipo   int64   `json:"idTipo"`
	Valor    float64 `json:"valor"`
	Fecha    string  `json:"fecha"`
	Hora     string  `json:"hora"`
}

type PasajeRepository struct {
	DB *sql.DB
}

const pasajeViewSelect = `
	SELECT p.id_pasaje,
	       r.nombre AS ruta,
	       u.placa AS unidad,
	       t.nombre AS tipo_pasaje,
	       p.valor,
	       DATE_FORMAT(p.fecha_viaje, '%Y-%m-%d') AS fecha,
	       DATE_FORMAT(p.fecha_viaje, '%H:%i:%s') AS hora
	FROM pasajes p
	JOIN rutas r ON p.id_ruta = r.id_ruta
	JOIN unidades u ON p.id_unidad = u.id_unidad
	JOIN tipos_pasaje t ON p.id_tipo = t.id_tipo
`

// Listar returns pasajes most recent first. A non-empty rutaFiltro restricts
// to tickets whose route name matches exactly (case-sensitive, no LIKE).
func (r PasajeRepository) Listar(rutaFiltro string) ([]PasajeView, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if rutaFiltro != "" {
		rows, err = r.DB.Query(pasajeViewSelect+` WHERE r.nombre = ? ORDER BY p.fecha_viaje DESC`, rutaFiltro)
	} else {
		rows, err = r.DB.Query(pasajeViewSelect + ` ORDER BY p.fecha_viaje DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPasajeViews(rows)
}

func scanPasajeViews(rows *sql.Rows) ([]PasajeView, error) {
	out := []PasajeView{}
	for rows.Next() {
		var v PasajeView
		if err := rows.Scan(&v.ID, &v.Ruta, &v.Unidad, &v.Tipo, &v.Valor, &v.Fecha, &v.Hora); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Obtener loads one pasaje with raw foreign keys. A missing id is reported
// as domain.NotFoundError, distinct from storage failures.
func (r PasajeRepository) Obtener(id int64) (PasajeDetalle, error) {
	var d PasajeDetalle
	err := r.DB.QueryRow(`
		SELECT p.id_pasaje, p.id_ruta, p.id_unidad, p.id_tipo, p.valor,
		       DATE_FORMAT(p.fecha_viaje, '%Y-%m-%d') AS fecha,
		       DATE_FORMAT(p.fecha_viaje, '%H:%i:%s') AS hora
		FROM pasajes p
		WHERE p.id_pasaje = ?
	`, id).Scan(&d.ID, &d.IDRuta, &d.IDUnidad, &d.IDTipo, &d.Valor, &d.Fecha, &d.Hora)
	if errors.Is(err, sql.ErrNoRows) {
		return PasajeDetalle{}, domain.NotFoundError{Resource: "pasaje", Err: err}
	}
	if err != nil {
		return PasajeDetalle{}, err
	}
	return d, nil
}

// Crear inserts one pasaje row. The ids must already be resolved by the
// catalog repository inside the same transaction.
func (r PasajeRepository) Crear(q db.Queryer, idRuta, idUnidad, idTipo int64, valor float64, fechaViaje time.Time) error {
	_, err := q.Exec(`
		INSERT INTO pasajes (id_ruta, id_unidad, id_tipo, valor, fecha_viaje)
		VALUES (?, ?, ?, ?, ?)
	`, idRuta, idUnidad, idTipo, valor, fechaViaje)
	return err
}

// Actualizar replaces every mutable field. A missing id succeeds silently;
// callers must not rely on update for existence checks.
func (r PasajeRepository) Actualizar(q db.Queryer, id, idRuta, idUnidad, idTipo int64, valor float64, fechaViaje time.Time) error {
	_, err := q.Exec(`
		UPDATE pasajes
		SET id_ruta = ?, id_unidad = ?, id_tipo = ?, valor = ?, fecha_viaje = ?
		WHERE id_pasaje = ?
	`, idRuta, idUnidad, idTipo, valor, fechaViaje, id)
	return err
}

// Eliminar removes one pasaje. Missing ids are a silent no-op as well.
func (r PasajeRepository) Eliminar(q db.Queryer, id int64) error {
	_, err := q.Exec(`DELETE FROM pasajes WHERE id_pasaje = ?`, id)
	return err
}
