package repositories

import "database/sql"

// RutaResumen aggregates every pasaje of one ruta. Rutas without pasajes
// appear with Total 0 and empty first/last timestamps.
type RutaResumen struct {
	Ruta         string  `json:"ruta"`
	Total        int64   `json:"totalPasajes"`
	Ingresos     float64 `json:"ingresosTotales"`
	Promedio     float64 `json:"promedioValor"`
	PrimerPasaje string  `json:"primerPasaje,omitempty"`
	UltimoPasaje string  `json:"ultimoPasaje,omitempty"`
}

// HistorialRepository runs the read-only reporting queries. Everything is
// derived from pasajes joined to the reference tables on each call, never
// from maintained counters.
type HistorialRepository struct {
	DB *sql.DB
}

// ResumenPorRuta returns one row per ruta, most ticketed first, ties broken
// by route name.
func (r HistorialRepository) ResumenPorRuta() ([]RutaResumen, error) {
	rows, err := r.DB.Query(`
		SELECT r.nombre AS ruta,
		       COUNT(p.id_pasaje) AS total_pasajes,
		       COALESCE(SUM(p.valor), 0) AS ingresos_totales,
		       COALESCE(AVG(p.valor), 0) AS promedio_valor,
		       MIN(DATE_FORMAT(p.fecha_viaje, '%Y-%m-%d %H:%i:%s')) AS primer_pasaje,
		       MAX(DATE_FORMAT(p.fecha_viaje, '%Y-%m-%d %H:%i:%s')) AS ultimo_pasaje
		FROM rutas r
		LEFT JOIN pasajes p ON r.id_ruta = p.id_ruta
		GROUP BY r.id_ruta, r.nombre
		ORDER BY COUNT(p.id_pasaje) DESC, r.nombre ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RutaResumen{}
	for rows.Next() {
		var (
			res            RutaResumen
			primer, ultimo sql.NullString
		)
		if err := rows.Scan(&res.Ruta, &res.Total, &res.Ingresos, &res.Promedio, &primer, &ultimo); err != nil {
			return nil, err
		}
		if primer.Valid {
			res.PrimerPasaje = primer.String
		}
		if ultimo.Valid {
			res.UltimoPasaje = ultimo.String
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Detalle returns the same projection as the unfiltered listing; the service
// derives the global totals from it.
func (r HistorialRepository) Detalle() ([]PasajeView, error) {
	rows, err := r.DB.Query(pasajeViewSelect + ` ORDER BY p.fecha_viaje DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPasajeViews(rows)
}

// DetalleExport is Detalle with the dd/mm/yyyy date format the CSV uses.
func (r HistorialRepository) DetalleExport() ([]PasajeView, error) {
	rows, err := r.DB.Query(`
		SELECT p.id_pasaje,
		       r.nombre AS ruta,
		       u.placa AS unidad,
		       t.nombre AS tipo_pasaje,
		       p.valor,
		       DATE_FORMAT(p.fecha_viaje, '%d/%m/%Y') AS fecha,
		       DATE_FORMAT(p.fecha_viaje, '%H:%i:%s') AS hora
		FROM pasajes p
		JOIN rutas r ON p.id_ruta = r.id_ruta
		JOIN unidades u ON p.id_unidad = u.id_unidad
		JOIN tipos_pasaje t ON p.id_tipo = t.id_tipo
		ORDER BY p.fecha_viaje DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPasajeViews(rows)
}
