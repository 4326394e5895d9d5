package db

import "database/sql"

// statements are idempotent; FK order matters (pasajes last). Natural keys
// carry a binary collation: the default utf8mb4 collations are case- and
// accent-insensitive, which would make "ruta norte" and "Ruta Norte" the
// same key and break the exact route filter.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS rutas (
		id_ruta BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		nombre VARCHAR(120) COLLATE utf8mb4_bin NOT NULL,
		PRIMARY KEY (id_ruta),
		UNIQUE KEY uq_rutas_nombre (nombre)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS unidades (
		id_unidad BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		placa VARCHAR(20) COLLATE utf8mb4_bin NOT NULL,
		PRIMARY KEY (id_unidad),
		UNIQUE KEY uq_unidades_placa (placa)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS tipos_pasaje (
		id_tipo BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		nombre VARCHAR(80) COLLATE utf8mb4_bin NOT NULL,
		PRIMARY KEY (id_tipo),
		UNIQUE KEY uq_tipos_pasaje_nombre (nombre)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS pasajes (
		id_pasaje BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		id_ruta BIGINT UNSIGNED NOT NULL,
		id_unidad BIGINT UNSIGNED NOT NULL,
		id_tipo BIGINT UNSIGNED NOT NULL,
		valor DECIMAL(10,2) NOT NULL,
		fecha_viaje DATETIME NOT NULL,
		PRIMARY KEY (id_pasaje),
		KEY idx_pasajes_fecha (fecha_viaje),
		CONSTRAINT fk_pasajes_ruta FOREIGN KEY (id_ruta) REFERENCES rutas (id_ruta),
		CONSTRAINT fk_pasajes_unidad FOREIGN KEY (id_unidad) REFERENCES unidades (id_unidad),
		CONSTRAINT fk_pasajes_tipo FOREIGN KEY (id_tipo) REFERENCES tipos_pasaje (id_tipo)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		nombre VARCHAR(120) NOT NULL,
		email VARCHAR(190) NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		rol VARCHAR(30) NOT NULL DEFAULT 'operador',
		creado_en DATETIME NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_usuarios_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables the service needs when they are missing.
func EnsureSchema(database *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := database.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
