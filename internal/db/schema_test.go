package db

import (
	"strings"
	"testing"
)

// Las claves naturales deben compararse byte a byte: un filtro por
// "RUTA NORTE" no debe encontrar "Ruta Norte" y ambas casings son filas
// distintas. Con la collation utf8mb4 por defecto (ci) eso se rompe.
func TestEsquemaClavesNaturalesConCollationBinaria(t *testing.T) {
	columnas := []string{
		"nombre VARCHAR(120) COLLATE utf8mb4_bin NOT NULL",
		"placa VARCHAR(20) COLLATE utf8mb4_bin NOT NULL",
		"nombre VARCHAR(80) COLLATE utf8mb4_bin NOT NULL",
	}
	for _, col := range columnas {
		encontrada := false
		for _, stmt := range schemaStatements {
			if strings.Contains(stmt, col) {
				encontrada = true
				break
			}
		}
		if !encontrada {
			t.Fatalf("clave natural sin collation binaria: %q", col)
		}
	}
}
