package services

import (
	"math"
	"testing"

	"pasajes/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReporteGlobalesConsistentesConResumen(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	resumenCols := []string{"ruta", "total_pasajes", "ingresos_totales", "promedio_valor", "primer_pasaje", "ultimo_pasaje"}
	mock.ExpectQuery("LEFT JOIN pasajes").
		WillReturnRows(sqlmock.NewRows(resumenCols).
			AddRow("Ruta Norte", 2, 1.50, 0.75, "2024-01-14 07:00:00", "2024-01-15 08:30:00").
			AddRow("Ruta Sur", 1, 0.35, 0.35, "2024-01-13 06:45:00", "2024-01-13 06:45:00").
			AddRow("Ruta Centro", 0, 0, 0, nil, nil))

	detalleCols := []string{"id_pasaje", "ruta", "unidad", "tipo_pasaje", "valor", "fecha", "hora"}
	mock.ExpectQuery("FROM pasajes p").
		WillReturnRows(sqlmock.NewRows(detalleCols).
			AddRow(3, "Ruta Norte", "ABC-123", "Normal", 0.75, "2024-01-15", "08:30:00").
			AddRow(2, "Ruta Norte", "ABC-123", "Normal", 0.75, "2024-01-14", "07:00:00").
			AddRow(1, "Ruta Sur", "XYZ-789", "Estudiantil", 0.35, "2024-01-13", "06:45:00"))

	svc := HistorialService{Historial: repositories.HistorialRepository{DB: db}}
	reporte, err := svc.Reporte()
	if err != nil {
		t.Fatalf("reporte: %v", err)
	}

	// los globales del detalle deben cuadrar con la suma del resumen
	var sumaTotales int64
	var sumaIngresos float64
	for _, r := range reporte.Resumen {
		sumaTotales += r.Total
		sumaIngresos += r.Ingresos
	}
	if int64(reporte.TotalPasajes) != sumaTotales {
		t.Fatalf("total de pasajes %d no cuadra con el resumen %d", reporte.TotalPasajes, sumaTotales)
	}
	if math.Abs(reporte.TotalIngresos-sumaIngresos) > 1e-9 {
		t.Fatalf("ingresos globales %.2f no cuadran con el resumen %.2f", reporte.TotalIngresos, sumaIngresos)
	}
	esperado := reporte.TotalIngresos / float64(reporte.TotalPasajes)
	if math.Abs(reporte.PromedioGlobal-esperado) > 1e-9 {
		t.Fatalf("promedio global %.4f, esperado %.4f", reporte.PromedioGlobal, esperado)
	}

	// la ruta sin pasajes aparece con cero y sin marcas de tiempo
	ultima := reporte.Resumen[len(reporte.Resumen)-1]
	if ultima.Ruta != "Ruta Centro" || ultima.Total != 0 {
		t.Fatalf("la ruta sin pasajes debe aparecer con total 0: %+v", ultima)
	}
	if ultima.PrimerPasaje != "" || ultima.UltimoPasaje != "" {
		t.Fatalf("ruta sin pasajes no debe tener marcas de tiempo: %+v", ultima)
	}
	if reporte.RutasActivas != 2 {
		t.Fatalf("rutas activas esperadas 2, got %d", reporte.RutasActivas)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReporteVacioPromedioCero(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	resumenCols := []string{"ruta", "total_pasajes", "ingresos_totales", "promedio_valor", "primer_pasaje", "ultimo_pasaje"}
	mock.ExpectQuery("LEFT JOIN pasajes").
		WillReturnRows(sqlmock.NewRows(resumenCols))
	mock.ExpectQuery("FROM pasajes p").
		WillReturnRows(sqlmock.NewRows([]string{"id_pasaje", "ruta", "unidad", "tipo_pasaje", "valor", "fecha", "hora"}))

	svc := HistorialService{Historial: repositories.HistorialRepository{DB: db}}
	reporte, err := svc.Reporte()
	if err != nil {
		t.Fatalf("reporte: %v", err)
	}
	if reporte.TotalPasajes != 0 || reporte.TotalIngresos != 0 {
		t.Fatalf("reporte vacío con totales: %+v", reporte)
	}
	if reporte.PromedioGlobal != 0 {
		t.Fatalf("promedio sin pasajes debe ser 0, no NaN: %v", reporte.PromedioGlobal)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
