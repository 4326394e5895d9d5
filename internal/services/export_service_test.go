package services

import (
	"strings"
	"testing"

	"pasajes/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestExportarCSVSinDatosEsResultadoDistinto(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM pasajes p").
		WillReturnRows(sqlmock.NewRows([]string{"id_pasaje", "ruta", "unidad", "tipo_pasaje", "valor", "fecha", "hora"}))

	svc := ExportService{Historial: repositories.HistorialRepository{DB: db}}
	result, err := svc.ExportarCSV()
	if err != nil {
		t.Fatalf("tabla vacía no es un error: %v", err)
	}
	if !result.Empty {
		t.Fatalf("esperaba el resultado distinto 'sin datos', got %+v", result)
	}
	if len(result.Data) != 0 {
		t.Fatalf("sin datos no debe producir cuerpo CSV")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestExportarCSVEncabezadoYFilas(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM pasajes p").
		WillReturnRows(sqlmock.NewRows([]string{"id_pasaje", "ruta", "unidad", "tipo_pasaje", "valor", "fecha", "hora"}).
			AddRow(2, "Ruta Norte", "ABC-123", "Normal", 0.75, "15/01/2024", "08:30:00").
			AddRow(1, "Ruta Sur", "XYZ-789", "Estudiantil", 0.35, "14/01/2024", "07:00:00"))

	svc := ExportService{Historial: repositories.HistorialRepository{DB: db}}
	result, err := svc.ExportarCSV()
	if err != nil {
		t.Fatalf("exportar: %v", err)
	}
	if result.Empty {
		t.Fatalf("había datos para exportar")
	}

	body := strings.TrimPrefix(string(result.Data), "\uFEFF")
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) != 3 {
		t.Fatalf("esperaba encabezado + 2 filas, got %d líneas", len(lines))
	}
	if strings.TrimSpace(lines[0]) != "Ruta,Unidad,Tipo Pasaje,Valor,Fecha,Hora" {
		t.Fatalf("encabezado incorrecto: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Ruta Norte") || !strings.Contains(lines[1], "0.75") {
		t.Fatalf("primera fila incorrecta: %q", lines[1])
	}
	if !strings.HasPrefix(result.Filename, "pasajes_") || !strings.HasSuffix(result.Filename, ".csv") {
		t.Fatalf("nombre de archivo inesperado: %q", result.Filename)
	}
	if result.ContentType != "text/csv; charset=utf-8" {
		t.Fatalf("content type inesperado: %q", result.ContentType)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestExportarPDFSinDatos(t *testing.T) {
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

	svc := ExportService{Historial: repositories.HistorialRepository{DB: db}}
	result, err := svc.ExportarPDF()
	if err != nil {
		t.Fatalf("exportar pdf: %v", err)
	}
	if !result.Empty {
		t.Fatalf("esperaba resultado vacío")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
