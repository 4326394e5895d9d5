package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"pasajes/internal/repositories"
	"pasajes/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ExportResult is a ready-to-download document. Empty marks the distinct
// "no hay datos" outcome: not an error, but no file either.
type ExportResult struct {
	Data        []byte
	Filename    string
	ContentType string
	Empty       bool
}

type ExportService struct {
	Historial repositories.HistorialRepository
}

// ExportarCSV renders every pasaje as CSV, most recent first, with the
// fixed header row and a UTF-8 BOM so spreadsheet apps decode it right.
func (s ExportService) ExportarCSV() (ExportResult, error) {
	pasajes, err := s.Historial.DetalleExport()
	if err != nil {
		return ExportResult{}, err
	}
	if len(pasajes) == 0 {
		return ExportResult{Empty: true}, nil
	}

	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Ruta", "Unidad", "Tipo Pasaje", "Valor", "Fecha", "Hora"}); err != nil {
		return ExportResult{}, err
	}
	for _, p := range pasajes {
		record := []string{p.Ruta, p.Unidad, p.Tipo, utils.FormatMoney(p.Valor), p.Fecha, p.Hora}
		if err := w.Write(record); err != nil {
			return ExportResult{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return ExportResult{}, err
	}

	return ExportResult{
		Data:        buf.Bytes(),
		Filename:    exportFilename("csv"),
		ContentType: "text/csv; charset=utf-8",
	}, nil
}

// ExportarPDF renders the historial report (per-route aggregates plus the
// detail rows) as a printable PDF.
func (s ExportService) ExportarPDF() (ExportResult, error) {
	reporte, err := HistorialService{Historial: s.Historial}.Reporte()
	if err != nil {
		return ExportResult{}, err
	}
	if reporte.TotalPasajes == 0 {
		return ExportResult{Empty: true}, nil
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Historial de Pasajes", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Registro Historico de Pasajes")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Total de pasajes: %d", reporte.TotalPasajes))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Ingresos totales: $"+utils.FormatMoney(reporte.TotalIngresos))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Promedio por pasaje: $"+utils.FormatMoney(reporte.PromedioGlobal))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Rutas activas: %d", reporte.RutasActivas))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Estadisticas por ruta")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range reporte.Resumen {
		linea := fmt.Sprintf("%s: %d pasajes, ingresos $%s, promedio $%s",
			r.Ruta, r.Total, utils.FormatMoney(r.Ingresos), utils.FormatMoney(r.Promedio))
		pdf.MultiCell(0, 5, linea, "", "", false)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Detalle (%d registros)", reporte.TotalPasajes))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	for _, p := range reporte.Detalle {
		linea := fmt.Sprintf("#%d  %s | %s | %s | $%s | %s %s",
			p.ID, p.Ruta, p.Unidad, p.Tipo, utils.FormatMoney(p.Valor), p.Fecha, p.Hora)
		pdf.MultiCell(0, 4.5, linea, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return ExportResult{}, err
	}

	return ExportResult{
		Data:        buf.Bytes(),
		Filename:    exportFilename("pdf"),
		ContentType: "application/pdf",
	}, nil
}

func exportFilename(ext string) string {
	return fmt.Sprintf("pasajes_%s.%s", time.Now().Format("20060102_1504"), ext)
}
