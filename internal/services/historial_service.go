package services

import "pasajes/internal/repositories"

// HistorialReporte is the full statistics page: per-route aggregates plus
// global totals derived from the detail rows. The totals always match the
// sums across Resumen because both come from the same pasajes table in one
// report run.
type HistorialReporte struct {
	Resumen        []repositories.RutaResumen `json:"resumen"`
	Detalle        []repositories.PasajeView  `json:"detalle"`
	TotalPasajes   int                        `json:"totalPasajes"`
	TotalIngresos  float64                    `json:"totalIngresos"`
	PromedioGlobal float64                    `json:"promedioGlobal"`
	RutasActivas   int                        `json:"rutasActivas"`
}

type HistorialService struct {
	Historial repositories.HistorialRepository
}

func (s HistorialService) Reporte() (HistorialReporte, error) {
	resumen, err := s.Historial.ResumenPorRuta()
	if err != nil {
		return HistorialReporte{}, err
	}
	detalle, err := s.Historial.Detalle()
	if err != nil {
		return HistorialReporte{}, err
	}

	reporte := HistorialReporte{
		Resumen: resumen,
		Detalle: detalle,
	}
	reporte.TotalPasajes = len(detalle)
	for _, p := range detalle {
		reporte.TotalIngresos += p.Valor
	}
	if reporte.TotalPasajes > 0 {
		reporte.PromedioGlobal = reporte.TotalIngresos / float64(reporte.TotalPasajes)
	}
	for _, r := range resumen {
		if r.Total > 0 {
			reporte.RutasActivas++
		}
	}
	return reporte, nil
}
