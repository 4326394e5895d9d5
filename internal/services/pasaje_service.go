package services

import (
	"database/sql"
	"math"
	"time"

	"pasajes/internal/db"
	"pasajes/internal/domain"
	"pasajes/internal/repositories"
	"pasajes/internal/utils"
)

// CrearPasajeInput carries the create form: natural keys, not ids. The
// catalog rows get created on the fly when the names are new.
type CrearPasajeInput struct {
	RutaNombre  string  `json:"rutaNombre"`
	UnidadPlaca string  `json:"unidadPlaca"`
	TipoNombre  string  `json:"tipoNombre"`
	Valor       float64 `json:"valor"`
	Fecha       string  `json:"fecha"`
	Hora        string  `json:"hora"`
}

// ActualizarPasajeInput carries the edit form: the catalogs are already
// materialized, so here the references arrive as ids.
type ActualizarPasajeInput struct {
	IDRuta   int64   `json:"idRuta"`
	IDUnidad int64   `json:"idUnidad"`
	IDTipo   int64   `json:"idTipo"`
	Valor    float64 `json:"valor"`
	Fecha    string  `json:"fecha"`
	Hora     string  `json:"hora"`
}

// PasajeParaEditar bundles the raw pasaje with the catalog listings the
// edit form's selects need.
type PasajeParaEditar struct {
	Pasaje   repositories.PasajeDetalle  `json:"pasaje"`
	Rutas    []repositories.CatalogoItem `json:"rutas"`
	Unidades []repositories.CatalogoItem `json:"unidades"`
	Tipos    []repositories.CatalogoItem `json:"tipos"`
}

type PasajeService struct {
	DB       *sql.DB
	Catalogo repositories.CatalogoRepository
	Pasajes  repositories.PasajeRepository
}

func (s PasajeService) Listar(rutaFiltro string) ([]repositories.PasajeView, error) {
	return s.Pasajes.Listar(utils.TrimOrEmpty(rutaFiltro))
}

func (s PasajeService) ObtenerParaEditar(id int64) (PasajeParaEditar, error) {
	var out PasajeParaEditar

	pasaje, err := s.Pasajes.Obtener(id)
	if err != nil {
		return out, err
	}

	rutas, err := s.Catalogo.ListarRutas()
	if err != nil {
		return out, err
	}
	unidades, err := s.Catalogo.ListarUnidades()
	if err != nil {
		return out, err
	}
	tipos, err := s.Catalogo.ListarTipos()
	if err != nil {
		return out, err
	}

	out.Pasaje = pasaje
	out.Rutas = rutas
	out.Unidades = unidades
	out.Tipos = tipos
	return out, nil
}

// Crear validates the form, then runs one unit of work: resolve the three
// references (creating missing ones) and insert the pasaje. Any failure in
// between rolls the whole thing back.
func (s PasajeService) Crear(input CrearPasajeInput) error {
	ruta := utils.TrimOrEmpty(input.RutaNombre)
	placa := utils.NormalizePlaca(input.UnidadPlaca)
	tipo := utils.TrimOrEmpty(input.TipoNombre)

	if ruta == "" {
		return domain.ValidationError{Field: "rutaNombre", Msg: "es obligatorio"}
	}
	if placa == "" {
		return domain.ValidationError{Field: "unidadPlaca", Msg: "es obligatoria"}
	}
	if tipo == "" {
		return domain.ValidationError{Field: "tipoNombre", Msg: "es obligatorio"}
	}
	if err := validarValor(input.Valor); err != nil {
		return err
	}
	fechaViaje, err := validarFechaHora(input.Fecha, input.Hora)
	if err != nil {
		return err
	}

	return db.WithTx(s.DB, func(tx *sql.Tx) error {
		idRuta, err := s.Catalogo.ResolverRuta(tx, ruta)
		if err != nil {
			return err
		}
		idUnidad, err := s.Catalogo.ResolverUnidad(tx, placa)
		if err != nil {
			return err
		}
		idTipo, err := s.Catalogo.ResolverTipo(tx, tipo)
		if err != nil {
			return err
		}
		return s.Pasajes.Crear(tx, idRuta, idUnidad, idTipo, input.Valor, fechaViaje)
	})
}

// Actualizar replaces every mutable field of an existing pasaje. Per the
// listing contract, an id that matches no row is not an error here.
func (s PasajeService) Actualizar(id int64, input ActualizarPasajeInput) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "no válido"}
	}
	if input.IDRuta <= 0 || input.IDUnidad <= 0 || input.IDTipo <= 0 {
		return domain.ValidationError{Msg: "las referencias de ruta, unidad y tipo son obligatorias"}
	}
	if err := validarValor(input.Valor); err != nil {
		return err
	}
	fechaViaje, err := validarFechaHora(input.Fecha, input.Hora)
	if err != nil {
		return err
	}

	return db.WithTx(s.DB, func(tx *sql.Tx) error {
		return s.Pasajes.Actualizar(tx, id, input.IDRuta, input.IDUnidad, input.IDTipo, input.Valor, fechaViaje)
	})
}

func (s PasajeService) Eliminar(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "no válido"}
	}
	return db.WithTx(s.DB, func(tx *sql.Tx) error {
		return s.Pasajes.Eliminar(tx, id)
	})
}

func validarValor(valor float64) error {
	if math.IsNaN(valor) || math.IsInf(valor, 0) || valor <= 0 {
		return domain.ValidationError{Field: "valor", Msg: "debe ser un número mayor a 0"}
	}
	return nil
}

func validarFechaHora(fecha, hora string) (time.Time, error) {
	if utils.TrimOrEmpty(fecha) == "" {
		return time.Time{}, domain.ValidationError{Field: "fecha", Msg: "es obligatoria"}
	}
	if utils.TrimOrEmpty(hora) == "" {
		return time.Time{}, domain.ValidationError{Field: "hora", Msg: "es obligatoria"}
	}
	t, err := utils.CombineDateTime(fecha, hora)
	if err != nil {
		return time.Time{}, domain.ValidationError{Msg: "fecha u hora con formato no válido", Err: err}
	}
	return t, nil
}
