package dto

import (
	"time"

	"github.com/jhoicas/almacen-registros/internal/domain/entity"
)

// DraftRequest entrada para crear o actualizar un registro (el borrador del
// formulario). registered_by no viaja en el cuerpo: se estampa desde la
// identidad autenticada en el create y es de solo lectura después.
type DraftRequest struct {
	PartNumber    string `json:"part_number"`
	Description   string `json:"description"`
	TotalUnits    int    `json:"total_units"`
	TotalBoxes    int    `json:"total_boxes"`
	UnitOfMeasure string `json:"unit_of_measure"`
}

// ToDraft convierte la petición al borrador de dominio.
func (r DraftRequest) ToDraft() entity.Draft {
	return entity.Draft{
		PartNumber:    r.PartNumber,
		Description:   r.Description,
		TotalUnits:    r.TotalUnits,
		TotalBoxes:    r.TotalBoxes,
		UnitOfMeasure: r.UnitOfMeasure,
	}
}

// EntryResponse salida de un registro de inventario.
type EntryResponse struct {
	ID            string    `json:"id"`
	PartNumber    string    `json:"part_number"`
	Description   string    `json:"description"`
	TotalUnits    int       `json:"total_units"`
	TotalBoxes    int       `json:"total_boxes"`
	UnitOfMeasure string    `json:"unit_of_measure"`
	RegisteredBy  string    `json:"registered_by"`
	RegisteredAt  time.Time `json:"registered_at"`
}

// ToEntryResponse convierte la entidad a su representación HTTP.
func ToEntryResponse(e *entity.Entry) EntryResponse {
	return EntryResponse{
		ID:            e.ID,
		PartNumber:    e.PartNumber,
		Description:   e.Description,
		TotalUnits:    e.TotalUnits,
		TotalBoxes:    e.TotalBoxes,
		UnitOfMeasure: e.UnitOfMeasure,
		RegisteredBy:  e.RegisteredBy,
		RegisteredAt:  e.RegisteredAt,
	}
}

// StatsResponse agregados del tablero: total de registros, unidades y cajas.
// Siempre sobre la lista canónica completa, no sobre la vista filtrada.
type StatsResponse struct {
	Total int `json:"total"`
	Units int `json:"units"`
	Boxes int `json:"boxes"`
}

// EntryListResponse vista filtrada más agregados.
type EntryListResponse struct {
	Items  []EntryResponse `json:"items"`
	Stats  StatsResponse   `json:"stats"`
	Search string          `json:"search,omitempty"`
}
