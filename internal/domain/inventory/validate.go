// Package inventory contiene la lógica pura de inventario: validación de
// borradores, filtrado por término de búsqueda y agregados del tablero.
package inventory

import (
	"strings"

	"github.com/jhoicas/almacen-registros/internal/domain/entity"
)

// Validate valida un borrador antes de enviarlo al store. Devuelve un mapa
// campo → mensaje; mapa vacío significa borrador válido. Corre de forma
// síncrona en cada intento de guardado y nunca llega al store si falla.
func Validate(d entity.Draft) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(d.PartNumber) == "" {
		errs["part_number"] = "El Part Number es requerido"
	}
	if strings.TrimSpace(d.Description) == "" {
		errs["description"] = "La descripción es requerida"
	}
	if d.TotalUnits < 0 {
		errs["total_units"] = "Las unidades no pueden ser negativas"
	}
	if d.TotalBoxes < 0 {
		errs["total_boxes"] = "Las cajas no pueden ser negativas"
	}
	if strings.TrimSpace(d.UnitOfMeasure) == "" {
		errs["unit_of_measure"] = "La unidad de medida es requerida"
	}
	return errs
}
