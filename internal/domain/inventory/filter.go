package inventory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/almacen-registros/internal/domain/entity"
)

// Filter devuelve la subsecuencia de entries cuyo part_number, descripción,
// unidad de medida o registered_by contiene el término (sin distinguir
// mayúsculas, con reglas de casing del español). Con término vacío tras
// recortar espacios devuelve la lista sin tocar, preservando siempre el
// orden original.
func Filter(entries []*entity.Entry, term string) []*entity.Entry {
	t := strings.TrimSpace(term)
	if t == "" {
		return entries
	}

	lower := cases.Lower(language.Spanish)
	t = lower.String(t)

	var out []*entity.Entry
	for _, e := range entries {
		if strings.Contains(lower.String(e.PartNumber), t) ||
			strings.Contains(lower.String(e.Description), t) ||
			strings.Contains(lower.String(e.UnitOfMeasure), t) ||
			strings.Contains(lower.String(e.RegisteredBy), t) {
			out = append(out, e)
		}
	}
	return out
}

// Stats agregados del tablero. Se calculan siempre sobre la lista canónica
// completa, nunca sobre la vista filtrada.
type Stats struct {
	Count      int
	TotalUnits int
	TotalBoxes int
}

// Aggregate recalcula los agregados desde cero en cada invocación.
func Aggregate(entries []*entity.Entry) Stats {
	s := Stats{Count: len(entries)}
	for _, e := range entries {
		s.TotalUnits += e.TotalUnits
		s.TotalBoxes += e.TotalBoxes
	}
	return s
}
