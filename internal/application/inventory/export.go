package inventory

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/jhoicas/almacen-registros/internal/domain"
	"github.com/jhoicas/almacen-registros/internal/domain/entity"
)

// csvHeaders encabezados literales del CSV exportado, en este orden fijo.
var csvHeaders = []string{
	"Part Number",
	"Descripción",
	"Unidades Totales",
	"Cajas Totales",
	"Unidad de Medida",
	"Registrado Por",
	"Fecha de Registro",
}

// csvDateLayout fecha al estilo es-ES (como toLocaleString('es-ES')).
const csvDateLayout = "2/1/2006, 15:04:05"

// ExportCSV serializa la vista filtrada actual (no la lista completa) a CSV.
// El nombre del archivo lleva la fecha del momento de exportación, no la de
// ningún registro. Con la vista filtrada vacía devuelve domain.ErrEmptyExport.
func (o *Orchestrator) ExportCSV(term string, now time.Time) (filename string, data []byte, err error) {
	filtered := o.Filtered(term)
	if len(filtered) == 0 {
		return "", nil, domain.ErrEmptyExport
	}

	data, err = marshalCSV(filtered)
	if err != nil {
		return "", nil, err
	}
	return "inventario_" + now.Format("2006-01-02") + ".csv", data, nil
}

func marshalCSV(entries []*entity.Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeaders); err != nil {
		return nil, err
	}
	for _, e := range entries {
		row := []string{
			e.PartNumber,
			e.Description,
			strconv.Itoa(e.TotalUnits),
			strconv.Itoa(e.TotalBoxes),
			e.UnitOfMeasure,
			e.RegisteredBy,
			e.RegisteredAt.Format(csvDateLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
