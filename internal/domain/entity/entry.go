package entity

import "time"

// UnitOptions conjunto de opciones sugeridas para unit_of_measure.
// El formulario las ofrece como catálogo; el store no restringe el valor a esta lista.
var UnitOptions = []string{
	"Unidad",
	"Pieza",
	"Caja",
	"Paquete",
	"Kilogramo",
	"Gramo",
	"Litro",
	"Metro",
	"Otro",
}

// Entry representa un registro de inventario persistido en el store.
// ID y RegisteredAt los asigna el store en el insert; RegisteredBy se estampa
// con la identidad del usuario autenticado y no se modifica en updates.
type Entry struct {
	ID            string
	PartNumber    string
	Description   string
	TotalUnits    int
	TotalBoxes    int
	UnitOfMeasure string
	RegisteredBy  string
	RegisteredAt  time.Time
}

// Draft es el borrador efímero del formulario: la misma forma que Entry sin ID
// ni fecha. Se descarta al cancelar o al guardar con éxito; nunca se persiste
// de forma independiente.
type Draft struct {
	PartNumber    string
	Description   string
	TotalUnits    int
	TotalBoxes    int
	UnitOfMeasure string
	RegisteredBy  string
}
