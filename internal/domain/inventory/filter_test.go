package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-registros/internal/domain/entity"
)

func sampleEntries() []*entity.Entry {
	return []*entity.Entry{
		{ID: "1", PartNumber: "PN-100", Description: "Widget", TotalUnits: 10, TotalBoxes: 2, UnitOfMeasure: "Unidad", RegisteredBy: "ana@x.com"},
		{ID: "2", PartNumber: "PN-200", Description: "Tornillo", TotalUnits: 500, TotalBoxes: 5, UnitOfMeasure: "Caja", RegisteredBy: "luis@x.com"},
		{ID: "3", PartNumber: "AX-300", Description: "Cable de cobre", TotalUnits: 30, TotalBoxes: 1, UnitOfMeasure: "Metro", RegisteredBy: "ana@x.com"},
	}
}

func TestFilter_TerminoVacioDevuelveTodo(t *testing.T) {
	entries := sampleEntries()
	assert.Equal(t, entries, Filter(entries, ""))
	assert.Equal(t, entries, Filter(entries, "   "), "término de solo espacios equivale a vacío")
}

func TestFilter_SinDistinguirMayusculas(t *testing.T) {
	entries := sampleEntries()

	got := Filter(entries, "widget")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID, "la búsqueda 'widget' debe encontrar 'Widget'")

	got = Filter(entries, "PN-")
	require.Len(t, got, 2)
}

func TestFilter_BuscaEnLosCuatroCampos(t *testing.T) {
	entries := sampleEntries()

	assert.Len(t, Filter(entries, "ax-300"), 1, "part_number")
	assert.Len(t, Filter(entries, "cobre"), 1, "description")
	assert.Len(t, Filter(entries, "metro"), 1, "unit_of_measure")
	assert.Len(t, Filter(entries, "ana@"), 2, "registered_by")
}

func TestFilter_PreservaOrdenRelativo(t *testing.T) {
	entries := sampleEntries()
	got := Filter(entries, "@x.com")
	require.Len(t, got, 3)
	for i, e := range got {
		assert.Equal(t, entries[i].ID, e.ID, "la vista filtrada es una subsecuencia en el orden original")
	}
}

func TestFilter_SinCoincidencias(t *testing.T) {
	assert.Empty(t, Filter(sampleEntries(), "nonexistent-xyz"))
}

func TestFilter_CamposVaciosNoRompen(t *testing.T) {
	entries := []*entity.Entry{{ID: "1", PartNumber: "PN-1"}}
	assert.Empty(t, Filter(entries, "algo"))
	assert.Len(t, Filter(entries, "pn-1"), 1)
}

func TestAggregate_Sumas(t *testing.T) {
	s := Aggregate(sampleEntries())
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 540, s.TotalUnits)
	assert.Equal(t, 8, s.TotalBoxes)
}

func TestAggregate_ListaVacia(t *testing.T) {
	s := Aggregate(nil)
	assert.Equal(t, Stats{}, s, "agregados de lista vacía son {0,0,0}")
}
