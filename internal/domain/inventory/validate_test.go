package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-registros/internal/domain/entity"
)

func validDraft() entity.Draft {
	return entity.Draft{
		PartNumber:    "PN-1",
		Description:   "Widget",
		TotalUnits:    10,
		TotalBoxes:    2,
		UnitOfMeasure: "Unidad",
		RegisteredBy:  "a@x.com",
	}
}

func TestValidate_BorradorValido(t *testing.T) {
	errs := Validate(validDraft())
	assert.Empty(t, errs, "un borrador con las cinco reglas satisfechas es válido")
}

func TestValidate_CamposRequeridos(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entity.Draft)
		field  string
	}{
		{"part number vacío", func(d *entity.Draft) { d.PartNumber = "" }, "part_number"},
		{"part number solo espacios", func(d *entity.Draft) { d.PartNumber = "   " }, "part_number"},
		{"descripción vacía", func(d *entity.Draft) { d.Description = "" }, "description"},
		{"descripción solo espacios", func(d *entity.Draft) { d.Description = "\t " }, "description"},
		{"unidad de medida vacía", func(d *entity.Draft) { d.UnitOfMeasure = "" }, "unit_of_measure"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			errs := Validate(d)
			assert.Contains(t, errs, tc.field)
			assert.Len(t, errs, 1, "solo el campo mutado debe fallar")
		})
	}
}

func TestValidate_CantidadesNegativas(t *testing.T) {
	d := validDraft()
	d.TotalUnits = -1
	d.TotalBoxes = -5

	errs := Validate(d)
	assert.Equal(t, "Las unidades no pueden ser negativas", errs["total_units"])
	assert.Equal(t, "Las cajas no pueden ser negativas", errs["total_boxes"])
}

func TestValidate_CeroEsValido(t *testing.T) {
	d := validDraft()
	d.TotalUnits = 0
	d.TotalBoxes = 0
	assert.Empty(t, Validate(d), "cero unidades y cero cajas son cantidades válidas")
}

func TestValidate_TodoVacio(t *testing.T) {
	errs := Validate(entity.Draft{})
	assert.Len(t, errs, 3, "part_number, description y unit_of_measure deben fallar")
}
