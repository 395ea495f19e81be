package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-registros/internal/domain"
	"github.com/jhoicas/almacen-registros/internal/domain/entity"
)

func draft(pn string) entity.Draft {
	return entity.Draft{
		PartNumber:    pn,
		Description:   "Widget",
		TotalUnits:    10,
		TotalBoxes:    2,
		UnitOfMeasure: "Unidad",
		RegisteredBy:  "a@x.com",
	}
}

func TestInsert_AsignaIDYFecha(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository()

	e, err := repo.Insert(ctx, draft("PN-1"))
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID, "el store debe asignar el id")
	assert.False(t, e.RegisteredAt.IsZero(), "el store debe asignar la fecha")
	assert.Equal(t, "PN-1", e.PartNumber)
	assert.Equal(t, "a@x.com", e.RegisteredBy)
}

func TestFetchAll_OrdenMasRecientePrimero(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository()

	first, err := repo.Insert(ctx, draft("PN-1"))
	require.NoError(t, err)
	second, err := repo.Insert(ctx, draft("PN-2"))
	require.NoError(t, err)

	list, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, second.ID, list[0].ID, "el insert más reciente va primero")
	assert.Equal(t, first.ID, list[1].ID)
}

func TestUpdate_NoTocaIdentidadNiFecha(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository()

	e, err := repo.Insert(ctx, draft("PN-1"))
	require.NoError(t, err)

	d := draft("PN-1-mod")
	d.RegisteredBy = "otro@x.com" // debe ignorarse en update
	require.NoError(t, repo.Update(ctx, e.ID, d))

	list, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "PN-1-mod", list[0].PartNumber)
	assert.Equal(t, "a@x.com", list[0].RegisteredBy, "registered_by es de solo lectura")
	assert.Equal(t, e.RegisteredAt, list[0].RegisteredAt)
}

func TestUpdate_IDInexistente(t *testing.T) {
	repo := NewEntryRepository()
	err := repo.Update(context.Background(), "no-existe", draft("PN-1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_DobleDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository()

	keep, err := repo.Insert(ctx, draft("PN-1"))
	require.NoError(t, err)
	gone, err := repo.Insert(ctx, draft("PN-2"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, gone.ID))
	// El segundo delete falla limpio y no corrompe el resto
	assert.ErrorIs(t, repo.Delete(ctx, gone.ID), domain.ErrNotFound)

	list, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)
}

func TestContextoCancelado(t *testing.T) {
	repo := NewEntryRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FetchAll(ctx)
	assert.Error(t, err, "una respuesta tras el teardown se descarta")
	_, err = repo.Insert(ctx, draft("PN-1"))
	assert.Error(t, err)
}
