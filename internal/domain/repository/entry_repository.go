package repository

import (
	"context"

	"github.com/jhoicas/almacen-registros/internal/domain/entity"
)

// EntryRepository define el puerto de persistencia para Entry (DIP).
// El adaptador asigna ID y RegisteredAt en Insert: el cliente nunca genera
// identificadores. Todas las operaciones reciben contexto para que una
// respuesta tardía tras el teardown del llamador se descarte en vez de
// mutar estado ya liberado.
type EntryRepository interface {
	// FetchAll devuelve todos los registros ordenados por registered_at descendente.
	FetchAll(ctx context.Context) ([]*entity.Entry, error)
	// Insert persiste un borrador y devuelve el Entry con ID y fecha asignados.
	Insert(ctx context.Context, d entity.Draft) (*entity.Entry, error)
	// Update reemplaza los campos editables del registro. domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, id string, d entity.Draft) error
	// Delete elimina por id. domain.ErrNotFound si no había nada que borrar.
	Delete(ctx context.Context, id string) error
}
