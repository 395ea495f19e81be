// Package memory implementa el puerto EntryRepository sobre un mapa en
// memoria. Sustituye al store real en tests y en el modo local sin base de
// datos; el contrato (orden, errores, asignación de ID y fecha) es el mismo
// que el del adaptador de PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-registros/internal/domain"
	"github.com/jhoicas/almacen-registros/internal/domain/entity"
	"github.com/jhoicas/almacen-registros/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

type stored struct {
	entry entity.Entry
	seq   int64 // desempate cuando dos inserts comparten timestamp
}

// EntryRepo store de registros en memoria, seguro para uso concurrente.
type EntryRepo struct {
	mu      sync.RWMutex
	entries map[string]stored
	nextSeq int64
	now     func() time.Time
}

// NewEntryRepository construye el store en memoria vacío.
func NewEntryRepository() *EntryRepo {
	return &EntryRepo{
		entries: make(map[string]stored),
		now:     time.Now,
	}
}

// FetchAll devuelve todos los registros, el más reciente primero.
func (r *EntryRepo) FetchAll(ctx context.Context) ([]*entity.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]stored, 0, len(r.entries))
	for _, s := range r.entries {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].entry.RegisteredAt.Equal(all[j].entry.RegisteredAt) {
			return all[i].entry.RegisteredAt.After(all[j].entry.RegisteredAt)
		}
		return all[i].seq > all[j].seq
	})

	list := make([]*entity.Entry, len(all))
	for i := range all {
		e := all[i].entry
		list[i] = &e
	}
	return list, nil
}

// Insert asigna ID y fecha y persiste el borrador.
func (r *EntryRepo) Insert(ctx context.Context, d entity.Draft) (*entity.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSeq++
	e := entity.Entry{
		ID:            uuid.New().String(),
		PartNumber:    d.PartNumber,
		Description:   d.Description,
		TotalUnits:    d.TotalUnits,
		TotalBoxes:    d.TotalBoxes,
		UnitOfMeasure: d.UnitOfMeasure,
		RegisteredBy:  d.RegisteredBy,
		RegisteredAt:  r.now(),
	}
	r.entries[e.ID] = stored{entry: e, seq: r.nextSeq}
	out := e
	return &out, nil
}

// Update reemplaza los campos editables; registered_by y registered_at no cambian.
func (r *EntryRepo) Update(ctx context.Context, id string, d entity.Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.entries[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.entry.PartNumber = d.PartNumber
	s.entry.Description = d.Description
	s.entry.TotalUnits = d.TotalUnits
	s.entry.TotalBoxes = d.TotalBoxes
	s.entry.UnitOfMeasure = d.UnitOfMeasure
	r.entries[id] = s
	return nil
}

// Delete elimina por id; domain.ErrNotFound si el id no existe.
func (r *EntryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

// Len cantidad de registros almacenados (auxiliar de tests).
func (r *EntryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
