// Package inventory orquesta el flujo del tablero de inventario: mantiene la
// lista canónica de registros, decide insert vs update en cada guardado y
// re-sincroniza contra el store después de cada mutación.
package inventory

import (
	"context"
	"sync"

	"github.com/jhoicas/almacen-registros/internal/domain"
	"github.com/jhoicas/almacen-registros/internal/domain/entity"
	domaininv "github.com/jhoicas/almacen-registros/internal/domain/inventory"
	"github.com/jhoicas/almacen-registros/internal/domain/repository"
	"github.com/jhoicas/almacen-registros/pkg/logger"
)

// Orchestrator dueño exclusivo de la lista canónica en memoria. La lista es
// la única fuente de verdad para vistas y agregados, y solo cambia por
// re-fetch desde el store: no hay updates optimistas ni mantenimiento
// incremental. Tampoco hay control de concurrencia entre mutaciones; dos
// ediciones del mismo registro terminan en last-write-wins en el store y la
// lista se reconcilia en el siguiente refresh.
type Orchestrator struct {
	repo repository.EntryRepository
	log  *logger.Logger

	mu      sync.RWMutex
	entries []*entity.Entry
}

// NewOrchestrator construye el orquestador con el store inyectado (real o en
// memoria); no hay handle global de store.
func NewOrchestrator(repo repository.EntryRepository, log *logger.Logger) *Orchestrator {
	return &Orchestrator{repo: repo, log: log}
}

// Refresh reemplaza la lista canónica con el contenido del store. Si el
// fetch falla se loguea y se conserva el último estado conocido: vista
// degradada pero no fatal.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	list, err := o.repo.FetchAll(ctx)
	if err != nil {
		o.log.Error().Err(err).Msg("listar registros de inventario")
		return err
	}
	o.mu.Lock()
	o.entries = list
	o.mu.Unlock()
	return nil
}

// snapshot devuelve una copia del slice canónico para leer sin lock.
func (o *Orchestrator) snapshot() []*entity.Entry {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]*entity.Entry, len(o.entries))
	copy(out, o.entries)
	return out
}

// Entries lista canónica completa, el registro más reciente primero.
func (o *Orchestrator) Entries() []*entity.Entry {
	return o.snapshot()
}

// Filtered vista filtrada por término de búsqueda, en el orden canónico.
func (o *Orchestrator) Filtered(term string) []*entity.Entry {
	return domaininv.Filter(o.snapshot(), term)
}

// Stats agregados sobre la lista canónica completa (no sobre la filtrada).
func (o *Orchestrator) Stats() domaininv.Stats {
	return domaininv.Aggregate(o.snapshot())
}

// Save valida el borrador y decide la operación según targetID: vacío crea,
// no vacío actualiza ese registro. Con errores de validación devuelve el
// mapa campo → mensaje sin tocar el store. Tras una mutación exitosa
// re-sincroniza la lista canónica; si ese re-fetch falla la mutación ya
// está aplicada y la lista queda en su último estado conocido.
func (o *Orchestrator) Save(ctx context.Context, targetID string, d entity.Draft) (*entity.Entry, map[string]string, error) {
	if errs := domaininv.Validate(d); len(errs) > 0 {
		return nil, errs, domain.ErrInvalidInput
	}

	var created *entity.Entry
	if targetID == "" {
		e, err := o.repo.Insert(ctx, d)
		if err != nil {
			o.log.Error().Err(err).Msg("crear registro")
			return nil, nil, err
		}
		created = e
	} else {
		if err := o.repo.Update(ctx, targetID, d); err != nil {
			o.log.Error().Err(err).Str("id", targetID).Msg("actualizar registro")
			return nil, nil, err
		}
	}

	_ = o.Refresh(ctx)
	return created, nil, nil
}

// Delete elimina el registro y re-sincroniza. La confirmación del usuario es
// responsabilidad del llamador; aquí ya se asume confirmada. En fallo la
// lista canónica no cambia.
func (o *Orchestrator) Delete(ctx context.Context, id string) error {
	if err := o.repo.Delete(ctx, id); err != nil {
		o.log.Error().Err(err).Str("id", id).Msg("eliminar registro")
		return err
	}
	_ = o.Refresh(ctx)
	return nil
}
