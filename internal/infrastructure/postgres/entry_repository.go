package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-registros/internal/domain"
	"github.com/jhoicas/almacen-registros/internal/domain/entity"
	"github.com/jhoicas/almacen-registros/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

// EntryRepo implementación del puerto EntryRepository sobre PostgreSQL (usable con pool o tx).
type EntryRepo struct {
	q Querier
}

// NewEntryRepository construye el adaptador de persistencia para registros de inventario.
func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

// FetchAll devuelve todos los registros, el más reciente primero.
func (r *EntryRepo) FetchAll(ctx context.Context) ([]*entity.Entry, error) {
	query := `
		SELECT id, part_number, description, total_units, total_boxes, unit_of_measure, registered_by, registered_at
		FROM entries ORDER BY registered_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Entry
	for rows.Next() {
		var e entity.Entry
		if err := rows.Scan(&e.ID, &e.PartNumber, &e.Description, &e.TotalUnits, &e.TotalBoxes,
			&e.UnitOfMeasure, &e.RegisteredBy, &e.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Insert persiste un borrador. El ID se genera aquí y registered_at lo asigna
// la base de datos; ninguno de los dos viene del cliente.
func (r *EntryRepo) Insert(ctx context.Context, d entity.Draft) (*entity.Entry, error) {
	e := &entity.Entry{
		ID:            uuid.New().String(),
		PartNumber:    d.PartNumber,
		Description:   d.Description,
		TotalUnits:    d.TotalUnits,
		TotalBoxes:    d.TotalBoxes,
		UnitOfMeasure: d.UnitOfMeasure,
		RegisteredBy:  d.RegisteredBy,
	}
	query := `
		INSERT INTO entries (id, part_number, description, total_units, total_boxes, unit_of_measure, registered_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING registered_at`
	err := r.q.QueryRow(ctx, query,
		e.ID, e.PartNumber, e.Description, e.TotalUnits, e.TotalBoxes, e.UnitOfMeasure, e.RegisteredBy,
	).Scan(&e.RegisteredAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert entry: %w", err)
	}
	return e, nil
}

// Update reemplaza los campos editables del registro. No toca registered_by
// ni registered_at: identidad y fecha quedan fijadas en el insert.
func (r *EntryRepo) Update(ctx context.Context, id string, d entity.Draft) error {
	query := `
		UPDATE entries SET part_number = $2, description = $3, total_units = $4, total_boxes = $5, unit_of_measure = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		id, d.PartNumber, d.Description, d.TotalUnits, d.TotalBoxes, d.UnitOfMeasure,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un registro por ID. Un segundo delete del mismo id retorna
// domain.ErrNotFound sin afectar al resto de la colección.
func (r *EntryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
