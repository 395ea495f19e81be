package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-registros/internal/application/dto"
	appinventory "github.com/jhoicas/almacen-registros/internal/application/inventory"
	"github.com/jhoicas/almacen-registros/internal/domain"
	"github.com/jhoicas/almacen-registros/internal/domain/entity"
)

// EntryHandler maneja las peticiones HTTP del tablero de inventario (protegido).
type EntryHandler struct {
	orch *appinventory.Orchestrator
}

// NewEntryHandler construye el handler.
func NewEntryHandler(orch *appinventory.Orchestrator) *EntryHandler {
	return &EntryHandler{orch: orch}
}

// List godoc
// @Summary      Listar registros (vista filtrada + agregados)
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Término de búsqueda (substring, sin mayúsculas/minúsculas)"
// @Success      200  {object}  dto.EntryListResponse
// @Router       /api/entries [get]
func (h *EntryHandler) List(c *fiber.Ctx) error {
	term := c.Query("search")
	return c.JSON(h.listResponse(term))
}

// listResponse arma la vista filtrada; los agregados van siempre sobre la
// lista canónica completa.
func (h *EntryHandler) listResponse(term string) dto.EntryListResponse {
	filtered := h.orch.Filtered(term)
	stats := h.orch.Stats()

	items := make([]dto.EntryResponse, 0, len(filtered))
	for _, e := range filtered {
		items = append(items, dto.ToEntryResponse(e))
	}
	return dto.EntryListResponse{
		Items:  items,
		Stats:  dto.StatsResponse{Total: stats.Count, Units: stats.TotalUnits, Boxes: stats.TotalBoxes},
		Search: term,
	}
}

// UnitOptions godoc
// @Summary      Catálogo de unidades de medida sugeridas para el formulario
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/entries/units [get]
func (h *EntryHandler) UnitOptions(c *fiber.Ctx) error {
	return c.JSON(entity.UnitOptions)
}

// Create godoc
// @Summary      Crear registro de inventario
// @Tags         entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DraftRequest  true  "Borrador del registro"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/entries [post]
func (h *EntryHandler) Create(c *fiber.Ctx) error {
	var in dto.DraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	d := in.ToDraft()
	d.RegisteredBy = GetEmail(c)

	created, fieldErrs, err := h.orch.Save(c.Context(), "", d)
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code: "VALIDATION", Message: "el borrador tiene campos inválidos", Fields: fieldErrs,
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al crear el registro"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToEntryResponse(created))
}

// Update godoc
// @Summary      Actualizar registro de inventario
// @Tags         entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.DraftRequest  true  "Borrador con los campos editables"
// @Success      204
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [put]
func (h *EntryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.DraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	_, fieldErrs, err := h.orch.Save(c.Context(), id, in.ToDraft())
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code: "VALIDATION", Message: "el borrador tiene campos inválidos", Fields: fieldErrs,
		})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al actualizar el registro"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar registro de inventario
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [delete]
func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.orch.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al eliminar el registro"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Refresh godoc
// @Summary      Re-sincronizar la lista canónica desde el store
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EntryListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/entries/refresh [post]
func (h *EntryHandler) Refresh(c *fiber.Ctx) error {
	if err := h.orch.Refresh(c.Context()); err != nil {
		// La lista queda en su último estado conocido
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "FETCH_FAILED", Message: "Error al actualizar los registros"})
	}
	return c.JSON(h.listResponse(c.Query("search")))
}

// Export godoc
// @Summary      Exportar la vista filtrada a CSV
// @Tags         entries
// @Security     Bearer
// @Produce      text/csv
// @Param        search  query  string  false  "Término de búsqueda aplicado a la exportación"
// @Success      200  {string}  string  "archivo CSV"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/entries/export [get]
func (h *EntryHandler) Export(c *fiber.Ctx) error {
	name, data, err := h.orch.ExportCSV(c.Query("search"), time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyExport) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_EXPORT", Message: "No hay registros para exportar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al exportar los registros"})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}
