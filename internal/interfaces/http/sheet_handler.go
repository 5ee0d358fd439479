package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acrilico-stock-api/internal/application/dto"
	"github.com/jhoicas/acrilico-stock-api/internal/application/inventory"
	"github.com/jhoicas/acrilico-stock-api/internal/application/usecase"
	"github.com/jhoicas/acrilico-stock-api/internal/domain"
)

// SheetHandler maneja las peticiones HTTP de láminas: CRUD, alta de mercancía
// (receive) y ajustes manuales (adjust). Todo protegido por sesión.
type SheetHandler struct {
	sheets    *usecase.SheetUseCase
	reconcile *inventory.ReconcileStockUseCase
}

// NewSheetHandler construye el handler.
func NewSheetHandler(sheets *usecase.SheetUseCase, reconcile *inventory.ReconcileStockUseCase) *SheetHandler {
	return &SheetHandler{sheets: sheets, reconcile: reconcile}
}

// List devuelve todas las láminas.
// GET /api/sheets
func (h *SheetHandler) List(c *fiber.Ctx) error {
	sheets, err := h.sheets.List(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(sheets), "sheets": sheets})
}

// GetByID devuelve una lámina.
// GET /api/sheets/:id
func (h *SheetHandler) GetByID(c *fiber.Ctx) error {
	sheet, err := h.sheets.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "lámina no encontrada")
		}
		return internalError(c, err)
	}
	return c.JSON(sheet)
}

// Receive registra un lote entrante (fusiona o crea según la tripleta).
// POST /api/sheets/receive
func (h *SheetHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	err := h.reconcile.Receive(c.Context(), actorFrom(c), inventory.ReceiveInput{
		Type:      in.Type,
		Thickness: in.Thickness,
		Size:      in.Size,
		Location:  in.Location,
		Quantity:  in.Quantity,
	})
	if err != nil {
		return mapStockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "mercancía registrada"})
}

// Adjust aplica una corrección manual o retiro sobre una lámina.
// POST /api/sheets/:id/adjust
func (h *SheetHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	err := h.reconcile.Adjust(c.Context(), actorFrom(c), inventory.AdjustInput{
		SheetID:  c.Params("id"),
		Kind:     in.Kind,
		Quantity: in.Quantity,
		Note:     in.Note,
	})
	if err != nil {
		return mapStockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "ajuste registrado"})
}

// UpdateLocation corrige la ubicación física.
// PUT /api/sheets/:id/location
func (h *SheetHandler) UpdateLocation(c *fiber.Ctx) error {
	var in dto.UpdateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	err := h.sheets.UpdateLocation(c.Context(), c.Params("id"), in.Location)
	if err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "ubicación actualizada"})
}

// Delete da de baja una lámina (el historial de movimientos se conserva).
// DELETE /api/sheets/:id
func (h *SheetHandler) Delete(c *fiber.Ctx) error {
	if err := h.sheets.Delete(c.Context(), c.Params("id")); err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "lámina eliminada"})
}

// actorFrom arma el actor que firma la escritura desde los claims de la sesión.
func actorFrom(c *fiber.Ctx) inventory.Actor {
	return inventory.Actor{ID: GetUserID(c), Name: GetDisplayName(c)}
}

// mapStockError traduce errores de dominio a códigos HTTP.
func mapStockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, "lámina no encontrada")
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una lámina con esa tripleta"})
	}
	return internalError(c, err)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
