package handler

import (
	"log/slog"
	"net/http"

	"foamstock/internal/delivery/http/middleware"
	"foamstock/internal/delivery/http/response"
	"foamstock/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InventoryHandler holds dependencies for stock ledger handlers.
type InventoryHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListInventory returns products with derived stock status.
func (h *InventoryHandler) ListInventory(c echo.Context) error {
	filter, err := productFilterFromQuery(c)
	if err != nil {
		return err
	}

	items, total, err := h.uc.ListInventory(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ListEnvelope{
		Items: newInventoryItemViews(items),
		Total: total,
	}, "Inventory retrieved successfully")
}

// GetStock returns one product's stock read model.
func (h *InventoryHandler) GetStock(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.uc.GetStock(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInventoryItemView(item), "Stock retrieved successfully")
}

type setStockRequest struct {
	Stock  int    `json:"stock"`
	Reason string `json:"reason" validate:"required"`
}

// SetStock writes an absolute stock level with an audit entry.
func (h *InventoryHandler) SetStock(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req setStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	item, err := h.uc.SetStock(c.Request().Context(), id, req.Stock, usecase.StockWriteInput{
		Reason:     req.Reason,
		AdjustedBy: actor.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInventoryItemView(item), "Stock updated successfully")
}

type adjustStockRequest struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason" validate:"required"`
}

// AdjustStock applies a relative delta with an audit entry.
func (h *InventoryHandler) AdjustStock(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adjustment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	item, err := h.uc.AdjustStock(c.Request().Context(), id, req.Delta, usecase.StockWriteInput{
		Reason:     req.Reason,
		AdjustedBy: actor.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInventoryItemView(item), "Stock adjusted successfully")
}

// ListAdjustments returns a product's audit trail, newest first.
func (h *InventoryHandler) ListAdjustments(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	limit, offset := pagination(c)
	adjustments, err := h.uc.ListAdjustments(c.Request().Context(), id, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStockAdjustmentViews(adjustments), "Adjustments retrieved successfully")
}

// LowStockAlerts returns active products at or below their minimum level.
func (h *InventoryHandler) LowStockAlerts(c echo.Context) error {
	items, err := h.uc.LowStockAlerts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInventoryItemViews(items), "Low stock alerts retrieved successfully")
}
