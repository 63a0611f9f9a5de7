package handler

import (
	"log/slog"
	"net/http"
	"time"

	"foamstock/internal/delivery/http/middleware"
	"foamstock/internal/delivery/http/response"
	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/repository"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// SaleHandler holds dependencies for sale transaction handlers.
type SaleHandler struct {
	uc     usecase.SaleUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler, injected by Fx.
func NewSaleHandler(uc usecase.SaleUsecase, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: logger,
	}
}

type saleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// createSaleRequest omits customer_id for walk-in sales.
type createSaleRequest struct {
	CustomerID    *uuid.UUID        `json:"customer_id"`
	Items         []saleItemRequest `json:"items" validate:"required,min=1,dive"`
	Discount      decimal.Decimal   `json:"discount"`
	Tax           decimal.Decimal   `json:"tax"`
	AmountPaid    decimal.Decimal   `json:"amount_paid"`
	PaymentMethod string            `json:"payment_method" validate:"required"`
	Notes         string            `json:"notes"`
}

func saleItemInputs(items []saleItemRequest) []usecase.SaleItemInput {
	inputs := make([]usecase.SaleItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, usecase.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return inputs
}

// CreateSale executes the sale transaction for the authenticated seller.
func (h *SaleHandler) CreateSale(c echo.Context) error {
	var req createSaleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	sale, err := h.uc.CreateSale(c.Request().Context(), usecase.CreateSaleInput{
		CustomerID:    req.CustomerID,
		Items:         saleItemInputs(req.Items),
		Discount:      req.Discount,
		Tax:           req.Tax,
		AmountPaid:    req.AmountPaid,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
		SoldBy:        actor.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newSaleView(sale), "Sale recorded successfully")
}

// GetSale returns a single sale. Salespeople only see their own.
func (h *SaleHandler) GetSale(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	sale, err := h.uc.GetSale(c.Request().Context(), id, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSaleView(sale), "Sale retrieved successfully")
}

// saleListResponse bundles a page of sales with the aggregate block.
type saleListResponse struct {
	Items   []*SaleView      `json:"items"`
	Total   int64            `json:"total"`
	Summary *SaleSummaryView `json:"summary,omitempty"`
}

// ListSales returns sales matching the query filters plus the summary block.
func (h *SaleHandler) ListSales(c echo.Context) error {
	filter, err := saleFilterFromQuery(c)
	if err != nil {
		return err
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	result, err := h.uc.ListSales(c.Request().Context(), filter, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, saleListResponse{
		Items:   newSaleViews(result.Sales),
		Total:   result.Total,
		Summary: newSaleSummaryView(result.Summary),
	}, "Sales retrieved successfully")
}

func saleFilterFromQuery(c echo.Context) (repository.SaleFilter, error) {
	limit, offset := pagination(c)
	filter := repository.SaleFilter{
		Status:        entity.SaleStatus(c.QueryParam("status")),
		PaymentMethod: entity.PaymentMethod(c.QueryParam("payment_method")),
		Limit:         limit,
		Offset:        offset,
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := parseDay(raw)
		if err != nil {
			return filter, response.BadRequest(c, "INVALID_INPUT", "Invalid from date")
		}
		filter.From = &from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := parseDay(raw)
		if err != nil {
			return filter, response.BadRequest(c, "INVALID_INPUT", "Invalid to date")
		}
		filter.To = &to
	}
	if raw := c.QueryParam("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			return filter, response.BadRequest(c, "INVALID_INPUT", "Invalid customer_id")
		}
		filter.CustomerID = &customerID
	}

	return filter, nil
}

// parseDay accepts either a date or a full RFC 3339 timestamp.
func parseDay(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, raw)
}

type reviseSaleRequest struct {
	Items         []saleItemRequest `json:"items"`
	Discount      *decimal.Decimal  `json:"discount"`
	Tax           *decimal.Decimal  `json:"tax"`
	AmountPaid    *decimal.Decimal  `json:"amount_paid"`
	PaymentMethod *string           `json:"payment_method"`
	Notes         *string           `json:"notes"`
	Status        *string           `json:"status"`
}

func (r *reviseSaleRequest) hasFieldChanges() bool {
	return r.Items != nil || r.Discount != nil || r.Tax != nil ||
		r.AmountPaid != nil || r.PaymentMethod != nil || r.Notes != nil
}

// ReviseSale updates a pending sale, optionally replacing its line items.
// A status in the body runs the lifecycle transition after the field
// changes, with the same restock side effects as the status endpoint.
func (h *SaleHandler) ReviseSale(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req reviseSaleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}
	if !req.hasFieldChanges() && req.Status == nil {
		return response.BadRequest(c, "INVALID_INPUT", "No sale changes supplied")
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	var sale *entity.Sale
	if req.hasFieldChanges() {
		input := usecase.ReviseSaleInput{
			Discount:   req.Discount,
			Tax:        req.Tax,
			AmountPaid: req.AmountPaid,
			Notes:      req.Notes,
		}
		if req.Items != nil {
			input.Items = saleItemInputs(req.Items)
		}
		if req.PaymentMethod != nil {
			method := entity.PaymentMethod(*req.PaymentMethod)
			input.PaymentMethod = &method
		}

		sale, err = h.uc.ReviseSale(c.Request().Context(), id, input, actor)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	if req.Status != nil {
		result, err := h.uc.ChangeStatus(c.Request().Context(), id, entity.SaleStatus(*req.Status), actor)
		if err != nil {
			return errors.WithStack(err)
		}

		return statusChangeSuccess(c, result)
	}

	return response.Success(c, http.StatusOK, newSaleView(sale), "Sale revised successfully")
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// restockFailureView reports one line that could not be returned to stock.
type restockFailureView struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
}

type statusChangeResponse struct {
	Sale            *SaleView            `json:"sale"`
	RestockFailures []restockFailureView `json:"restock_failures,omitempty"`
}

// ChangeStatus moves a sale through its lifecycle.
func (h *SaleHandler) ChangeStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	result, err := h.uc.ChangeStatus(c.Request().Context(), id, entity.SaleStatus(req.Status), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return statusChangeSuccess(c, result)
}

func statusChangeSuccess(c echo.Context, result *usecase.StatusChangeResult) error {
	failures := make([]restockFailureView, 0, len(result.Failures))
	for _, failure := range result.Failures {
		failures = append(failures, restockFailureView{
			ProductID: failure.ProductID,
			Quantity:  failure.Quantity,
			Reason:    failure.Reason,
		})
	}

	message := "Sale status updated successfully"
	if len(failures) > 0 {
		message = "Sale status updated; some items could not be restocked"
	}

	return response.Success(c, http.StatusOK, statusChangeResponse{
		Sale:            newSaleView(result.Sale),
		RestockFailures: failures,
	}, message)
}

// GetDailySummary aggregates one day's sales. Defaults to today.
func (h *SaleHandler) GetDailySummary(c echo.Context) error {
	day := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := parseDay(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid date")
		}
		day = parsed
	}

	summary, err := h.uc.GetDailySummary(c.Request().Context(), day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDailySummaryView(summary), "Daily summary retrieved successfully")
}
