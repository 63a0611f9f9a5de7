package handler

import (
	"log/slog"
	"net/http"

	"foamstock/internal/delivery/http/middleware"
	"foamstock/internal/delivery/http/response"
	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/repository"
	"foamstock/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CustomerHandler holds dependencies for buyer handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCustomers returns buyers matching the query filters.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	limit, offset := pagination(c)
	filter := repository.CustomerFilter{
		Search:          c.QueryParam("search"),
		Type:            entity.CustomerType(c.QueryParam("type")),
		IncludeInactive: queryBool(c, "include_inactive"),
		Limit:           limit,
		Offset:          offset,
	}

	customers, total, err := h.uc.ListCustomers(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ListEnvelope{
		Items: newCustomerViews(customers),
		Total: total,
	}, "Customers retrieved successfully")
}

// GetCustomer returns a single buyer.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerView(customer), "Customer retrieved successfully")
}

type createCustomerRequest struct {
	Name        string          `json:"name" validate:"required"`
	Email       string          `json:"email" validate:"omitempty,email"`
	Phone       string          `json:"phone"`
	Type        string          `json:"type"`
	Address     AddressView     `json:"address"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Notes       string          `json:"notes"`
}

// CreateCustomer adds a buyer.
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	customer, err := h.uc.CreateCustomer(c.Request().Context(), usecase.CreateCustomerInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Type:        entity.CustomerType(req.Type),
		Address:     req.Address.toEntity(),
		CreditLimit: req.CreditLimit,
		Notes:       req.Notes,
		CreatedBy:   actor.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCustomerView(customer), "Customer created successfully")
}

type updateCustomerRequest struct {
	Name        *string          `json:"name"`
	Email       *string          `json:"email"`
	Phone       *string          `json:"phone"`
	Type        *string          `json:"type"`
	Address     *AddressView     `json:"address"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Notes       *string          `json:"notes"`
	IsActive    *bool            `json:"is_active"`
}

// UpdateCustomer applies partial buyer changes.
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	input := usecase.UpdateCustomerInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CreditLimit: req.CreditLimit,
		Notes:       req.Notes,
		IsActive:    req.IsActive,
	}
	if req.Type != nil {
		customerType := entity.CustomerType(*req.Type)
		input.Type = &customerType
	}
	if req.Address != nil {
		address := req.Address.toEntity()
		input.Address = &address
	}

	customer, err := h.uc.UpdateCustomer(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerView(customer), "Customer updated successfully")
}

// DeleteCustomer soft-deletes a buyer.
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCustomer(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer deactivated successfully")
}

// PurchaseHistory returns a buyer's sales, newest first.
func (h *CustomerHandler) PurchaseHistory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	limit, offset := pagination(c)
	sales, total, err := h.uc.PurchaseHistory(c.Request().Context(), id, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ListEnvelope{
		Items: newSaleViews(sales),
		Total: total,
	}, "Purchase history retrieved successfully")
}

// TopCustomers returns the highest-spending buyers.
func (h *CustomerHandler) TopCustomers(c echo.Context) error {
	limit := queryInt(c, "limit", 10)
	if limit <= 0 || limit > maxPageSize {
		limit = 10
	}

	customers, err := h.uc.TopCustomers(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerViews(customers), "Top customers retrieved successfully")
}
