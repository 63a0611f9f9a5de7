package handler

import (
	"log/slog"
	"net/http"

	"foamstock/internal/delivery/http/response"
	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/repository"
	"foamstock/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupplierHandler holds dependencies for vendor handlers.
type SupplierHandler struct {
	uc     usecase.SupplierUsecase
	logger *slog.Logger
}

// NewSupplierHandler is the constructor for SupplierHandler, injected by Fx.
func NewSupplierHandler(uc usecase.SupplierUsecase, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListSuppliers returns vendors matching the query filters.
func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	limit, offset := pagination(c)
	filter := repository.SupplierFilter{
		Search:          c.QueryParam("search"),
		IncludeInactive: queryBool(c, "include_inactive"),
		Limit:           limit,
		Offset:          offset,
	}

	suppliers, total, err := h.uc.ListSuppliers(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ListEnvelope{
		Items: newSupplierViews(suppliers),
		Total: total,
	}, "Suppliers retrieved successfully")
}

// GetSupplier returns a single vendor.
func (h *SupplierHandler) GetSupplier(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	supplier, err := h.uc.GetSupplier(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSupplierView(supplier), "Supplier retrieved successfully")
}

type createSupplierRequest struct {
	Name          string      `json:"name" validate:"required"`
	Company       string      `json:"company"`
	ContactPerson string      `json:"contact_person"`
	Email         string      `json:"email" validate:"omitempty,email"`
	Phone         string      `json:"phone"`
	Address       AddressView `json:"address"`
	PaymentTerms  string      `json:"payment_terms"`
	Rating        int         `json:"rating" validate:"omitempty,min=1,max=5"`
	Notes         string      `json:"notes"`
}

// CreateSupplier adds a vendor.
func (h *SupplierHandler) CreateSupplier(c echo.Context) error {
	var req createSupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	supplier, err := h.uc.CreateSupplier(c.Request().Context(), usecase.CreateSupplierInput{
		Name:          req.Name,
		Company:       req.Company,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address.toEntity(),
		PaymentTerms:  entity.PaymentTerms(req.PaymentTerms),
		Rating:        req.Rating,
		Notes:         req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newSupplierView(supplier), "Supplier created successfully")
}

type updateSupplierRequest struct {
	Name          *string      `json:"name"`
	Company       *string      `json:"company"`
	ContactPerson *string      `json:"contact_person"`
	Email         *string      `json:"email"`
	Phone         *string      `json:"phone"`
	Address       *AddressView `json:"address"`
	PaymentTerms  *string      `json:"payment_terms"`
	Rating        *int         `json:"rating"`
	Notes         *string      `json:"notes"`
	IsActive      *bool        `json:"is_active"`
}

// UpdateSupplier applies partial vendor changes.
func (h *SupplierHandler) UpdateSupplier(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}

	input := usecase.UpdateSupplierInput{
		Name:          req.Name,
		Company:       req.Company,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Rating:        req.Rating,
		Notes:         req.Notes,
		IsActive:      req.IsActive,
	}
	if req.Address != nil {
		address := req.Address.toEntity()
		input.Address = &address
	}
	if req.PaymentTerms != nil {
		terms := entity.PaymentTerms(*req.PaymentTerms)
		input.PaymentTerms = &terms
	}

	supplier, err := h.uc.UpdateSupplier(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSupplierView(supplier), "Supplier updated successfully")
}

// DeleteSupplier soft-deletes a vendor.
func (h *SupplierHandler) DeleteSupplier(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSupplier(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Supplier deactivated successfully")
}
