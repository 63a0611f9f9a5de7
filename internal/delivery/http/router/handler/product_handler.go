package handler

import (
	"log/slog"
	"net/http"

	"foamstock/internal/delivery/http/response"
	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/repository"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts returns catalog items matching the query filters.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter, err := productFilterFromQuery(c)
	if err != nil {
		return err
	}

	products, total, err := h.uc.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ListEnvelope{
		Items: newProductViews(products),
		Total: total,
	}, "Products retrieved successfully")
}

func productFilterFromQuery(c echo.Context) (repository.ProductFilter, error) {
	limit, offset := pagination(c)
	filter := repository.ProductFilter{
		Category:        entity.Category(c.QueryParam("category")),
		Search:          c.QueryParam("search"),
		IncludeInactive: queryBool(c, "include_inactive"),
		Limit:           limit,
		Offset:          offset,
	}

	if raw := c.QueryParam("supplier_id"); raw != "" {
		supplierID, err := uuid.Parse(raw)
		if err != nil {
			return filter, response.BadRequest(c, "INVALID_INPUT", "Invalid supplier_id")
		}
		filter.SupplierID = &supplierID
	}
	if raw := c.QueryParam("min_price"); raw != "" {
		minPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, response.BadRequest(c, "INVALID_INPUT", "Invalid min_price")
		}
		filter.MinPrice = &minPrice
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, response.BadRequest(c, "INVALID_INPUT", "Invalid max_price")
		}
		filter.MaxPrice = &maxPrice
	}

	return filter, nil
}

// GetProduct returns a single catalog item.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product retrieved successfully")
}

type dimensionsRequest struct {
	Thickness float64 `json:"thickness"`
	Density   float64 `json:"density"`
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
}

func (r *dimensionsRequest) toEntity() *entity.Dimensions {
	if r == nil {
		return nil
	}

	return &entity.Dimensions{
		Thickness: r.Thickness,
		Density:   r.Density,
		Length:    r.Length,
		Width:     r.Width,
	}
}

type createProductRequest struct {
	Name          string             `json:"name" validate:"required"`
	Category      string             `json:"category" validate:"required"`
	Dimensions    *dimensionsRequest `json:"dimensions"`
	SupplierID    uuid.UUID          `json:"supplier_id" validate:"required"`
	UnitCost      decimal.Decimal    `json:"unit_cost"`
	SellingPrice  decimal.Decimal    `json:"selling_price"`
	SKU           string             `json:"sku"`
	Description   string             `json:"description"`
	Tags          []string           `json:"tags"`
	InitialStock  int                `json:"initial_stock"`
	MinStockLevel *int               `json:"min_stock_level"`
	MaxStockLevel *int               `json:"max_stock_level"`
	StockAlerts   *bool              `json:"stock_alerts"`
}

// CreateProduct adds a catalog item.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:          req.Name,
		Category:      entity.Category(req.Category),
		Dimensions:    req.Dimensions.toEntity(),
		SupplierID:    req.SupplierID,
		UnitCost:      req.UnitCost,
		SellingPrice:  req.SellingPrice,
		SKU:           req.SKU,
		Description:   req.Description,
		Tags:          req.Tags,
		InitialStock:  req.InitialStock,
		MinStockLevel: req.MinStockLevel,
		MaxStockLevel: req.MaxStockLevel,
		StockAlerts:   req.StockAlerts,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductView(product), "Product created successfully")
}

type updateProductRequest struct {
	Name         *string            `json:"name"`
	Dimensions   *dimensionsRequest `json:"dimensions"`
	UnitCost     *decimal.Decimal   `json:"unit_cost"`
	SellingPrice *decimal.Decimal   `json:"selling_price"`
	Description  *string            `json:"description"`
	Tags         []string           `json:"tags"`
	StockAlerts  *bool              `json:"stock_alerts"`
}

// UpdateProduct applies partial catalog changes.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:         req.Name,
		Dimensions:   req.Dimensions.toEntity(),
		UnitCost:     req.UnitCost,
		SellingPrice: req.SellingPrice,
		Description:  req.Description,
		Tags:         req.Tags,
		StockAlerts:  req.StockAlerts,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product updated successfully")
}

// DeleteProduct soft-deletes a catalog item.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deactivated successfully")
}

// Categories lists the valid product categories.
func (h *ProductHandler) Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Categories(c.Request().Context()), "Categories retrieved successfully")
}

// MattressThicknessOptions lists distinct thickness values across active
// mattresses, for catalog filter dropdowns.
func (h *ProductHandler) MattressThicknessOptions(c echo.Context) error {
	thicknesses, err := h.uc.MattressThicknessOptions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, thicknesses, "Thickness options retrieved successfully")
}

// MattressDensityOptions lists distinct density values across active
// mattresses.
func (h *ProductHandler) MattressDensityOptions(c echo.Context) error {
	densities, err := h.uc.MattressDensityOptions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, densities, "Density options retrieved successfully")
}

type updateThresholdsRequest struct {
	MinStockLevel *int `json:"min_stock_level"`
	MaxStockLevel *int `json:"max_stock_level"`
}

// UpdateThresholds changes the stock levels used for status derivation.
func (h *ProductHandler) UpdateThresholds(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateThresholdsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid thresholds input")
	}
	if req.MinStockLevel == nil && req.MaxStockLevel == nil {
		return response.BadRequest(c, "INVALID_INPUT", "No threshold changes supplied")
	}

	product, err := h.uc.UpdateThresholds(c.Request().Context(), id, req.MinStockLevel, req.MaxStockLevel)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Thresholds updated successfully")
}
