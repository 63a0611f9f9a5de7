package handler

import (
	"time"

	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/repository"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// View structs shape the JSON surface of the API. Entities never cross the
// HTTP boundary directly, so password hashes and internal fields stay out of
// responses.

// UserView is the outward shape of a staff account.
type UserView struct {
	ID          uuid.UUID       `json:"id"`
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	FullName    string          `json:"full_name"`
	Role        string          `json:"role"`
	Permissions map[string]bool `json:"permissions"`
	LastLogin   *time.Time      `json:"last_login,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		Role:      user.Role.String(),
		Permissions: map[string]bool{
			entity.PermissionViewProfits:     user.Permissions.ViewProfits,
			entity.PermissionManageUsers:     user.Permissions.ManageUsers,
			entity.PermissionViewReports:     user.Permissions.ViewReports,
			entity.PermissionManageInventory: user.Permissions.ManageInventory,
			entity.PermissionManageSales:     user.Permissions.ManageSales,
			entity.PermissionManageCustomers: user.Permissions.ManageCustomers,
			entity.PermissionManageSuppliers: user.Permissions.ManageSuppliers,
		},
		LastLogin: user.LastLogin,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func newUserViews(users []*entity.User) []*UserView {
	views := make([]*UserView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}

	return views
}

// DimensionsView is the outward shape of physical product attributes.
type DimensionsView struct {
	Thickness float64 `json:"thickness"`
	Density   float64 `json:"density"`
	Length    float64 `json:"length,omitempty"`
	Width     float64 `json:"width,omitempty"`
}

// ProductView is the outward shape of a catalog item.
type ProductView struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Dimensions    *DimensionsView `json:"dimensions,omitempty"`
	SupplierID    uuid.UUID       `json:"supplier_id"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	ProfitMargin  decimal.Decimal `json:"profit_margin"`
	SKU           string          `json:"sku"`
	Description   string          `json:"description,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	CurrentStock  int             `json:"current_stock"`
	MinStockLevel int             `json:"min_stock_level"`
	MaxStockLevel int             `json:"max_stock_level"`
	StockStatus   string          `json:"stock_status"`
	StockAlerts   bool            `json:"stock_alerts"`
	IsActive      bool            `json:"is_active"`
	LastRestocked *time.Time      `json:"last_restocked,omitempty"`
	LastSold      *time.Time      `json:"last_sold,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func newProductView(product *entity.Product) *ProductView {
	if product == nil {
		return nil
	}

	var dimensions *DimensionsView
	if product.Dimensions != nil {
		dimensions = &DimensionsView{
			Thickness: product.Dimensions.Thickness,
			Density:   product.Dimensions.Density,
			Length:    product.Dimensions.Length,
			Width:     product.Dimensions.Width,
		}
	}

	return &ProductView{
		ID:            product.ID,
		Name:          product.Name,
		Category:      product.Category.String(),
		Dimensions:    dimensions,
		SupplierID:    product.SupplierID,
		UnitCost:      product.UnitCost,
		SellingPrice:  product.SellingPrice,
		ProfitMargin:  product.ProfitMargin().Round(2),
		SKU:           product.SKU,
		Description:   product.Description,
		Tags:          product.Tags,
		CurrentStock:  product.CurrentStock,
		MinStockLevel: product.MinStockLevel,
		MaxStockLevel: product.MaxStockLevel,
		StockStatus:   product.StockStatus().String(),
		StockAlerts:   product.StockAlerts,
		IsActive:      product.IsActive,
		LastRestocked: product.LastRestocked,
		LastSold:      product.LastSold,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	return views
}

// AddressView is the outward shape of a postal address.
type AddressView struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

func newAddressView(address entity.Address) AddressView {
	return AddressView{
		Street:  address.Street,
		City:    address.City,
		State:   address.State,
		ZipCode: address.ZipCode,
		Country: address.Country,
	}
}

func (v AddressView) toEntity() entity.Address {
	return entity.Address{
		Street:  v.Street,
		City:    v.City,
		State:   v.State,
		ZipCode: v.ZipCode,
		Country: v.Country,
	}
}

// SupplierView is the outward shape of a vendor.
type SupplierView struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Company          string          `json:"company,omitempty"`
	ContactPerson    string          `json:"contact_person,omitempty"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	Address          AddressView     `json:"address"`
	PaymentTerms     string          `json:"payment_terms"`
	Rating           int             `json:"rating"`
	TotalOrders      int             `json:"total_orders"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	LastOrderDate    *time.Time      `json:"last_order_date,omitempty"`
	ProductsSupplied []uuid.UUID     `json:"products_supplied,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
}

func newSupplierView(supplier *entity.Supplier) *SupplierView {
	if supplier == nil {
		return nil
	}

	return &SupplierView{
		ID:               supplier.ID,
		Name:             supplier.Name,
		Company:          supplier.Company,
		ContactPerson:    supplier.ContactPerson,
		Email:            supplier.Email,
		Phone:            supplier.Phone,
		Address:          newAddressView(supplier.Address),
		PaymentTerms:     supplier.PaymentTerms.String(),
		Rating:           supplier.Rating,
		TotalOrders:      supplier.TotalOrders,
		TotalSpent:       supplier.TotalSpent,
		LastOrderDate:    supplier.LastOrderDate,
		ProductsSupplied: supplier.ProductsSupplied,
		Notes:            supplier.Notes,
		IsActive:         supplier.IsActive,
		CreatedAt:        supplier.CreatedAt,
	}
}

func newSupplierViews(suppliers []*entity.Supplier) []*SupplierView {
	views := make([]*SupplierView, 0, len(suppliers))
	for _, supplier := range suppliers {
		views = append(views, newSupplierView(supplier))
	}

	return views
}

// CustomerView is the outward shape of a buyer.
type CustomerView struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Type          string          `json:"type"`
	Address       AddressView     `json:"address"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	CurrentCredit decimal.Decimal `json:"current_credit"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	PurchaseCount int             `json:"purchase_count"`
	LastPurchase  *time.Time      `json:"last_purchase,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

func newCustomerView(customer *entity.Customer) *CustomerView {
	if customer == nil {
		return nil
	}

	return &CustomerView{
		ID:            customer.ID,
		Name:          customer.Name,
		Email:         customer.Email,
		Phone:         customer.Phone,
		Type:          customer.Type.String(),
		Address:       newAddressView(customer.Address),
		CreditLimit:   customer.CreditLimit,
		CurrentCredit: customer.CurrentCredit,
		TotalSpent:    customer.TotalSpent,
		PurchaseCount: customer.PurchaseCount,
		LastPurchase:  customer.LastPurchase,
		Notes:         customer.Notes,
		IsActive:      customer.IsActive,
		CreatedAt:     customer.CreatedAt,
	}
}

func newCustomerViews(customers []*entity.Customer) []*CustomerView {
	views := make([]*CustomerView, 0, len(customers))
	for _, customer := range customers {
		views = append(views, newCustomerView(customer))
	}

	return views
}

// SaleItemView is the outward shape of one sale line.
type SaleItemView struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Profit     decimal.Decimal `json:"profit"`
}

// SaleView is the outward shape of a sale.
type SaleView struct {
	ID            uuid.UUID       `json:"id"`
	SaleNumber    string          `json:"sale_number"`
	CustomerID    *uuid.UUID      `json:"customer_id,omitempty"`
	Items         []SaleItemView  `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Balance       decimal.Decimal `json:"balance"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	SoldBy        uuid.UUID       `json:"sold_by"`
	SaleDate      time.Time       `json:"sale_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

func newSaleView(sale *entity.Sale) *SaleView {
	if sale == nil {
		return nil
	}

	items := make([]SaleItemView, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, SaleItemView{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			UnitCost:   item.UnitCost,
			TotalPrice: item.TotalPrice,
			Profit:     item.Profit,
		})
	}

	return &SaleView{
		ID:            sale.ID,
		SaleNumber:    sale.SaleNumber,
		CustomerID:    sale.CustomerID,
		Items:         items,
		Subtotal:      sale.Subtotal,
		Discount:      sale.Discount,
		Tax:           sale.Tax,
		TotalAmount:   sale.TotalAmount,
		AmountPaid:    sale.AmountPaid,
		Balance:       sale.Balance,
		TotalProfit:   sale.TotalProfit,
		PaymentMethod: sale.PaymentMethod.String(),
		Status:        sale.Status.String(),
		Notes:         sale.Notes,
		SoldBy:        sale.SoldBy,
		SaleDate:      sale.SaleDate,
		CreatedAt:     sale.CreatedAt,
	}
}

func newSaleViews(sales []*entity.Sale) []*SaleView {
	views := make([]*SaleView, 0, len(sales))
	for _, sale := range sales {
		views = append(views, newSaleView(sale))
	}

	return views
}

// StockAdjustmentView is the outward shape of an audit record.
type StockAdjustmentView struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	Delta       int       `json:"delta"`
	Reason      string    `json:"reason"`
	AdjustedBy  uuid.UUID `json:"adjusted_by"`
	StockBefore int       `json:"stock_before"`
	StockAfter  int       `json:"stock_after"`
	CreatedAt   time.Time `json:"created_at"`
}

func newStockAdjustmentViews(adjustments []*entity.StockAdjustment) []*StockAdjustmentView {
	views := make([]*StockAdjustmentView, 0, len(adjustments))
	for _, adjustment := range adjustments {
		views = append(views, &StockAdjustmentView{
			ID:          adjustment.ID,
			ProductID:   adjustment.ProductID,
			Delta:       adjustment.Delta,
			Reason:      adjustment.Reason,
			AdjustedBy:  adjustment.AdjustedBy,
			StockBefore: adjustment.StockBefore,
			StockAfter:  adjustment.StockAfter,
			CreatedAt:   adjustment.CreatedAt,
		})
	}

	return views
}

// InventoryItemView pairs a product with its derived stock read model.
type InventoryItemView struct {
	Product       *ProductView `json:"product"`
	CurrentStock  int          `json:"current_stock"`
	Status        string       `json:"status"`
	AlertsEnabled bool         `json:"alerts_enabled"`
}

func newInventoryItemView(item *usecase.InventoryItem) *InventoryItemView {
	if item == nil {
		return nil
	}

	return &InventoryItemView{
		Product:       newProductView(item.Product),
		CurrentStock:  item.Stock.CurrentStock,
		Status:        item.Stock.Status.String(),
		AlertsEnabled: item.Stock.AlertsEnabled,
	}
}

func newInventoryItemViews(items []*usecase.InventoryItem) []*InventoryItemView {
	views := make([]*InventoryItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newInventoryItemView(item))
	}

	return views
}

// SaleSummaryView is the aggregate block returned alongside sale listings.
type SaleSummaryView struct {
	Count        int64           `json:"count"`
	Revenue      decimal.Decimal `json:"revenue"`
	Profit       decimal.Decimal `json:"profit"`
	AverageValue decimal.Decimal `json:"average_value"`
}

func newSaleSummaryView(summary *repository.SaleSummary) *SaleSummaryView {
	if summary == nil {
		return nil
	}

	return &SaleSummaryView{
		Count:        summary.Count,
		Revenue:      summary.Revenue,
		Profit:       summary.Profit,
		AverageValue: summary.AverageValue,
	}
}

// DailySummaryView aggregates one day's sales.
type DailySummaryView struct {
	Date         string          `json:"date"`
	Count        int64           `json:"count"`
	Revenue      decimal.Decimal `json:"revenue"`
	Profit       decimal.Decimal `json:"profit"`
	AverageValue decimal.Decimal `json:"average_value"`
}

func newDailySummaryView(summary *usecase.DailySummary) *DailySummaryView {
	if summary == nil {
		return nil
	}

	return &DailySummaryView{
		Date:         summary.Date.Format("2006-01-02"),
		Count:        summary.Count,
		Revenue:      summary.Revenue,
		Profit:       summary.Profit,
		AverageValue: summary.AverageValue,
	}
}

// SalesBucketView is one day of the sales chart.
type SalesBucketView struct {
	Day     string          `json:"day"`
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

func newSalesBucketViews(buckets []repository.SalesBucket) []SalesBucketView {
	views := make([]SalesBucketView, 0, len(buckets))
	for _, bucket := range buckets {
		views = append(views, SalesBucketView{
			Day:     bucket.Day.Format("2006-01-02"),
			Count:   bucket.Count,
			Revenue: bucket.Revenue,
			Profit:  bucket.Profit,
		})
	}

	return views
}

// ProductSalesView ranks a product by quantity sold.
type ProductSalesView struct {
	ProductID    uuid.UUID       `json:"product_id"`
	Name         string          `json:"name"`
	QuantitySold int64           `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

func newProductSalesViews(rankings []repository.ProductSales) []ProductSalesView {
	views := make([]ProductSalesView, 0, len(rankings))
	for _, ranking := range rankings {
		views = append(views, ProductSalesView{
			ProductID:    ranking.ProductID,
			Name:         ranking.Name,
			QuantitySold: ranking.QuantitySold,
			Revenue:      ranking.Revenue,
		})
	}

	return views
}

// CategoryAggregateView rolls up stock and valuation for one category.
type CategoryAggregateView struct {
	Category     string          `json:"category"`
	ProductCount int64           `json:"product_count"`
	UnitsInStock int64           `json:"units_in_stock"`
	Valuation    decimal.Decimal `json:"valuation"`
	RetailValue  decimal.Decimal `json:"retail_value"`
}

func newCategoryAggregateViews(aggregates []repository.CategoryAggregate) []CategoryAggregateView {
	views := make([]CategoryAggregateView, 0, len(aggregates))
	for _, aggregate := range aggregates {
		views = append(views, CategoryAggregateView{
			Category:     aggregate.Category.String(),
			ProductCount: aggregate.ProductCount,
			UnitsInStock: aggregate.UnitsInStock,
			Valuation:    aggregate.Valuation,
			RetailValue:  aggregate.RetailValue,
		})
	}

	return views
}

// ListEnvelope wraps a page of results with the pre-pagination total.
type ListEnvelope struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
}
