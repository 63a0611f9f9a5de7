package postgres

import (
	"context"
	"time"

	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	"foamstock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// excludedFromTotals lists the lifecycle states left out of revenue and
// profit aggregates.
var excludedFromTotals = []string{
	entity.SaleStatusCancelled.String(),
	entity.SaleStatusRefunded.String(),
}

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// CreateSale persists a sale together with its line items.
func (repo *saleRepository) CreateSale(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSaleNumber
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid customer or product reference")
		}
		if isSerializationFailure(err) {
			return domainerrors.ErrConcurrentStockConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	// Update the entity with generated values
	sale.ID = saleM.ID
	sale.CreatedAt = saleM.CreatedAt
	sale.UpdatedAt = saleM.UpdatedAt
	for i := range saleM.Items {
		if i < len(sale.Items) {
			sale.Items[i].ID = saleM.Items[i].ID
			sale.Items[i].SaleID = saleM.Items[i].SaleID
		}
	}

	return nil
}

// FindSaleByID retrieves a sale with its items.
func (repo *saleRepository) FindSaleByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleM model.SaleModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&saleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by ID")
	}

	return toSaleDomain(&saleM), nil
}

// FindSaleByNumber retrieves a sale by its human-readable number.
func (repo *saleRepository) FindSaleByNumber(ctx context.Context, saleNumber string) (*entity.Sale, error) {
	var saleM model.SaleModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("sale_number = ?", saleNumber).
		First(&saleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by number")
	}

	return toSaleDomain(&saleM), nil
}

// ListSales retrieves sales matching the filter, newest first, along with the
// total count before pagination.
func (repo *saleRepository) ListSales(ctx context.Context, filter repository.SaleFilter) ([]*entity.Sale, int64, error) {
	query := repo.saleListQuery(ctx, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count sales")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var saleModels []*model.SaleModel
	if err := query.Preload("Items").Order("sale_date DESC").Find(&saleModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales, total, nil
}

func (repo *saleRepository) saleListQuery(ctx context.Context, filter repository.SaleFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.SaleModel{})

	if filter.From != nil {
		query = query.Where("sale_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("sale_date < ?", *filter.To)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.PaymentMethod != "" {
		query = query.Where("payment_method = ?", filter.PaymentMethod.String())
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.SoldBy != nil {
		query = query.Where("sold_by = ?", *filter.SoldBy)
	}

	return query
}

// UpdateSale persists header changes and, when the sale carries items,
// replaces the line items wholesale. Callers revising items must run this
// inside a TransactionManager execution.
func (repo *saleRepository) UpdateSale(ctx context.Context, sale *entity.Sale) error {
	updates := map[string]any{
		"subtotal":       sale.Subtotal,
		"discount":       sale.Discount,
		"tax":            sale.Tax,
		"total_amount":   sale.TotalAmount,
		"amount_paid":    sale.AmountPaid,
		"balance":        sale.Balance,
		"total_profit":   sale.TotalProfit,
		"payment_method": sale.PaymentMethod.String(),
		"status":         sale.Status.String(),
		"notes":          sale.Notes,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("id = ?", sale.ID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update sale")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSaleNotFound
	}

	if len(sale.Items) == 0 {
		return nil
	}

	// Replace the line items wholesale.
	if err := repo.db.WithContext(ctx).
		Where("sale_id = ?", sale.ID).
		Delete(&model.SaleItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear sale items")
	}

	itemModels := make([]model.SaleItemModel, 0, len(sale.Items))
	for _, item := range sale.Items {
		itemM := fromSaleItemDomain(item)
		itemM.SaleID = sale.ID
		itemModels = append(itemModels, itemM)
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to write sale items")
	}

	for i := range itemModels {
		sale.Items[i].ID = itemModels[i].ID
		sale.Items[i].SaleID = itemModels[i].SaleID
	}

	return nil
}

// UpdateSaleStatus changes only the lifecycle status of a sale.
func (repo *saleRepository) UpdateSaleStatus(ctx context.Context, id uuid.UUID, status entity.SaleStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update sale status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSaleNotFound
	}

	return nil
}

// saleSummaryRow receives the aggregate scan.
type saleSummaryRow struct {
	Count   int64
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// Summarize aggregates count, revenue, profit and average value over sales
// matching the filter. Cancelled and refunded sales are excluded.
func (repo *saleRepository) Summarize(ctx context.Context, filter repository.SaleFilter) (*repository.SaleSummary, error) {
	var row saleSummaryRow

	if err := repo.saleListQuery(ctx, filter).
		Where("status NOT IN ?", excludedFromTotals).
		Select("COUNT(*) AS count, " +
			"COALESCE(SUM(total_amount), 0) AS revenue, " +
			"COALESCE(SUM(total_profit), 0) AS profit").
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize sales")
	}

	summary := &repository.SaleSummary{
		Count:   row.Count,
		Revenue: row.Revenue,
		Profit:  row.Profit,
	}
	if row.Count > 0 {
		summary.AverageValue = row.Revenue.Div(decimal.NewFromInt(row.Count)).Round(2)
	}

	return summary, nil
}

// salesBucketRow receives the per-day aggregate scan.
type salesBucketRow struct {
	Day     time.Time
	Count   int64
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// SalesBuckets aggregates per-day revenue and profit between from and to,
// excluding cancelled and refunded sales. Days without sales yield no bucket.
func (repo *saleRepository) SalesBuckets(ctx context.Context, from, to time.Time) ([]repository.SalesBucket, error) {
	var rows []salesBucketRow

	if err := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Select("DATE_TRUNC('day', sale_date) AS day, " +
			"COUNT(*) AS count, " +
			"COALESCE(SUM(total_amount), 0) AS revenue, " +
			"COALESCE(SUM(total_profit), 0) AS profit").
		Where("sale_date >= ? AND sale_date < ?", from, to).
		Where("status NOT IN ?", excludedFromTotals).
		Group("DATE_TRUNC('day', sale_date)").
		Order("day ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to bucket sales by day")
	}

	buckets := make([]repository.SalesBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, repository.SalesBucket{
			Day:     row.Day,
			Count:   row.Count,
			Revenue: row.Revenue,
			Profit:  row.Profit,
		})
	}

	return buckets, nil
}

// productSalesRow receives the product ranking scan.
type productSalesRow struct {
	ProductID    uuid.UUID
	Name         string
	QuantitySold int64
	Revenue      decimal.Decimal
}

// TopProducts ranks products by quantity sold since the given time.
func (repo *saleRepository) TopProducts(ctx context.Context, since time.Time, limit int) ([]repository.ProductSales, error) {
	var rows []productSalesRow

	if err := repo.db.WithContext(ctx).
		Table("sale_items").
		Select("sale_items.product_id, products.name, "+
			"SUM(sale_items.quantity) AS quantity_sold, "+
			"COALESCE(SUM(sale_items.total_price), 0) AS revenue").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Joins("JOIN products ON products.id = sale_items.product_id").
		Where("sales.sale_date >= ?", since).
		Where("sales.status NOT IN ?", excludedFromTotals).
		Group("sale_items.product_id, products.name").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank top selling products")
	}

	ranked := make([]repository.ProductSales, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, repository.ProductSales{
			ProductID:    row.ProductID,
			Name:         row.Name,
			QuantitySold: row.QuantitySold,
			Revenue:      row.Revenue,
		})
	}

	return ranked, nil
}

// RecentSales retrieves the most recent sales regardless of status.
func (repo *saleRepository) RecentSales(ctx context.Context, limit int) ([]*entity.Sale, error) {
	var saleModels []*model.SaleModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("sale_date DESC").
		Limit(limit).
		Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent sales")
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales, nil
}

// --- Mapper Functions ---

// toSaleDomain converts a GORM SaleModel to a domain Sale entity.
func toSaleDomain(data *model.SaleModel) *entity.Sale {
	if data == nil {
		return nil
	}

	items := make([]entity.SaleItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toSaleItemDomain(itemM))
	}

	return &entity.Sale{
		ID:            data.ID,
		SaleNumber:    data.SaleNumber,
		CustomerID:    data.CustomerID,
		Items:         items,
		Subtotal:      data.Subtotal,
		Discount:      data.Discount,
		Tax:           data.Tax,
		TotalAmount:   data.TotalAmount,
		AmountPaid:    data.AmountPaid,
		Balance:       data.Balance,
		TotalProfit:   data.TotalProfit,
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		Status:        entity.SaleStatus(data.Status),
		Notes:         data.Notes,
		SoldBy:        data.SoldBy,
		SaleDate:      data.SaleDate,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromSaleDomain converts a domain Sale entity to a GORM SaleModel.
func fromSaleDomain(data *entity.Sale) *model.SaleModel {
	if data == nil {
		return nil
	}

	items := make([]model.SaleItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, fromSaleItemDomain(item))
	}

	return &model.SaleModel{
		ID:            data.ID,
		SaleNumber:    data.SaleNumber,
		CustomerID:    data.CustomerID,
		Subtotal:      data.Subtotal,
		Discount:      data.Discount,
		Tax:           data.Tax,
		TotalAmount:   data.TotalAmount,
		AmountPaid:    data.AmountPaid,
		Balance:       data.Balance,
		TotalProfit:   data.TotalProfit,
		PaymentMethod: data.PaymentMethod.String(),
		Status:        data.Status.String(),
		Notes:         data.Notes,
		SoldBy:        data.SoldBy,
		SaleDate:      data.SaleDate,
		Items:         items,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toSaleItemDomain converts a GORM SaleItemModel to a domain SaleItem.
func toSaleItemDomain(data model.SaleItemModel) entity.SaleItem {
	return entity.SaleItem{
		ID:         data.ID,
		SaleID:     data.SaleID,
		ProductID:  data.ProductID,
		Quantity:   data.Quantity,
		UnitPrice:  data.UnitPrice,
		UnitCost:   data.UnitCost,
		TotalPrice: data.TotalPrice,
		Profit:     data.Profit,
	}
}

// fromSaleItemDomain converts a domain SaleItem to a GORM SaleItemModel.
func fromSaleItemDomain(data entity.SaleItem) model.SaleItemModel {
	return model.SaleItemModel{
		ID:         data.ID,
		SaleID:     data.SaleID,
		ProductID:  data.ProductID,
		Quantity:   data.Quantity,
		UnitPrice:  data.UnitPrice,
		UnitCost:   data.UnitCost,
		TotalPrice: data.TotalPrice,
		Profit:     data.Profit,
	}
}
