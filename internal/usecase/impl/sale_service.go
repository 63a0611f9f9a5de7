// Package impl provides the implementations of the use case interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	"foamstock/internal/domain/service"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxSaleNumberAttempts bounds the retry loop for sale number collisions.
const maxSaleNumberAttempts = 3

type saleService struct {
	txManager      repository.TransactionManager
	saleRepo       repository.SaleRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// SaleServiceParams holds dependencies for SaleService, injected by Fx.
type SaleServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	SaleRepo       repository.SaleRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewSaleService creates a new sale service instance
func NewSaleService(params SaleServiceParams) usecase.SaleUsecase {
	return &saleService{
		txManager:      params.TxManager,
		saleRepo:       params.SaleRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// CreateSale executes the sale transaction: locks and decrements stock,
// captures prices, updates customer totals and inserts the sale, all
// atomically. Retries once on a sale number collision.
func (s *saleService) CreateSale(ctx context.Context, input usecase.CreateSaleInput) (*entity.Sale, error) {
	if err := validateSaleItems(input.Items); err != nil {
		return nil, err
	}
	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown payment method %q", input.PaymentMethod))
	}
	if input.Discount.IsNegative() || input.Tax.IsNegative() || input.AmountPaid.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("discount, tax and amount paid must not be negative")
	}

	var lastErr error
	for attempt := 0; attempt < maxSaleNumberAttempts; attempt++ {
		sale, alerts, err := s.executeSale(ctx, input)
		if err == nil {
			s.publishStockAlerts(ctx, alerts)

			return sale, nil
		}
		if errors.Is(err, repository.ErrDuplicateSaleNumber) {
			lastErr = err

			continue
		}

		return nil, err
	}

	return nil, domainerrors.ErrDuplicateSaleNumber.WithDetails(lastErr.Error())
}

// executeSale runs one attempt of the sale transaction and collects stock
// alerts to publish after commit.
func (s *saleService) executeSale(ctx context.Context, input usecase.CreateSaleInput) (*entity.Sale, []*service.StockAlertEvent, error) {
	var sale *entity.Sale
	var alerts []*service.StockAlertEvent

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		productRepo := f.NewProductRepository()
		customerRepo := f.NewCustomerRepository()
		saleRepo := f.NewSaleRepository()

		// Walk-in sales carry no customer; totals then have nowhere to go.
		var customer *entity.Customer
		if input.CustomerID != nil {
			var err error
			customer, err = customerRepo.FindCustomerByIDForUpdate(ctx, *input.CustomerID)
			if err != nil {
				if errors.Is(err, repository.ErrCustomerNotFound) {
					return domainerrors.ErrCustomerNotFound
				}

				return errors.Wrap(err, "failed to lock customer")
			}
		}

		now := time.Now()
		draft := &entity.Sale{
			ID:            uuid.New(),
			SaleNumber:    entity.NewSaleNumber(now),
			CustomerID:    input.CustomerID,
			Discount:      input.Discount,
			Tax:           input.Tax,
			AmountPaid:    input.AmountPaid,
			PaymentMethod: input.PaymentMethod,
			Status:        entity.SaleStatusPending,
			Notes:         input.Notes,
			SoldBy:        input.SoldBy,
			SaleDate:      now,
		}

		lineAlerts, err := applySaleItems(ctx, productRepo, draft, input.Items, now)
		if err != nil {
			return err
		}

		draft.RecomputeTotals()
		draft.DeriveStatus()

		if err := saleRepo.CreateSale(ctx, draft); err != nil {
			if errors.Is(err, repository.ErrDuplicateSaleNumber) {
				return err
			}

			return errors.Wrap(err, "failed to create sale")
		}

		if customer != nil {
			customer.RecordPurchase(draft.TotalAmount, now)
			if err := customerRepo.UpdateCustomer(ctx, customer); err != nil {
				return errors.Wrap(err, "failed to update customer totals")
			}
		}

		sale = draft
		alerts = lineAlerts

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return sale, alerts, nil
}

// applySaleItems locks each product, checks availability, captures prices
// and decrements stock. Returns the alerts for products that crossed into
// low or out-of-stock.
func applySaleItems(
	ctx context.Context,
	productRepo repository.ProductRepository,
	sale *entity.Sale,
	items []usecase.SaleItemInput,
	now time.Time,
) ([]*service.StockAlertEvent, error) {
	var alerts []*service.StockAlertEvent

	for _, item := range items {
		product, err := productRepo.FindProductByIDForUpdate(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.WithDetails(item.ProductID.String())
			}

			return nil, errors.Wrap(err, "failed to lock product")
		}
		if !product.IsActive {
			return nil, domainerrors.ErrProductInactive.WithDetails(product.Name)
		}
		if product.CurrentStock < item.Quantity {
			return nil, domainerrors.ErrInsufficientStock.WithDetails(fmt.Sprintf(
				"%s: requested %d, available %d", product.Name, item.Quantity, product.CurrentStock))
		}

		line := entity.SaleItem{
			ID:        uuid.New(),
			SaleID:    sale.ID,
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.SellingPrice,
			UnitCost:  product.UnitCost,
		}
		line.PriceLine()
		sale.Items = append(sale.Items, line)

		statusBefore := product.StockStatus()
		product.CurrentStock -= item.Quantity
		soldAt := now
		if err := productRepo.SetStock(ctx, product.ID, product.CurrentStock, &soldAt, nil); err != nil {
			return nil, errors.Wrap(err, "failed to decrement stock")
		}

		if alert := stockAlertOnTransition(product, statusBefore, now); alert != nil {
			alerts = append(alerts, alert)
		}
	}

	return alerts, nil
}

// stockAlertOnTransition builds an alert event when a product with alerts
// enabled drops from in-stock into low or out-of-stock.
func stockAlertOnTransition(product *entity.Product, statusBefore entity.StockStatus, now time.Time) *service.StockAlertEvent {
	statusAfter := product.StockStatus()
	if !product.StockAlerts || statusAfter == entity.StockStatusInStock || statusAfter == statusBefore {
		return nil
	}

	return &service.StockAlertEvent{
		ProductID:    product.ID.String(),
		ProductName:  product.Name,
		SKU:          product.SKU,
		Category:     product.Category.String(),
		CurrentStock: product.CurrentStock,
		MinLevel:     product.MinStockLevel,
		Status:       statusAfter.String(),
		OccurredAt:   now.UTC().Format(time.RFC3339),
	}
}

// publishStockAlerts emits alerts after a committed transaction. Publishing
// is best-effort; failures are logged and never affect the sale.
func (s *saleService) publishStockAlerts(ctx context.Context, alerts []*service.StockAlertEvent) {
	for _, alert := range alerts {
		if err := s.eventPublisher.PublishStockAlert(ctx, alert); err != nil {
			s.logger.WarnContext(ctx, "failed to publish stock alert",
				slog.String("product_id", alert.ProductID),
				slog.Any("error", err))
		}
	}
}

// GetSale retrieves a sale. Salespeople can only read their own sales.
func (s *saleService) GetSale(ctx context.Context, id uuid.UUID, actor *entity.User) (*entity.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, domainerrors.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale")
	}

	if !canAccessSale(actor, sale) {
		return nil, domainerrors.ErrForbidden.WithDetails("sales can only be viewed by their salesperson")
	}

	return sale, nil
}

// ListSales retrieves sales matching the filter plus the summary block.
// Salespeople are scoped to their own sales regardless of the filter.
func (s *saleService) ListSales(ctx context.Context, filter repository.SaleFilter, actor *entity.User) (*usecase.SaleListResult, error) {
	scopeSaleFilter(&filter, actor)

	sales, total, err := s.saleRepo.ListSales(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	summary, err := s.saleRepo.Summarize(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize sales")
	}

	return &usecase.SaleListResult{Sales: sales, Total: total, Summary: summary}, nil
}

// ReviseSale updates a pending sale. Item replacement restores the prior
// stock and customer totals and re-applies the new lines in one transaction.
func (s *saleService) ReviseSale(ctx context.Context, id uuid.UUID, input usecase.ReviseSaleInput, actor *entity.User) (*entity.Sale, error) {
	if input.Items != nil {
		if err := validateSaleItems(input.Items); err != nil {
			return nil, err
		}
	}
	if input.PaymentMethod != nil && !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown payment method %q", *input.PaymentMethod))
	}

	var revised *entity.Sale
	var alerts []*service.StockAlertEvent

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		productRepo := f.NewProductRepository()
		customerRepo := f.NewCustomerRepository()
		saleRepo := f.NewSaleRepository()

		sale, err := saleRepo.FindSaleByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSaleNotFound) {
				return domainerrors.ErrSaleNotFound
			}

			return errors.Wrap(err, "failed to find sale")
		}
		if !canAccessSale(actor, sale) {
			return domainerrors.ErrForbidden.WithDetails("sales can only be revised by their salesperson")
		}
		if sale.Status != entity.SaleStatusPending {
			return domainerrors.ErrInvalidStatusTransition.WithDetails("only pending sales can be revised")
		}

		var customer *entity.Customer
		if sale.CustomerID != nil {
			customer, err = customerRepo.FindCustomerByIDForUpdate(ctx, *sale.CustomerID)
			if err != nil {
				return errors.Wrap(err, "failed to lock customer")
			}
		}

		previousTotal := sale.TotalAmount
		now := time.Now()

		if input.Items != nil {
			if err := restoreSaleStock(ctx, productRepo, sale.Items, now); err != nil {
				return err
			}
			sale.Items = nil

			lineAlerts, err := applySaleItems(ctx, productRepo, sale, input.Items, now)
			if err != nil {
				return err
			}
			alerts = lineAlerts
		}

		if input.Discount != nil {
			sale.Discount = *input.Discount
		}
		if input.Tax != nil {
			sale.Tax = *input.Tax
		}
		if input.AmountPaid != nil {
			sale.AmountPaid = *input.AmountPaid
		}
		if input.PaymentMethod != nil {
			sale.PaymentMethod = *input.PaymentMethod
		}
		if input.Notes != nil {
			sale.Notes = *input.Notes
		}

		sale.RecomputeTotals()
		sale.DeriveStatus()

		if err := saleRepo.UpdateSale(ctx, sale); err != nil {
			return errors.Wrap(err, "failed to update sale")
		}

		if customer != nil {
			customer.ReversePurchase(previousTotal)
			customer.RecordPurchase(sale.TotalAmount, now)
			if err := customerRepo.UpdateCustomer(ctx, customer); err != nil {
				return errors.Wrap(err, "failed to update customer totals")
			}
		}

		revised = sale

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStockAlerts(ctx, alerts)

	return revised, nil
}

// restoreSaleStock returns each line's quantity to stock under row locks.
func restoreSaleStock(ctx context.Context, productRepo repository.ProductRepository, items []entity.SaleItem, now time.Time) error {
	for _, item := range items {
		product, err := productRepo.FindProductByIDForUpdate(ctx, item.ProductID)
		if err != nil {
			return errors.Wrapf(err, "failed to lock product %s for restock", item.ProductID)
		}

		restockedAt := now
		if err := productRepo.SetStock(ctx, product.ID, product.CurrentStock+item.Quantity, nil, &restockedAt); err != nil {
			return errors.Wrap(err, "failed to restore stock")
		}
	}

	return nil
}

// ChangeStatus moves a sale through its lifecycle. Transitions into
// cancelled or refunded restock each line best-effort; failures are
// reported without reverting the status.
func (s *saleService) ChangeStatus(ctx context.Context, id uuid.UUID, next entity.SaleStatus, actor *entity.User) (*usecase.StatusChangeResult, error) {
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown status %q", next))
	}

	sale, err := s.saleRepo.FindSaleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, domainerrors.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale")
	}
	if !canAccessSale(actor, sale) {
		return nil, domainerrors.ErrForbidden.WithDetails("sales can only be updated by their salesperson")
	}
	if !sale.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			fmt.Sprintf("cannot move sale from %s to %s", sale.Status, next))
	}
	// Completion follows payment; an outstanding balance is settled through
	// the revise path's amount paid, never by forcing the status.
	if next == entity.SaleStatusCompleted && sale.Balance.IsPositive() {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			fmt.Sprintf("sale has an outstanding balance of %s", sale.Balance))
	}

	if err := s.saleRepo.UpdateSaleStatus(ctx, sale.ID, next); err != nil {
		return nil, errors.Wrap(err, "failed to update sale status")
	}
	sale.Status = next

	result := &usecase.StatusChangeResult{Sale: sale}
	if next.RequiresRestock() {
		result.Failures = s.restockBestEffort(ctx, sale)
	}

	return result, nil
}

// restockBestEffort returns sold quantities to stock one line at a time.
// Each line runs in its own transaction so one failure never blocks the
// rest; failures are collected for the caller.
func (s *saleService) restockBestEffort(ctx context.Context, sale *entity.Sale) []usecase.RestockFailure {
	var failures []usecase.RestockFailure
	now := time.Now()

	for _, item := range sale.Items {
		err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			productRepo := f.NewProductRepository()

			product, err := productRepo.FindProductByIDForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}

			restockedAt := now

			return productRepo.SetStock(ctx, product.ID, product.CurrentStock+item.Quantity, nil, &restockedAt)
		})
		if err != nil {
			s.logger.WarnContext(ctx, "failed to restock sale item",
				slog.String("sale_id", sale.ID.String()),
				slog.String("product_id", item.ProductID.String()),
				slog.Int("quantity", item.Quantity),
				slog.Any("error", err))
			failures = append(failures, usecase.RestockFailure{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Reason:    err.Error(),
			})
		}
	}

	return failures
}

// GetDailySummary aggregates the given day's sales.
func (s *saleService) GetDailySummary(ctx context.Context, day time.Time) (*usecase.DailySummary, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	summary, err := s.saleRepo.Summarize(ctx, repository.SaleFilter{From: &start, To: &end})
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize daily sales")
	}

	return &usecase.DailySummary{
		Date:         start,
		Count:        summary.Count,
		Revenue:      summary.Revenue,
		Profit:       summary.Profit,
		AverageValue: summary.AverageValue,
	}, nil
}

// validateSaleItems rejects empty carts and non-positive quantities.
func validateSaleItems(items []usecase.SaleItemInput) error {
	if len(items) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("a sale requires at least one item")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails("item quantities must be positive")
		}
	}

	return nil
}

// canAccessSale restricts salespeople to their own sales. Managers and
// owners see everything.
func canAccessSale(actor *entity.User, sale *entity.Sale) bool {
	if actor == nil {
		return false
	}
	if actor.Role != entity.RoleSalesperson {
		return true
	}

	return sale.SoldBy == actor.ID
}

// scopeSaleFilter forces the salesperson restriction onto list queries.
func scopeSaleFilter(filter *repository.SaleFilter, actor *entity.User) {
	if actor != nil && actor.Role == entity.RoleSalesperson {
		soldBy := actor.ID
		filter.SoldBy = &soldBy
	}
}
