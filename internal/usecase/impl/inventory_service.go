package impl

import (
	"context"
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

type inventoryService struct {
	txManager      repository.TransactionManager
	productRepo    repository.ProductRepository
	adjustmentRepo repository.StockAdjustmentRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ProductRepo    repository.ProductRepository
	AdjustmentRepo repository.StockAdjustmentRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		txManager:      params.TxManager,
		productRepo:    params.ProductRepo,
		adjustmentRepo: params.AdjustmentRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// ListInventory retrieves products with derived stock status.
func (s *inventoryService) ListInventory(ctx context.Context, filter repository.ProductFilter) ([]*usecase.InventoryItem, int64, error) {
	products, total, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toInventoryItems(products), total, nil
}

// GetStock retrieves one product's stock read model.
func (s *inventoryService) GetStock(ctx context.Context, productID uuid.UUID) (*usecase.InventoryItem, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return &usecase.InventoryItem{Product: product, Stock: product.StockInfo()}, nil
}

// SetStock writes an absolute stock level, recording the computed delta as
// an audit entry.
func (s *inventoryService) SetStock(ctx context.Context, productID uuid.UUID, newStock int, input usecase.StockWriteInput) (*usecase.InventoryItem, error) {
	if newStock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock level must not be negative")
	}

	return s.writeStock(ctx, productID, input, func(current int) int {
		return newStock
	})
}

// AdjustStock applies a relative delta, clamped at zero, and appends an
// audit entry.
func (s *inventoryService) AdjustStock(ctx context.Context, productID uuid.UUID, delta int, input usecase.StockWriteInput) (*usecase.InventoryItem, error) {
	if delta == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("adjustment delta must not be zero")
	}

	return s.writeStock(ctx, productID, input, func(current int) int {
		return entity.ApplyAdjustment(current, delta)
	})
}

// writeStock applies a stock mutation under a row lock, appends the audit
// record and publishes an alert when the product crosses into low or
// out-of-stock.
func (s *inventoryService) writeStock(ctx context.Context, productID uuid.UUID, input usecase.StockWriteInput, next func(current int) int) (*usecase.InventoryItem, error) {
	if input.Reason == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a reason is required for stock changes")
	}

	var item *usecase.InventoryItem
	var alert *service.StockAlertEvent

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		productRepo := f.NewProductRepository()
		adjustmentRepo := f.NewStockAdjustmentRepository()

		product, err := productRepo.FindProductByIDForUpdate(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to lock product")
		}

		now := time.Now()
		statusBefore := product.StockStatus()
		stockBefore := product.CurrentStock
		stockAfter := next(stockBefore)

		var restockedAt *time.Time
		if stockAfter > stockBefore {
			restockedAt = &now
		}
		if err := productRepo.SetStock(ctx, product.ID, stockAfter, nil, restockedAt); err != nil {
			return errors.Wrap(err, "failed to write stock")
		}
		product.CurrentStock = stockAfter

		adjustment := &entity.StockAdjustment{
			ID:          uuid.New(),
			ProductID:   product.ID,
			Delta:       stockAfter - stockBefore,
			Reason:      input.Reason,
			AdjustedBy:  input.AdjustedBy,
			StockBefore: stockBefore,
			StockAfter:  stockAfter,
			CreatedAt:   now,
		}
		if err := adjustmentRepo.CreateAdjustment(ctx, adjustment); err != nil {
			return errors.Wrap(err, "failed to record stock adjustment")
		}

		alert = stockAlertOnTransition(product, statusBefore, now)
		item = &usecase.InventoryItem{Product: product, Stock: product.StockInfo()}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if alert != nil {
		if err := s.eventPublisher.PublishStockAlert(ctx, alert); err != nil {
			s.logger.WarnContext(ctx, "failed to publish stock alert",
				slog.String("product_id", alert.ProductID),
				slog.Any("error", err))
		}
	}

	return item, nil
}

// ListAdjustments retrieves a product's audit trail, newest first.
func (s *inventoryService) ListAdjustments(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entity.StockAdjustment, error) {
	adjustments, err := s.adjustmentRepo.ListAdjustmentsByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock adjustments")
	}

	return adjustments, nil
}

// LowStockAlerts retrieves active products at or below their minimum stock
// level.
func (s *inventoryService) LowStockAlerts(ctx context.Context) ([]*usecase.InventoryItem, error) {
	products, err := s.productRepo.FindLowStockProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find low stock products")
	}

	return toInventoryItems(products), nil
}

func toInventoryItems(products []*entity.Product) []*usecase.InventoryItem {
	items := make([]*usecase.InventoryItem, 0, len(products))
	for _, product := range products {
		items = append(items, &usecase.InventoryItem{Product: product, Stock: product.StockInfo()})
	}

	return items
}
