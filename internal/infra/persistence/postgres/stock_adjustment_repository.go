package postgres

import (
	"context"

	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	"foamstock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// stockAdjustmentRepository implements the repository.StockAdjustmentRepository interface.
type stockAdjustmentRepository struct {
	db *gorm.DB
}

// NewStockAdjustmentRepository is the constructor for stockAdjustmentRepository.
func NewStockAdjustmentRepository(db *gorm.DB) repository.StockAdjustmentRepository {
	return &stockAdjustmentRepository{
		db: db,
	}
}

// CreateAdjustment appends an audit record.
func (repo *stockAdjustmentRepository) CreateAdjustment(ctx context.Context, adjustment *entity.StockAdjustment) error {
	adjustmentM := fromStockAdjustmentDomain(adjustment)

	if err := repo.db.WithContext(ctx).Create(adjustmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record stock adjustment")
	}

	// Update the entity with generated values
	adjustment.ID = adjustmentM.ID
	adjustment.CreatedAt = adjustmentM.CreatedAt

	return nil
}

// ListAdjustmentsByProduct retrieves the audit trail for a product, newest first.
func (repo *stockAdjustmentRepository) ListAdjustmentsByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entity.StockAdjustment, error) {
	query := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var adjustmentModels []*model.StockAdjustmentModel
	if err := query.Find(&adjustmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stock adjustments")
	}

	adjustments := make([]*entity.StockAdjustment, 0, len(adjustmentModels))
	for _, adjustmentM := range adjustmentModels {
		adjustments = append(adjustments, toStockAdjustmentDomain(adjustmentM))
	}

	return adjustments, nil
}

// --- Mapper Functions ---

// toStockAdjustmentDomain converts a GORM StockAdjustmentModel to a domain StockAdjustment.
func toStockAdjustmentDomain(data *model.StockAdjustmentModel) *entity.StockAdjustment {
	if data == nil {
		return nil
	}

	return &entity.StockAdjustment{
		ID:          data.ID,
		ProductID:   data.ProductID,
		Delta:       data.Delta,
		Reason:      data.Reason,
		AdjustedBy:  data.AdjustedBy,
		StockBefore: data.StockBefore,
		StockAfter:  data.StockAfter,
		CreatedAt:   data.CreatedAt,
	}
}

// fromStockAdjustmentDomain converts a domain StockAdjustment to a GORM StockAdjustmentModel.
func fromStockAdjustmentDomain(data *entity.StockAdjustment) *model.StockAdjustmentModel {
	if data == nil {
		return nil
	}

	return &model.StockAdjustmentModel{
		ID:          data.ID,
		ProductID:   data.ProductID,
		Delta:       data.Delta,
		Reason:      data.Reason,
		AdjustedBy:  data.AdjustedBy,
		StockBefore: data.StockBefore,
		StockAfter:  data.StockAfter,
		CreatedAt:   data.CreatedAt,
	}
}
