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

// supplierRepository implements the repository.SupplierRepository interface.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository is the constructor for supplierRepository.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{
		db: db,
	}
}

// CreateSupplier persists a new supplier.
func (repo *supplierRepository) CreateSupplier(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.db.WithContext(ctx).Create(supplierM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required supplier information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier")
	}

	// Update the entity with generated values
	supplier.ID = supplierM.ID
	supplier.CreatedAt = supplierM.CreatedAt
	supplier.UpdatedAt = supplierM.UpdatedAt

	return nil
}

// FindSupplierByID retrieves a supplier by its unique ID.
func (repo *supplierRepository) FindSupplierByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierM model.SupplierModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&supplierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier by ID")
	}

	return toSupplierDomain(&supplierM), nil
}

// ListSuppliers retrieves suppliers matching the filter along with the total count.
func (repo *supplierRepository) ListSuppliers(ctx context.Context, filter repository.SupplierFilter) ([]*entity.Supplier, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.SupplierModel{})

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR company ILIKE ? OR contact_person ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count suppliers")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var supplierModels []*model.SupplierModel
	if err := query.Order("created_at DESC").Find(&supplierModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list suppliers")
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for _, supplierM := range supplierModels {
		suppliers = append(suppliers, toSupplierDomain(supplierM))
	}

	return suppliers, total, nil
}

// UpdateSupplier persists changes to an existing supplier.
func (repo *supplierRepository) UpdateSupplier(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	result := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ?", supplier.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(supplierM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update supplier")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

// AppendSuppliedProduct adds a product to the supplier's supplied list,
// ignoring duplicates. The read-modify-write runs on the repository's own
// connection; catalog writes are low-frequency enough that this is safe.
func (repo *supplierRepository) AppendSuppliedProduct(ctx context.Context, supplierID, productID uuid.UUID) error {
	supplier, err := repo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return err
	}

	before := len(supplier.ProductsSupplied)
	supplier.RecordSuppliedProduct(productID)
	if len(supplier.ProductsSupplied) == before {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ?", supplierID).
		Update("products_supplied", uuidsToStrings(supplier.ProductsSupplied))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to append supplied product")
	}

	return nil
}

// DeactivateSupplier soft-deletes a supplier.
func (repo *supplierRepository) DeactivateSupplier(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate supplier")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSupplierDomain converts a GORM SupplierModel to a domain Supplier entity.
func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	if data == nil {
		return nil
	}

	return &entity.Supplier{
		ID:               data.ID,
		Name:             data.Name,
		Company:          data.Company,
		ContactPerson:    data.ContactPerson,
		Email:            data.Email,
		Phone:            data.Phone,
		Address:          toAddressDomain(data.Address),
		PaymentTerms:     entity.PaymentTerms(data.PaymentTerms),
		Rating:           data.Rating,
		TotalOrders:      data.TotalOrders,
		TotalSpent:       data.TotalSpent,
		LastOrderDate:    data.LastOrderDate,
		ProductsSupplied: stringsToUUIDs(data.ProductsSupplied),
		Notes:            data.Notes,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromSupplierDomain converts a domain Supplier entity to a GORM SupplierModel.
func fromSupplierDomain(data *entity.Supplier) *model.SupplierModel {
	if data == nil {
		return nil
	}

	return &model.SupplierModel{
		ID:               data.ID,
		Name:             data.Name,
		Company:          data.Company,
		ContactPerson:    data.ContactPerson,
		Email:            data.Email,
		Phone:            data.Phone,
		Address:          fromAddressDomain(data.Address),
		PaymentTerms:     data.PaymentTerms.String(),
		Rating:           data.Rating,
		TotalOrders:      data.TotalOrders,
		TotalSpent:       data.TotalSpent,
		LastOrderDate:    data.LastOrderDate,
		ProductsSupplied: uuidsToStrings(data.ProductsSupplied),
		Notes:            data.Notes,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func uuidsToStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

func stringsToUUIDs(raw []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		out = append(out, id)
	}

	return out
}
