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
	"gorm.io/gorm/clause"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// CreateCustomer persists a new customer.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	// Update the entity with generated values
	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindCustomerByID retrieves a customer by its unique ID.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindCustomerByIDForUpdate retrieves a customer under a FOR UPDATE row lock
// so purchase totals stay consistent inside the sale transaction.
func (repo *customerRepository) FindCustomerByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}
		if isSerializationFailure(err) {
			return nil, domainerrors.ErrConcurrentStockConflict
		}

		return nil, errors.Wrap(err, "failed to lock customer row")
	}

	return toCustomerDomain(&customerM), nil
}

// ListCustomers retrieves customers matching the filter along with the total count.
func (repo *customerRepository) ListCustomers(ctx context.Context, filter repository.CustomerFilter) ([]*entity.Customer, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CustomerModel{})

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customers")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var customerModels []*model.CustomerModel
	if err := query.Order("created_at DESC").Find(&customerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, total, nil
}

// UpdateCustomer persists changes to an existing customer.
func (repo *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(customerM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// DeactivateCustomer soft-deletes a customer.
func (repo *customerRepository) DeactivateCustomer(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// TopCustomersBySpending retrieves the highest-spending active customers.
func (repo *customerRepository) TopCustomersBySpending(ctx context.Context, limit int) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("total_spent DESC").
		Limit(limit).
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list top customers by spending")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		Type:          entity.CustomerType(data.Type),
		Address:       toAddressDomain(data.Address),
		CreditLimit:   data.CreditLimit,
		CurrentCredit: data.CurrentCredit,
		TotalSpent:    data.TotalSpent,
		PurchaseCount: data.PurchaseCount,
		LastPurchase:  data.LastPurchaseAt,
		Notes:         data.Notes,
		CreatedBy:     data.CreatedBy,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		Type:           data.Type.String(),
		Address:        fromAddressDomain(data.Address),
		CreditLimit:    data.CreditLimit,
		CurrentCredit:  data.CurrentCredit,
		TotalSpent:     data.TotalSpent,
		PurchaseCount:  data.PurchaseCount,
		LastPurchaseAt: data.LastPurchase,
		Notes:          data.Notes,
		CreatedBy:      data.CreatedBy,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// toAddressDomain converts embedded address columns to the domain block.
func toAddressDomain(data model.AddressColumns) entity.Address {
	return entity.Address{
		Street:  data.Street,
		City:    data.City,
		State:   data.State,
		ZipCode: data.ZipCode,
		Country: data.Country,
	}
}

// fromAddressDomain converts a domain address block to embedded columns.
func fromAddressDomain(data entity.Address) model.AddressColumns {
	return model.AddressColumns{
		Street:  data.Street,
		City:    data.City,
		State:   data.State,
		ZipCode: data.ZipCode,
		Country: data.Country,
	}
}
