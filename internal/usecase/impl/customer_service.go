package impl

import (
	"context"
	"fmt"

	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTopCustomerLimit = 10

type customerService struct {
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	SaleRepo     repository.SaleRepository
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		saleRepo:     params.SaleRepo,
	}
}

// ListCustomers retrieves customers matching the filter.
func (s *customerService) ListCustomers(ctx context.Context, filter repository.CustomerFilter) ([]*entity.Customer, int64, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, 0, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown customer type %q", filter.Type))
	}

	customers, total, err := s.customerRepo.ListCustomers(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list customers")
	}

	return customers, total, nil
}

// GetCustomer retrieves a single customer.
func (s *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

// CreateCustomer persists a new customer.
func (s *customerService) CreateCustomer(ctx context.Context, input usecase.CreateCustomerInput) (*entity.Customer, error) {
	customerType := input.Type
	if customerType == "" {
		customerType = entity.CustomerTypeRegular
	}
	if !customerType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown customer type %q", customerType))
	}
	if input.CreditLimit.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("credit limit must not be negative")
	}

	customer := &entity.Customer{
		ID:          uuid.New(),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Type:        customerType,
		Address:     input.Address,
		CreditLimit: input.CreditLimit,
		Notes:       input.Notes,
		CreatedBy:   input.CreatedBy,
		IsActive:    true,
	}

	if err := s.customerRepo.CreateCustomer(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	return customer, nil
}

// UpdateCustomer applies the provided changes.
func (s *customerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input usecase.UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("unknown customer type %q", *input.Type))
		}
		customer.Type = *input.Type
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.CreditLimit != nil {
		if input.CreditLimit.IsNegative() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("credit limit must not be negative")
		}
		customer.CreditLimit = *input.CreditLimit
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	if err := s.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}

	return customer, nil
}

// DeleteCustomer soft-deletes a customer.
func (s *customerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if err := s.customerRepo.DeactivateCustomer(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to deactivate customer")
	}

	return nil
}

// PurchaseHistory retrieves a customer's sales, newest first.
func (s *customerService) PurchaseHistory(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Sale, int64, error) {
	if _, err := s.GetCustomer(ctx, customerID); err != nil {
		return nil, 0, err
	}

	sales, total, err := s.saleRepo.ListSales(ctx, repository.SaleFilter{
		CustomerID: &customerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list purchases")
	}

	return sales, total, nil
}

// TopCustomers retrieves the highest-spending customers.
func (s *customerService) TopCustomers(ctx context.Context, limit int) ([]*entity.Customer, error) {
	if limit <= 0 {
		limit = defaultTopCustomerLimit
	}

	customers, err := s.customerRepo.TopCustomersBySpending(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top customers")
	}

	return customers, nil
}
