package impl

import (
	"context"
	"testing"

	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	mockRepo "foamstock/internal/mocks/repository"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
	saleRepo     *mockRepo.MockSaleRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	saleRepo := mockRepo.NewMockSaleRepository(t)

	service := NewCustomerService(CustomerServiceParams{
		CustomerRepo: customerRepo,
		SaleRepo:     saleRepo,
	})

	return customerServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
	}
}

func TestCustomerService_CreateCustomer_DefaultsToRegular(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	fx.customerRepo.EXPECT().
		CreateCustomer(ctx, mock.MatchedBy(func(customer *entity.Customer) bool {
			return customer.Type == entity.CustomerTypeRegular && customer.IsActive
		})).
		Return(nil)

	customer, err := fx.service.CreateCustomer(ctx, usecase.CreateCustomerInput{
		Name:      "Walk-in",
		CreatedBy: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerTypeRegular, customer.Type)
	assert.True(t, customer.IsActive)
}

func TestCustomerService_CreateCustomer_NegativeCreditLimit(t *testing.T) {
	fx := createTestCustomerService(t)

	_, err := fx.service.CreateCustomer(context.Background(), usecase.CreateCustomerInput{
		Name:        "Bad Credit",
		CreditLimit: decimal.NewFromInt(-100),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCustomerService_UpdateCustomer_UnknownType(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	customer := &entity.Customer{
		ID:       uuid.New(),
		Name:     "Acme Hotels",
		Type:     entity.CustomerTypeCorporate,
		IsActive: true,
	}

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)

	badType := entity.CustomerType("franchise")
	_, err := fx.service.UpdateCustomer(ctx, customer.ID, usecase.UpdateCustomerInput{Type: &badType})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, id).Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.GetCustomer(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_PurchaseHistory(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), Name: "Acme Hotels", IsActive: true}
	sales := []*entity.Sale{{ID: uuid.New(), CustomerID: &customer.ID}}

	fx.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	fx.saleRepo.EXPECT().
		ListSales(ctx, repository.SaleFilter{CustomerID: &customer.ID, Limit: 20}).
		Return(sales, int64(1), nil)

	result, total, err := fx.service.PurchaseHistory(ctx, customer.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, result, 1)
}

func TestCustomerService_TopCustomers_DefaultLimit(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	fx.customerRepo.EXPECT().
		TopCustomersBySpending(ctx, defaultTopCustomerLimit).
		Return([]*entity.Customer{}, nil)

	_, err := fx.service.TopCustomers(ctx, 0)
	require.NoError(t, err)
}
