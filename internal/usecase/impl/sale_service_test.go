package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	"foamstock/internal/domain/service"
	mockRepo "foamstock/internal/mocks/repository"
	mockService "foamstock/internal/mocks/service"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// saleServiceFixtures holds all test dependencies for sale service tests.
type saleServiceFixtures struct {
	service      usecase.SaleUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	productRepo  *mockRepo.MockProductRepository
	customerRepo *mockRepo.MockCustomerRepository
	saleRepo     *mockRepo.MockSaleRepository
	publisher    *mockService.MockEventPublisher
}

func createTestSaleService(t *testing.T) saleServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	saleRepo := mockRepo.NewMockSaleRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSaleService(SaleServiceParams{
		TxManager:      txManager,
		SaleRepo:       saleRepo,
		EventPublisher: publisher,
		Logger:         logger,
	})

	return saleServiceFixtures{
		service:      service,
		txManager:    txManager,
		factory:      factory,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		publisher:    publisher,
	}
}

// expectTransaction wires the transaction manager to run the closure against
// the mocked repository factory.
func (f saleServiceFixtures) expectTransaction() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func testProduct(stock, minLevel int, price, cost string) *entity.Product {
	return &entity.Product{
		ID:            uuid.New(),
		Name:          "Classic Mattress 6in",
		Category:      entity.CategoryMattress,
		SKU:           "MAT-TEST01-0001",
		UnitCost:      dec(cost),
		SellingPrice:  dec(price),
		CurrentStock:  stock,
		MinStockLevel: minLevel,
		StockAlerts:   true,
		IsActive:      true,
	}
}

func testCustomer() *entity.Customer {
	return &entity.Customer{
		ID:       uuid.New(),
		Name:     "Ada Buyer",
		Type:     entity.CustomerTypeRegular,
		IsActive: true,
	}
}

func testOwner() *entity.User {
	return &entity.User{
		ID:          uuid.New(),
		Role:        entity.RoleBusinessOwner,
		Permissions: entity.DefaultPermissions(entity.RoleBusinessOwner),
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestSaleService_CreateSale_Success(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	customer := testCustomer()
	product := testProduct(10, 2, "150.00", "100.00")
	soldBy := uuid.New()

	fx.expectTransaction()
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.factory.EXPECT().NewSaleRepository().Return(fx.saleRepo)

	fx.customerRepo.EXPECT().
		FindCustomerByIDForUpdate(ctx, customer.ID).
		Return(customer, nil)

	fx.productRepo.EXPECT().
		FindProductByIDForUpdate(ctx, product.ID).
		Return(product, nil)

	fx.productRepo.EXPECT().
		SetStock(ctx, product.ID, 8, mock.Anything, mock.Anything).
		Return(nil)

	var created *entity.Sale
	fx.saleRepo.EXPECT().
		CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
		Run(func(_ context.Context, sale *entity.Sale) {
			created = sale
		}).
		Return(nil)

	fx.customerRepo.EXPECT().
		UpdateCustomer(ctx, customer).
		Return(nil)

	sale, err := fx.service.CreateSale(ctx, usecase.CreateSaleInput{
		CustomerID:    &customer.ID,
		Items:         []usecase.SaleItemInput{{ProductID: product.ID, Quantity: 2}},
		AmountPaid:    dec("300.00"),
		PaymentMethod: entity.PaymentMethodCash,
		SoldBy:        soldBy,
	})
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Same(t, created, sale)

	// Prices are captured from the product, not the request.
	require.Len(t, sale.Items, 1)
	assert.True(t, sale.Items[0].UnitPrice.Equal(dec("150.00")))
	assert.True(t, sale.Items[0].UnitCost.Equal(dec("100.00")))
	assert.True(t, sale.Subtotal.Equal(dec("300.00")))
	assert.True(t, sale.TotalProfit.Equal(dec("100.00")))
	assert.True(t, sale.Balance.IsZero())
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)
	assert.Regexp(t, `^SALE-\d{8}-[0-9A-Z]{4}$`, sale.SaleNumber)

	// Customer totals fold in the sale.
	assert.True(t, customer.TotalSpent.Equal(dec("300.00")))
	assert.Equal(t, 1, customer.PurchaseCount)
}

func TestSaleService_CreateSale_PartialPaymentStaysPending(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	customer := testCustomer()
	product := testProduct(10, 2, "100.00", "60.00")

	fx.expectTransaction()
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.factory.EXPECT().NewSaleRepository().Return(fx.saleRepo)

	fx.customerRepo.EXPECT().FindCustomerByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().SetStock(ctx, product.ID, 9, mock.Anything, mock.Anything).Return(nil)
	fx.saleRepo.EXPECT().CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)
	fx.customerRepo.EXPECT().UpdateCustomer(ctx, customer).Return(nil)

	sale, err := fx.service.CreateSale(ctx, usecase.CreateSaleInput{
		CustomerID:    &customer.ID,
		Items:         []usecase.SaleItemInput{{ProductID: product.ID, Quantity: 1}},
		AmountPaid:    dec("40.00"),
		PaymentMethod: entity.PaymentMethodTransfer,
		SoldBy:        uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusPending, sale.Status)
	assert.True(t, sale.Balance.Equal(dec("60.00")))
}

func TestSaleService_CreateSale_WalkInWithoutCustomer(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	product := testProduct(10, 2, "50.00", "30.00")

	fx.expectTransaction()
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.factory.EXPECT().NewSaleRepository().Return(fx.saleRepo)

	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().SetStock(ctx, product.ID, 9, mock.Anything, mock.Anything).Return(nil)
	fx.saleRepo.EXPECT().CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)

	// No customer lookup or totals update happens for a walk-in sale.
	sale, err := fx.service.CreateSale(ctx, usecase.CreateSaleInput{
		Items:         []usecase.SaleItemInput{{ProductID: product.ID, Quantity: 1}},
		AmountPaid:    dec("50.00"),
		PaymentMethod: entity.PaymentMethodCash,
		SoldBy:        uuid.New(),
	})
	require.NoError(t, err)
	assert.Nil(t, sale.CustomerID)
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)
}

func TestSaleService_CreateSale_InsufficientStock(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	customer := testCustomer()
	product := testProduct(1, 2, "100.00", "60.00")

	fx.expectTransaction()
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.factory.EXPECT().NewSaleRepository().Return(fx.saleRepo)

	fx.customerRepo.EXPECT().FindCustomerByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, product.ID).Return(product, nil)

	_, err := fx.service.CreateSale(ctx, usecase.CreateSaleInput{
		CustomerID:    &customer.ID,
		Items:         []usecase.SaleItemInput{{ProductID: product.ID, Quantity: 5}},
		PaymentMethod: entity.PaymentMethodCash,
		SoldBy:        uuid.New(),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
}

func TestSaleService_CreateSale_RetriesOnDuplicateSaleNumber(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	customer := testCustomer()
	product := testProduct(10, 2, "100.00", "60.00")

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Times(2)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.factory.EXPECT().NewSaleRepository().Return(fx.saleRepo)

	fx.customerRepo.EXPECT().FindCustomerByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().SetStock(ctx, product.ID, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	fx.saleRepo.EXPECT().
		CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
		Return(repository.ErrDuplicateSaleNumber).
		Once()
	fx.saleRepo.EXPECT().
		CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
		Return(nil).
		Once()

	fx.customerRepo.EXPECT().UpdateCustomer(ctx, customer).Return(nil)

	sale, err := fx.service.CreateSale(ctx, usecase.CreateSaleInput{
		CustomerID:    &customer.ID,
		Items:         []usecase.SaleItemInput{{ProductID: product.ID, Quantity: 1}},
		AmountPaid:    dec("100.00"),
		PaymentMethod: entity.PaymentMethodCard,
		SoldBy:        uuid.New(),
	})
	require.NoError(t, err)
	assert.NotNil(t, sale)
}

func TestSaleService_CreateSale_PublishesLowStockAlert(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	customer := testCustomer()
	product := testProduct(6, 5, "100.00", "60.00")

	fx.expectTransaction()
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.factory.EXPECT().NewSaleRepository().Return(fx.saleRepo)

	fx.customerRepo.EXPECT().FindCustomerByIDForUpdate(ctx, customer.ID).Return(customer, nil)
	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().SetStock(ctx, product.ID, 4, mock.Anything, mock.Anything).Return(nil)
	fx.saleRepo.EXPECT().CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).Return(nil)
	fx.customerRepo.EXPECT().UpdateCustomer(ctx, customer).Return(nil)

	fx.publisher.EXPECT().
		PublishStockAlert(ctx, mock.MatchedBy(func(event *service.StockAlertEvent) bool {
			return event.ProductID == product.ID.String() &&
				event.CurrentStock == 4 &&
				event.Status == entity.StockStatusLowStock.String()
		})).
		Return(nil)

	_, err := fx.service.CreateSale(ctx, usecase.CreateSaleInput{
		CustomerID:    &customer.ID,
		Items:         []usecase.SaleItemInput{{ProductID: product.ID, Quantity: 2}},
		AmountPaid:    dec("200.00"),
		PaymentMethod: entity.PaymentMethodCash,
		SoldBy:        uuid.New(),
	})
	require.NoError(t, err)
}

func TestSaleService_CreateSale_RejectsEmptyCart(t *testing.T) {
	fx := createTestSaleService(t)

	_, err := fx.service.CreateSale(context.Background(), usecase.CreateSaleInput{
		PaymentMethod: entity.PaymentMethodCash,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSaleService_ChangeStatus_CompletePendingSale(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	sale := &entity.Sale{
		ID:     uuid.New(),
		Status: entity.SaleStatusPending,
		SoldBy: uuid.New(),
	}

	fx.saleRepo.EXPECT().FindSaleByID(ctx, sale.ID).Return(sale, nil)
	fx.saleRepo.EXPECT().UpdateSaleStatus(ctx, sale.ID, entity.SaleStatusCompleted).Return(nil)

	result, err := fx.service.ChangeStatus(ctx, sale.ID, entity.SaleStatusCompleted, testOwner())
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, result.Sale.Status)
	assert.Empty(t, result.Failures)
}

func TestSaleService_ChangeStatus_RejectsCompletionWithOutstandingBalance(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	sale := &entity.Sale{
		ID:      uuid.New(),
		Status:  entity.SaleStatusPending,
		Balance: dec("60.00"),
		SoldBy:  uuid.New(),
	}

	fx.saleRepo.EXPECT().FindSaleByID(ctx, sale.ID).Return(sale, nil)

	_, err := fx.service.ChangeStatus(ctx, sale.ID, entity.SaleStatusCompleted, testOwner())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestSaleService_ChangeStatus_RefundsPendingSale(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	product := testProduct(3, 2, "100.00", "60.00")
	sale := &entity.Sale{
		ID:     uuid.New(),
		Status: entity.SaleStatusPending,
		SoldBy: uuid.New(),
		Items: []entity.SaleItem{
			{ProductID: product.ID, Quantity: 1},
		},
	}

	fx.saleRepo.EXPECT().FindSaleByID(ctx, sale.ID).Return(sale, nil)
	fx.saleRepo.EXPECT().UpdateSaleStatus(ctx, sale.ID, entity.SaleStatusRefunded).Return(nil)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().SetStock(ctx, product.ID, 4, mock.Anything, mock.Anything).Return(nil)

	result, err := fx.service.ChangeStatus(ctx, sale.ID, entity.SaleStatusRefunded, testOwner())
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusRefunded, result.Sale.Status)
	assert.Empty(t, result.Failures)
}

func TestSaleService_ChangeStatus_RefundRestocksItems(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	product := testProduct(3, 2, "100.00", "60.00")
	sale := &entity.Sale{
		ID:     uuid.New(),
		Status: entity.SaleStatusCompleted,
		SoldBy: uuid.New(),
		Items: []entity.SaleItem{
			{ProductID: product.ID, Quantity: 2},
		},
	}

	fx.saleRepo.EXPECT().FindSaleByID(ctx, sale.ID).Return(sale, nil)
	fx.saleRepo.EXPECT().UpdateSaleStatus(ctx, sale.ID, entity.SaleStatusRefunded).Return(nil)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().SetStock(ctx, product.ID, 5, mock.Anything, mock.Anything).Return(nil)

	result, err := fx.service.ChangeStatus(ctx, sale.ID, entity.SaleStatusRefunded, testOwner())
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusRefunded, result.Sale.Status)
	assert.Empty(t, result.Failures)
}

func TestSaleService_ChangeStatus_ReportsRestockFailures(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	missing := uuid.New()
	sale := &entity.Sale{
		ID:     uuid.New(),
		Status: entity.SaleStatusPending,
		SoldBy: uuid.New(),
		Items: []entity.SaleItem{
			{ProductID: missing, Quantity: 1},
		},
	}

	fx.saleRepo.EXPECT().FindSaleByID(ctx, sale.ID).Return(sale, nil)
	fx.saleRepo.EXPECT().UpdateSaleStatus(ctx, sale.ID, entity.SaleStatusCancelled).Return(nil)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.productRepo.EXPECT().
		FindProductByIDForUpdate(ctx, missing).
		Return(nil, repository.ErrProductNotFound)

	result, err := fx.service.ChangeStatus(ctx, sale.ID, entity.SaleStatusCancelled, testOwner())
	require.NoError(t, err)

	// The status change sticks even though restocking failed.
	assert.Equal(t, entity.SaleStatusCancelled, result.Sale.Status)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, missing, result.Failures[0].ProductID)
}

func TestSaleService_ChangeStatus_RejectsInvalidTransition(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	sale := &entity.Sale{
		ID:     uuid.New(),
		Status: entity.SaleStatusCancelled,
		SoldBy: uuid.New(),
	}

	fx.saleRepo.EXPECT().FindSaleByID(ctx, sale.ID).Return(sale, nil)

	_, err := fx.service.ChangeStatus(ctx, sale.ID, entity.SaleStatusCompleted, testOwner())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestSaleService_GetSale_SalespersonScopedToOwnSales(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	salesperson := &entity.User{
		ID:          uuid.New(),
		Role:        entity.RoleSalesperson,
		Permissions: entity.DefaultPermissions(entity.RoleSalesperson),
	}
	sale := &entity.Sale{
		ID:     uuid.New(),
		Status: entity.SaleStatusCompleted,
		SoldBy: uuid.New(), // someone else's sale
	}

	fx.saleRepo.EXPECT().FindSaleByID(ctx, sale.ID).Return(sale, nil)

	_, err := fx.service.GetSale(ctx, sale.ID, salesperson)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestSaleService_ListSales_SalespersonFilterForced(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	salesperson := &entity.User{
		ID:          uuid.New(),
		Role:        entity.RoleSalesperson,
		Permissions: entity.DefaultPermissions(entity.RoleSalesperson),
	}

	matchScoped := mock.MatchedBy(func(filter repository.SaleFilter) bool {
		return filter.SoldBy != nil && *filter.SoldBy == salesperson.ID
	})
	fx.saleRepo.EXPECT().ListSales(ctx, matchScoped).Return([]*entity.Sale{}, int64(0), nil)
	fx.saleRepo.EXPECT().Summarize(ctx, matchScoped).Return(&repository.SaleSummary{}, nil)

	result, err := fx.service.ListSales(ctx, repository.SaleFilter{}, salesperson)
	require.NoError(t, err)
	assert.NotNil(t, result.Summary)
}

func TestSaleService_ReviseSale_ReplacesItems(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	customer := testCustomer()
	customer.TotalSpent = dec("100.00")
	customer.PurchaseCount = 1

	oldProduct := testProduct(0, 2, "100.00", "60.00")
	newProduct := testProduct(10, 2, "80.00", "50.00")

	sale := &entity.Sale{
		ID:          uuid.New(),
		CustomerID:  &customer.ID,
		Status:      entity.SaleStatusPending,
		SoldBy:      uuid.New(),
		AmountPaid:  dec("0"),
		TotalAmount: dec("100.00"),
		Items: []entity.SaleItem{
			{ProductID: oldProduct.ID, Quantity: 1, UnitPrice: dec("100.00"), UnitCost: dec("60.00")},
		},
	}

	fx.expectTransaction()
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.factory.EXPECT().NewSaleRepository().Return(fx.saleRepo)

	fx.saleRepo.EXPECT().FindSaleByID(ctx, sale.ID).Return(sale, nil)
	fx.customerRepo.EXPECT().FindCustomerByIDForUpdate(ctx, customer.ID).Return(customer, nil)

	// Old line restored first.
	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, oldProduct.ID).Return(oldProduct, nil)
	fx.productRepo.EXPECT().SetStock(ctx, oldProduct.ID, 1, mock.Anything, mock.Anything).Return(nil)

	// New line applied afterwards.
	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, newProduct.ID).Return(newProduct, nil)
	fx.productRepo.EXPECT().SetStock(ctx, newProduct.ID, 8, mock.Anything, mock.Anything).Return(nil)

	fx.saleRepo.EXPECT().UpdateSale(ctx, sale).Return(nil)
	fx.customerRepo.EXPECT().UpdateCustomer(ctx, customer).Return(nil)

	revised, err := fx.service.ReviseSale(ctx, sale.ID, usecase.ReviseSaleInput{
		Items: []usecase.SaleItemInput{{ProductID: newProduct.ID, Quantity: 2}},
	}, testOwner())
	require.NoError(t, err)

	require.Len(t, revised.Items, 1)
	assert.Equal(t, newProduct.ID, revised.Items[0].ProductID)
	assert.True(t, revised.TotalAmount.Equal(dec("160.00")))

	// Customer totals swap the old total for the new one.
	assert.True(t, customer.TotalSpent.Equal(dec("160.00")))
	assert.Equal(t, 1, customer.PurchaseCount)
}

func TestSaleService_ReviseSale_SameItemsRestoreStockLevel(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	customer := testCustomer()
	customer.TotalSpent = dec("200.00")
	customer.PurchaseCount = 1

	product := testProduct(5, 2, "100.00", "60.00")

	sale := &entity.Sale{
		ID:          uuid.New(),
		CustomerID:  &customer.ID,
		Status:      entity.SaleStatusPending,
		SoldBy:      uuid.New(),
		AmountPaid:  dec("0"),
		TotalAmount: dec("200.00"),
		Items: []entity.SaleItem{
			{ProductID: product.ID, Quantity: 2, UnitPrice: dec("100.00"), UnitCost: dec("60.00")},
		},
	}

	fx.expectTransaction()
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.factory.EXPECT().NewSaleRepository().Return(fx.saleRepo)

	fx.saleRepo.EXPECT().FindSaleByID(ctx, sale.ID).Return(sale, nil)
	fx.customerRepo.EXPECT().FindCustomerByIDForUpdate(ctx, customer.ID).Return(customer, nil)

	// Restoring the old line returns its quantity to stock.
	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, product.ID).Return(product, nil).Once()
	fx.productRepo.EXPECT().SetStock(ctx, product.ID, 7, mock.Anything, mock.Anything).Return(nil).Once()

	// Re-applying the identical line reads the restored level and lands
	// back on the original count.
	restored := testProduct(7, 2, "100.00", "60.00")
	restored.ID = product.ID
	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, product.ID).Return(restored, nil).Once()
	fx.productRepo.EXPECT().SetStock(ctx, product.ID, 5, mock.Anything, mock.Anything).Return(nil).Once()

	fx.saleRepo.EXPECT().UpdateSale(ctx, sale).Return(nil)
	fx.customerRepo.EXPECT().UpdateCustomer(ctx, customer).Return(nil)

	revised, err := fx.service.ReviseSale(ctx, sale.ID, usecase.ReviseSaleInput{
		Items: []usecase.SaleItemInput{{ProductID: product.ID, Quantity: 2}},
	}, testOwner())
	require.NoError(t, err)

	// Totals and customer figures are unchanged by the no-op revision.
	assert.True(t, revised.TotalAmount.Equal(dec("200.00")))
	assert.True(t, customer.TotalSpent.Equal(dec("200.00")))
	assert.Equal(t, 1, customer.PurchaseCount)
}

func TestSaleService_ReviseSale_RejectsCompletedSale(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	sale := &entity.Sale{
		ID:     uuid.New(),
		Status: entity.SaleStatusCompleted,
		SoldBy: uuid.New(),
	}

	fx.expectTransaction()
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewCustomerRepository().Return(fx.customerRepo)
	fx.factory.EXPECT().NewSaleRepository().Return(fx.saleRepo)
	fx.saleRepo.EXPECT().FindSaleByID(ctx, sale.ID).Return(sale, nil)

	notes := "late edit"
	_, err := fx.service.ReviseSale(ctx, sale.ID, usecase.ReviseSaleInput{Notes: &notes}, testOwner())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestSaleService_GetDailySummary(t *testing.T) {
	fx := createTestSaleService(t)
	ctx := context.Background()

	day := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	fx.saleRepo.EXPECT().
		Summarize(ctx, mock.MatchedBy(func(filter repository.SaleFilter) bool {
			return filter.From != nil && filter.From.Hour() == 0 &&
				filter.To != nil && filter.To.Sub(*filter.From) == 24*time.Hour
		})).
		Return(&repository.SaleSummary{
			Count:        3,
			Revenue:      dec("450.00"),
			Profit:       dec("150.00"),
			AverageValue: dec("150.00"),
		}, nil)

	summary, err := fx.service.GetDailySummary(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.Count)
	assert.True(t, summary.Revenue.Equal(dec("450.00")))
	assert.Equal(t, 0, summary.Date.Hour())
}
