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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// supplierServiceFixtures holds all test dependencies for supplier service tests.
type supplierServiceFixtures struct {
	service      usecase.SupplierUsecase
	supplierRepo *mockRepo.MockSupplierRepository
}

func createTestSupplierService(t *testing.T) supplierServiceFixtures {
	supplierRepo := mockRepo.NewMockSupplierRepository(t)

	service := NewSupplierService(SupplierServiceParams{
		SupplierRepo: supplierRepo,
	})

	return supplierServiceFixtures{
		service:      service,
		supplierRepo: supplierRepo,
	}
}

func TestSupplierService_CreateSupplier_DefaultsToPrepaid(t *testing.T) {
	fx := createTestSupplierService(t)
	ctx := context.Background()

	fx.supplierRepo.EXPECT().
		CreateSupplier(ctx, mock.MatchedBy(func(supplier *entity.Supplier) bool {
			return supplier.PaymentTerms == entity.PaymentTermsPrepaid && supplier.IsActive
		})).
		Return(nil)

	supplier, err := fx.service.CreateSupplier(ctx, usecase.CreateSupplierInput{
		Name:    "Foam Works Ltd",
		Company: "Foam Works",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentTermsPrepaid, supplier.PaymentTerms)
	assert.Equal(t, entity.MaxSupplierRating, supplier.Rating)
}

func TestSupplierService_CreateSupplier_RatingOutOfRange(t *testing.T) {
	fx := createTestSupplierService(t)

	_, err := fx.service.CreateSupplier(context.Background(), usecase.CreateSupplierInput{
		Name:   "Foam Works Ltd",
		Rating: 6,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSupplierService_CreateSupplier_UnknownPaymentTerms(t *testing.T) {
	fx := createTestSupplierService(t)

	_, err := fx.service.CreateSupplier(context.Background(), usecase.CreateSupplierInput{
		Name:         "Foam Works Ltd",
		PaymentTerms: entity.PaymentTerms("barter"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSupplierService_UpdateSupplier_PartialChanges(t *testing.T) {
	fx := createTestSupplierService(t)
	ctx := context.Background()

	supplier := &entity.Supplier{
		ID:           uuid.New(),
		Name:         "Foam Works Ltd",
		Phone:        "555-0100",
		PaymentTerms: entity.PaymentTermsPrepaid,
		IsActive:     true,
	}

	fx.supplierRepo.EXPECT().FindSupplierByID(ctx, supplier.ID).Return(supplier, nil)
	fx.supplierRepo.EXPECT().UpdateSupplier(ctx, supplier).Return(nil)

	phone := "555-0199"
	terms := entity.PaymentTermsNet30
	updated, err := fx.service.UpdateSupplier(ctx, supplier.ID, usecase.UpdateSupplierInput{
		Phone:        &phone,
		PaymentTerms: &terms,
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, entity.PaymentTermsNet30, updated.PaymentTerms)
	assert.Equal(t, "Foam Works Ltd", updated.Name)
}

func TestSupplierService_DeleteSupplier_NotFound(t *testing.T) {
	fx := createTestSupplierService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.supplierRepo.EXPECT().DeactivateSupplier(ctx, id).Return(repository.ErrSupplierNotFound)

	err := fx.service.DeleteSupplier(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
}
