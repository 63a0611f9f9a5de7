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

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

// SupplierServiceParams holds dependencies for SupplierService, injected by Fx.
type SupplierServiceParams struct {
	fx.In

	SupplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service instance
func NewSupplierService(params SupplierServiceParams) usecase.SupplierUsecase {
	return &supplierService{
		supplierRepo: params.SupplierRepo,
	}
}

// ListSuppliers retrieves suppliers matching the filter.
func (s *supplierService) ListSuppliers(ctx context.Context, filter repository.SupplierFilter) ([]*entity.Supplier, int64, error) {
	suppliers, total, err := s.supplierRepo.ListSuppliers(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list suppliers")
	}

	return suppliers, total, nil
}

// GetSupplier retrieves a single supplier.
func (s *supplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	return supplier, nil
}

// CreateSupplier persists a new supplier.
func (s *supplierService) CreateSupplier(ctx context.Context, input usecase.CreateSupplierInput) (*entity.Supplier, error) {
	paymentTerms := input.PaymentTerms
	if paymentTerms == "" {
		paymentTerms = entity.PaymentTermsPrepaid
	}
	if !paymentTerms.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown payment terms %q", paymentTerms))
	}

	rating := input.Rating
	if rating == 0 {
		rating = entity.MaxSupplierRating
	}
	if err := validateSupplierRating(rating); err != nil {
		return nil, err
	}

	supplier := &entity.Supplier{
		ID:            uuid.New(),
		Name:          input.Name,
		Company:       input.Company,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		PaymentTerms:  paymentTerms,
		Rating:        rating,
		Notes:         input.Notes,
		IsActive:      true,
	}

	if err := s.supplierRepo.CreateSupplier(ctx, supplier); err != nil {
		return nil, errors.Wrap(err, "failed to create supplier")
	}

	return supplier, nil
}

// UpdateSupplier applies the provided changes.
func (s *supplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input usecase.UpdateSupplierInput) (*entity.Supplier, error) {
	supplier, err := s.GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.Company != nil {
		supplier.Company = *input.Company
	}
	if input.ContactPerson != nil {
		supplier.ContactPerson = *input.ContactPerson
	}
	if input.Email != nil {
		supplier.Email = *input.Email
	}
	if input.Phone != nil {
		supplier.Phone = *input.Phone
	}
	if input.Address != nil {
		supplier.Address = *input.Address
	}
	if input.PaymentTerms != nil {
		if !input.PaymentTerms.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("unknown payment terms %q", *input.PaymentTerms))
		}
		supplier.PaymentTerms = *input.PaymentTerms
	}
	if input.Rating != nil {
		if err := validateSupplierRating(*input.Rating); err != nil {
			return nil, err
		}
		supplier.Rating = *input.Rating
	}
	if input.Notes != nil {
		supplier.Notes = *input.Notes
	}
	if input.IsActive != nil {
		supplier.IsActive = *input.IsActive
	}

	if err := s.supplierRepo.UpdateSupplier(ctx, supplier); err != nil {
		return nil, errors.Wrap(err, "failed to update supplier")
	}

	return supplier, nil
}

// validateSupplierRating enforces the five-point rating scale.
func validateSupplierRating(rating int) error {
	if rating < entity.MinSupplierRating || rating > entity.MaxSupplierRating {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("rating must be between %d and %d", entity.MinSupplierRating, entity.MaxSupplierRating))
	}

	return nil
}

// DeleteSupplier soft-deletes a supplier.
func (s *supplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	if err := s.supplierRepo.DeactivateSupplier(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return domainerrors.ErrSupplierNotFound
		}

		return errors.Wrap(err, "failed to deactivate supplier")
	}

	return nil
}
