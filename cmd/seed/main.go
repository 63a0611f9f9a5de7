// seed populates a fresh database with the default staff accounts and a demo
// catalog: suppliers, products with initial stock and a few customers.
//
// Usage:
//
//	ENV=local go run ./cmd/seed
package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"

	"foamstock/config"
	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	"foamstock/internal/infra/auth"
	logs "foamstock/internal/infra/log"
	"foamstock/internal/infra/persistence/postgres"
	"foamstock/internal/usecase"
	"foamstock/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type seedAccount struct {
	email     string
	password  string
	firstName string
	lastName  string
	role      entity.Role
}

var accounts = []seedAccount{
	{"admin@foambusiness.com", "admin123", "Admin", "User", entity.RoleBusinessOwner},
	{"manager@foambusiness.com", "manager123", "Sales", "Manager", entity.RoleSalesManager},
	{"sales@foambusiness.com", "seller123", "John", "Doe", entity.RoleSalesperson},
}

var supplierInputs = []usecase.CreateSupplierInput{
	{
		Name:          "Ely Foams",
		Company:       "Ely Foam Manufacturing Ltd",
		ContactPerson: "John Ely",
		Email:         "contact@elyfoams.com",
		Phone:         "+2348012345678",
		Address:       entity.Address{Street: "123 Industrial Avenue", City: "Lagos", State: "Lagos"},
		PaymentTerms:  entity.PaymentTermsNet30,
		Rating:        4,
	},
	{
		Name:          "Best Muca Foams",
		Company:       "Best Muca Industries",
		ContactPerson: "Sarah Muca",
		Email:         "info@bestmuca.com",
		Phone:         "+2348098765432",
		Address:       entity.Address{Street: "456 Factory Road", City: "Ibadan", State: "Oyo"},
		PaymentTerms:  entity.PaymentTermsNet15,
		Rating:        5,
	},
	{
		Name:          "Mouka Foams",
		Company:       "Mouka Limited",
		ContactPerson: "Mike Mouka",
		Email:         "sales@mouka.com",
		Phone:         "+2348055551234",
		Address:       entity.Address{Street: "789 Production Street", City: "Abeokuta", State: "Ogun"},
		PaymentTerms:  entity.PaymentTermsNet30,
		Rating:        4,
	},
}

type seedProduct struct {
	name         string
	category     entity.Category
	dimensions   *entity.Dimensions
	unitCost     int64
	sellingPrice int64
	description  string
	tags         []string
}

var productRows = []seedProduct{
	{
		name:         "Premium 20-inch Mattress",
		category:     entity.CategoryMattress,
		dimensions:   &entity.Dimensions{Thickness: 20, Density: 35},
		unitCost:     45000,
		sellingPrice: 65000,
		description:  "High-density premium mattress for maximum comfort",
		tags:         []string{"premium", "luxury", "high-density"},
	},
	{
		name:         "Standard 18-inch Mattress",
		category:     entity.CategoryMattress,
		dimensions:   &entity.Dimensions{Thickness: 18, Density: 25},
		unitCost:     35000,
		sellingPrice: 50000,
		description:  "Standard mattress for everyday use",
		tags:         []string{"standard", "regular", "medium-density"},
	},
	{
		name:         "Economy 16-inch Mattress",
		category:     entity.CategoryMattress,
		dimensions:   &entity.Dimensions{Thickness: 16, Density: 18},
		unitCost:     25000,
		sellingPrice: 35000,
		description:  "Affordable mattress for budget customers",
		tags:         []string{"economy", "budget", "low-density"},
	},
	{
		name:         "Deluxe 22-inch Mattress",
		category:     entity.CategoryMattress,
		dimensions:   &entity.Dimensions{Thickness: 22, Density: 40},
		unitCost:     60000,
		sellingPrice: 85000,
		description:  "Ultra-deluxe mattress with extra thickness",
		tags:         []string{"deluxe", "extra-thick", "ultra-premium"},
	},
	{
		name:         "Memory Foam Pillow",
		category:     entity.CategoryPillow,
		unitCost:     5000,
		sellingPrice: 8000,
		description:  "Orthopedic memory foam pillow",
		tags:         []string{"memory-foam", "orthopedic", "premium"},
	},
	{
		name:         "Standard Pillow",
		category:     entity.CategoryPillow,
		unitCost:     2000,
		sellingPrice: 3500,
		description:  "Regular pillow for daily use",
		tags:         []string{"standard", "regular", "basic"},
	},
	{
		name:         "Plush Foot Mat",
		category:     entity.CategoryFootMat,
		unitCost:     3000,
		sellingPrice: 5000,
		description:  "Soft plush foot mat",
		tags:         []string{"foot-mat", "plush", "soft"},
	},
	{
		name:         "Cotton Bedsheet Set",
		category:     entity.CategoryBedsheet,
		unitCost:     8000,
		sellingPrice: 12000,
		description:  "100% cotton bedsheet set",
		tags:         []string{"bedsheet", "cotton", "set"},
	},
}

type seedCustomer struct {
	name         string
	email        string
	phone        string
	customerType entity.CustomerType
	creditLimit  int64
}

var customerRows = []seedCustomer{
	{"Adeola Johnson", "adeola@email.com", "+2348011111111", entity.CustomerTypeRegular, 0},
	{"Chinedu Okoro", "chinedu@email.com", "+2348022222222", entity.CustomerTypeWholesale, 500000},
	{"Funke Adebayo", "funke@email.com", "+2348033333333", entity.CustomerTypeCorporate, 0},
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewSupplierRepository,
			postgres.NewCustomerRepository,
			postgres.NewSaleRepository,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewAuthService,
			impl.NewProductService,
			impl.NewSupplierService,
			impl.NewCustomerService,
		),
		fx.Invoke(runSeed),
	).Run()
}

type seedParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	UserRepo   repository.UserRepository
	AuthUC     usecase.AuthUsecase
	ProductUC  usecase.ProductUsecase
	SupplierUC usecase.SupplierUsecase
	CustomerUC usecase.CustomerUsecase
}

func runSeed(params seedParams) {
	ctx := context.Background()
	if err := seed(ctx, params); err != nil {
		params.Logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	params.Logger.Info("Database seeded",
		slog.String("owner", accounts[0].email),
		slog.Int("suppliers", len(supplierInputs)),
		slog.Int("products", len(productRows)),
		slog.Int("customers", len(customerRows)),
	)

	if err := params.Shutdowner.Shutdown(); err != nil {
		params.Logger.Error("Shutdown failed", slog.Any("error", err))
	}
}

func seed(ctx context.Context, params seedParams) error {
	owner, err := seedAccounts(ctx, params)
	if err != nil {
		return err
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierInputs))
	for _, input := range supplierInputs {
		supplier, err := params.SupplierUC.CreateSupplier(ctx, input)
		if err != nil {
			return errors.Wrapf(err, "failed to seed supplier %q", input.Name)
		}
		suppliers = append(suppliers, supplier)
	}

	// Products are spread round-robin across the suppliers, matching the
	// shape of the demo catalog.
	for i, row := range productRows {
		_, err := params.ProductUC.CreateProduct(ctx, usecase.CreateProductInput{
			Name:         row.name,
			Category:     row.category,
			Dimensions:   row.dimensions,
			SupplierID:   suppliers[i%len(suppliers)].ID,
			UnitCost:     decimal.NewFromInt(row.unitCost),
			SellingPrice: decimal.NewFromInt(row.sellingPrice),
			Description:  row.description,
			Tags:         row.tags,
			InitialStock: rand.IntN(100) + 20,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to seed product %q", row.name)
		}
	}

	for _, row := range customerRows {
		_, err := params.CustomerUC.CreateCustomer(ctx, usecase.CreateCustomerInput{
			Name:        row.name,
			Email:       row.email,
			Phone:       row.phone,
			Type:        row.customerType,
			CreditLimit: decimal.NewFromInt(row.creditLimit),
			CreatedBy:   owner.ID,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to seed customer %q", row.name)
		}
	}

	return nil
}

// seedAccounts registers the default staff, skipping accounts that already
// exist, and returns the owner account.
func seedAccounts(ctx context.Context, params seedParams) (*entity.User, error) {
	var owner *entity.User
	for _, account := range accounts {
		result, err := params.AuthUC.Register(ctx, usecase.RegisterInput{
			Email:     account.email,
			Password:  account.password,
			FirstName: account.firstName,
			LastName:  account.lastName,
			Role:      account.role,
		})
		switch {
		case err == nil:
			if account.role == entity.RoleBusinessOwner {
				owner = result.User
			}
		case errors.Is(err, domainerrors.ErrUserAlreadyExists):
			params.Logger.Info("Account already exists, skipping", slog.String("email", account.email))
			if account.role == entity.RoleBusinessOwner {
				existing, findErr := params.UserRepo.FindUserByEmail(ctx, account.email)
				if findErr != nil {
					return nil, errors.Wrap(findErr, "failed to load existing owner")
				}
				owner = existing
			}
		default:
			return nil, errors.Wrapf(err, "failed to register %q", account.email)
		}
	}

	if owner == nil {
		return nil, errors.New("owner account was not created")
	}

	return owner, nil
}
