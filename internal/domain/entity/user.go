package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the job function of a staff account.
type Role string

const (
	RoleBusinessOwner Role = "business_owner"
	RoleSalesManager  Role = "sales_manager"
	RoleSalesperson   Role = "salesperson"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBusinessOwner, RoleSalesManager, RoleSalesperson:
		return true
	default:
		return false
	}
}

// PermissionSet is the fixed capability list of an account. Role defaults
// seed it; owners may patch individual flags afterwards.
type PermissionSet struct {
	ViewProfits     bool
	ManageUsers     bool
	ViewReports     bool
	ManageInventory bool
	ManageSales     bool
	ManageCustomers bool
	ManageSuppliers bool
}

// DefaultPermissions returns the capability set granted to a role on
// account creation.
func DefaultPermissions(role Role) PermissionSet {
	switch role {
	case RoleBusinessOwner:
		return PermissionSet{
			ViewProfits:     true,
			ManageUsers:     true,
			ViewReports:     true,
			ManageInventory: true,
			ManageSales:     true,
			ManageCustomers: true,
			ManageSuppliers: true,
		}
	case RoleSalesManager:
		return PermissionSet{
			ViewReports:     true,
			ManageInventory: true,
			ManageSales:     true,
			ManageCustomers: true,
			ManageSuppliers: true,
		}
	case RoleSalesperson:
		return PermissionSet{
			ManageSales:     true,
			ManageCustomers: true,
		}
	default:
		return PermissionSet{}
	}
}

// Permission names accepted by the permission patch operation.
const (
	PermissionViewProfits     = "view_profits"
	PermissionManageUsers     = "manage_users"
	PermissionViewReports     = "view_reports"
	PermissionManageInventory = "manage_inventory"
	PermissionManageSales     = "manage_sales"
	PermissionManageCustomers = "manage_customers"
	PermissionManageSuppliers = "manage_suppliers"
)

// Has reports whether the named permission is granted. Unknown names are
// never granted.
func (p PermissionSet) Has(name string) bool {
	switch name {
	case PermissionViewProfits:
		return p.ViewProfits
	case PermissionManageUsers:
		return p.ManageUsers
	case PermissionViewReports:
		return p.ViewReports
	case PermissionManageInventory:
		return p.ManageInventory
	case PermissionManageSales:
		return p.ManageSales
	case PermissionManageCustomers:
		return p.ManageCustomers
	case PermissionManageSuppliers:
		return p.ManageSuppliers
	default:
		return false
	}
}

// Set updates the named permission, reporting whether the name is known.
func (p *PermissionSet) Set(name string, granted bool) bool {
	switch name {
	case PermissionViewProfits:
		p.ViewProfits = granted
	case PermissionManageUsers:
		p.ManageUsers = granted
	case PermissionViewReports:
		p.ViewReports = granted
	case PermissionManageInventory:
		p.ManageInventory = granted
	case PermissionManageSales:
		p.ManageSales = granted
	case PermissionManageCustomers:
		p.ManageCustomers = granted
	case PermissionManageSuppliers:
		p.ManageSuppliers = granted
	default:
		return false
	}

	return true
}

// User is a staff account.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	Permissions  PermissionSet
	LastLogin    *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins the first and last names for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
