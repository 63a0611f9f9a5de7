package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
// Permission flags are stored as individual columns so they can be queried
// and patched directly.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(128)"`
	LastName     string    `gorm:"type:varchar(128)"`
	Role         string    `gorm:"type:varchar(32);not null"`

	PermViewProfits     bool `gorm:"not null;default:false"`
	PermManageUsers     bool `gorm:"not null;default:false"`
	PermViewReports     bool `gorm:"not null;default:false"`
	PermManageInventory bool `gorm:"not null;default:false"`
	PermManageSales     bool `gorm:"not null;default:false"`
	PermManageCustomers bool `gorm:"not null;default:false"`
	PermManageSuppliers bool `gorm:"not null;default:false"`

	LastLoginAt *time.Time
	IsActive    bool `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
