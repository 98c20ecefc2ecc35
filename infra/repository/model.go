package repository

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a client record in the database.
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;size:255"`
	Cpf       string    `gorm:"column:cpf;uniqueIndex:idx_clients_cpf;not null;size:11"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// Account represents an account record in the database. The
// (account_number, branch_number) pair carries the unique index that
// backs the service-level duplicate pre-check.
type Account struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountNumber string    `gorm:"uniqueIndex:idx_accounts_number_branch;not null;size:32"`
	BranchNumber  string    `gorm:"uniqueIndex:idx_accounts_number_branch;not null;size:32"`
	Balance       int64     `gorm:"not null;default:0"`
	ClientID      uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}
