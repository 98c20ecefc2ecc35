package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/jamadeu/multicontas/pkg/domain"
)

// Repository defines the interface for account data access operations.
type Repository interface {
	// Create inserts a new account record.
	Create(ctx context.Context, account *domain.Account) error

	// Update persists the fields of an existing account.
	Update(ctx context.Context, account *domain.Account) error

	// Get retrieves an account by its ID.
	// Returns domain.ErrNotFound when no row matches.
	Get(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// GetByNumberAndBranch retrieves an account by its unique
	// (account number, branch number) pair.
	// Returns domain.ErrNotFound when no row matches.
	GetByNumberAndBranch(ctx context.Context, accountNumber, branchNumber string) (*domain.Account, error)

	// ListByClient lists all accounts owned by the given client.
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Account, error)

	// ExistsByNumberAndBranch reports whether an account with the given
	// (account number, branch number) pair already exists.
	ExistsByNumberAndBranch(ctx context.Context, accountNumber, branchNumber string) (bool, error)

	// Delete removes an account by ID. Deleting an absent row is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
