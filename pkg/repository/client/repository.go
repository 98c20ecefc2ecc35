package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/jamadeu/multicontas/pkg/domain"
)

// Repository defines the interface for client data access operations.
type Repository interface {
	// Create inserts a new client record.
	Create(ctx context.Context, client *domain.Client) error

	// Update persists the fields of an existing client.
	Update(ctx context.Context, client *domain.Client) error

	// Get retrieves a client by its ID.
	// Returns domain.ErrNotFound when no row matches.
	Get(ctx context.Context, id uuid.UUID) (*domain.Client, error)

	// GetByCpf retrieves a client by its unique CPF.
	// Returns domain.ErrNotFound when no row matches.
	GetByCpf(ctx context.Context, cpf string) (*domain.Client, error)

	// ExistsByCpf reports whether a client with the given CPF already exists.
	ExistsByCpf(ctx context.Context, cpf string) (bool, error)

	// Delete removes a client by ID. Deleting an absent row is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
