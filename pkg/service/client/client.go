// Package client provides the client lifecycle service: create, read,
// update and delete, enforcing the CPF uniqueness invariant.
package client

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jamadeu/multicontas/pkg/domain"
	clientrepo "github.com/jamadeu/multicontas/pkg/repository/client"
)

// Service orchestrates client operations over an injected repository.
type Service struct {
	repo   clientrepo.Repository
	logger *slog.Logger
}

// NewService creates a client service with the provided repository.
func NewService(repo clientrepo.Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With("service", "client"),
	}
}

// Create validates and persists a new client.
// Returns domain.ErrAlreadyExists when the CPF is already taken. The
// existence check is a fast path only; the store's unique index is the
// source of truth and its violation maps to the same error.
func (s *Service) Create(ctx context.Context, name, cpf string) (*domain.Client, error) {
	c, err := domain.NewClient(name, cpf)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByCpf(ctx, c.Cpf)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyExists
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("failed to create client", "error", err)
		return nil, err
	}
	return c, nil
}

// Get retrieves a client by ID. Returns domain.ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.repo.Get(ctx, id)
}

// GetByCpf retrieves a client by CPF. Returns domain.ErrNotFound when absent.
func (s *Service) GetByCpf(ctx context.Context, cpf string) (*domain.Client, error) {
	if err := domain.ValidateCPF(cpf); err != nil {
		return nil, err
	}
	return s.repo.GetByCpf(ctx, domain.NormalizeCPF(cpf))
}

// Update loads an existing client and persists the merged record with
// UpdatedAt refreshed and CreatedAt preserved. The CPF is checksum-validated
// before any store access; when it changed, the uniqueness check runs again
// before the write.
func (s *Service) Update(ctx context.Context, id uuid.UUID, name, cpf string) (*domain.Client, error) {
	if err := domain.ValidateCPF(cpf); err != nil {
		return nil, err
	}

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Cpf != domain.NormalizeCPF(cpf) {
		exists, err := s.repo.ExistsByCpf(ctx, domain.NormalizeCPF(cpf))
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrAlreadyExists
		}
	}

	if err := c.Update(name, cpf); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("failed to update client", "client_id", id, "error", err)
		return nil, err
	}
	return c, nil
}

// Delete removes a client by ID. Deleting an absent client is a no-op.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
