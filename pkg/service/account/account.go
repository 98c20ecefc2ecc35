// Package account provides the account lifecycle service: create, read,
// update, delete and deposit, enforcing the (account number, branch
// number) uniqueness invariant.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jamadeu/multicontas/pkg/domain"
	"github.com/jamadeu/multicontas/pkg/domain/money"
	accountrepo "github.com/jamadeu/multicontas/pkg/repository/account"
)

// Service orchestrates account operations over an injected repository.
type Service struct {
	repo   accountrepo.Repository
	logger *slog.Logger
}

// NewService creates an account service with the provided repository.
func NewService(repo accountrepo.Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With("service", "account"),
	}
}

// Create validates and persists a new account.
// Returns domain.ErrAlreadyExists when the (account number, branch number)
// pair is already taken. The existence check is a fast path only; the
// store's unique index is the source of truth and its violation maps to
// the same error.
func (s *Service) Create(
	ctx context.Context,
	accountNumber, branchNumber string,
	balance money.Money,
	clientID uuid.UUID,
) (*domain.Account, error) {
	a, err := domain.NewAccount(accountNumber, branchNumber, balance, clientID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByNumberAndBranch(ctx, a.AccountNumber, a.BranchNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyExists
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("failed to create account", "error", err)
		return nil, err
	}
	return a, nil
}

// Get retrieves an account by ID. Returns domain.ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.repo.Get(ctx, id)
}

// GetByNumberAndBranch retrieves an account by its unique pair.
// Returns domain.ErrNotFound when absent.
func (s *Service) GetByNumberAndBranch(
	ctx context.Context,
	accountNumber, branchNumber string,
) (*domain.Account, error) {
	return s.repo.GetByNumberAndBranch(ctx, accountNumber, branchNumber)
}

// ListByClient retrieves all accounts owned by a client.
// A client with no accounts yields domain.ErrNotFound.
func (s *Service) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Account, error) {
	accts, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(accts) == 0 {
		return nil, domain.ErrNotFound
	}
	return accts, nil
}

// Update loads an existing account and persists the merged record with
// UpdatedAt refreshed and CreatedAt preserved. When the pair changed, the
// uniqueness check runs again before the write; any existing owner of the
// new pair is necessarily a different account.
func (s *Service) Update(
	ctx context.Context,
	id uuid.UUID,
	accountNumber, branchNumber string,
	balance money.Money,
	clientID uuid.UUID,
) (*domain.Account, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !a.SamePair(accountNumber, branchNumber) {
		exists, err := s.repo.ExistsByNumberAndBranch(ctx, accountNumber, branchNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrAlreadyExists
		}
	}

	if err := a.Update(accountNumber, branchNumber, balance, clientID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("failed to update account", "account_id", id, "error", err)
		return nil, err
	}
	return a, nil
}

// Delete removes an account by ID. Deleting an absent account is a no-op.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Deposit increases an account's balance by a strictly positive amount and
// refreshes UpdatedAt. Returns domain.ErrNotFound when the account is
// absent and domain.ErrDepositAmountMustBePositive for non-positive amounts.
func (s *Service) Deposit(ctx context.Context, id uuid.UUID, amount money.Money) (*domain.Account, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.Deposit(amount); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("failed to persist deposit", "account_id", id, "error", err)
		return nil, err
	}
	return a, nil
}
