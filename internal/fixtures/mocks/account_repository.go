package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jamadeu/multicontas/pkg/domain"
	"github.com/stretchr/testify/mock"
)

// AccountRepository is a testify mock of the account repository.
type AccountRepository struct {
	mock.Mock
}

func NewAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountRepository {
	m := &AccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *AccountRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*domain.Account); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) GetByNumberAndBranch(ctx context.Context, accountNumber, branchNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber, branchNumber)
	if a, ok := args.Get(0).(*domain.Account); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Account, error) {
	args := m.Called(ctx, clientID)
	if accounts, ok := args.Get(0).([]*domain.Account); ok {
		return accounts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountRepository) ExistsByNumberAndBranch(ctx context.Context, accountNumber, branchNumber string) (bool, error) {
	args := m.Called(ctx, accountNumber, branchNumber)
	return args.Bool(0), args.Error(1)
}

func (m *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
