// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jamadeu/multicontas/pkg/domain"
	"github.com/stretchr/testify/mock"
)

// ClientRepository is a testify mock of the client repository.
type ClientRepository struct {
	mock.Mock
}

func NewClientRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ClientRepository {
	m := &ClientRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *ClientRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) GetByCpf(ctx context.Context, cpf string) (*domain.Client, error) {
	args := m.Called(ctx, cpf)
	if c, ok := args.Get(0).(*domain.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) ExistsByCpf(ctx context.Context, cpf string) (bool, error) {
	args := m.Called(ctx, cpf)
	return args.Bool(0), args.Error(1)
}

func (m *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
