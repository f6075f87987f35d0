package commands_test

import (
	"context"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/person"
	"workshop/internal/core/domain/model/serviceorder"
	"workshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockServiceOrderRepository struct{ mock.Mock }

func (m *MockServiceOrderRepository) Add(ctx context.Context, o *serviceorder.ServiceOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) Update(ctx context.Context, o *serviceorder.ServiceOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serviceorder.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber int64) (*serviceorder.ServiceOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serviceorder.ServiceOrder), args.Error(1)
}

type MockPersonRepository struct{ mock.Mock }

func (m *MockPersonRepository) Get(ctx context.Context, id kernel.UUID) (*person.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Person), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ServiceOrderRepository() ports.ServiceOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceOrderRepository)
}

func (m *MockUoW) PersonRepository() ports.PersonRepository {
	args := m.Called()
	return args.Get(0).(ports.PersonRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockServiceOrderUoWFactory struct{ mock.Mock }

func (m *MockServiceOrderUoWFactory) Create() commands.ServiceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.ServiceOrderUoW)
}

type MockOrderNumberSequence struct{ mock.Mock }

func (m *MockOrderNumberSequence) Next(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderNumberSequence) Current(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderNumberSequence) Set(ctx context.Context, value int64) error {
	args := m.Called(ctx, value)
	return args.Error(0)
}

func (m *MockOrderNumberSequence) Exists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
