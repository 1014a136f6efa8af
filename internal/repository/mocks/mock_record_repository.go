package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sogrinha/internal/model"
	"sogrinha/internal/repository"
)

type MockRecordRepository struct {
	mock.Mock
}

var _ repository.RecordRepository = (*MockRecordRepository)(nil)

func (m *MockRecordRepository) CreateOwner(ctx context.Context, o *model.Owner) (*model.Owner, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockRecordRepository) FindOwner(ctx context.Context, id string) (*model.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockRecordRepository) CreateLessee(ctx context.Context, l *model.Lessee) (*model.Lessee, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lessee), args.Error(1)
}

func (m *MockRecordRepository) FindLessee(ctx context.Context, id string) (*model.Lessee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lessee), args.Error(1)
}

func (m *MockRecordRepository) CreateRealEstate(ctx context.Context, re *model.RealEstate) (*model.RealEstate, error) {
	args := m.Called(ctx, re)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RealEstate), args.Error(1)
}

func (m *MockRecordRepository) FindRealEstate(ctx context.Context, id string) (*model.RealEstate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RealEstate), args.Error(1)
}

func (m *MockRecordRepository) CreateContract(ctx context.Context, c *model.Contract) (*model.Contract, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockRecordRepository) FindContract(ctx context.Context, id string) (*model.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockRecordRepository) ListContracts(ctx context.Context, f repository.ContractFilter, pq repository.PageQuery) (*repository.PageResult[model.Contract], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Contract]), args.Error(1)
}

func (m *MockRecordRepository) DeleteContract(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
