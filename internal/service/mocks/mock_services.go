package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sogrinha/internal/document"
	"sogrinha/internal/model"
	"sogrinha/internal/repository"
	"sogrinha/internal/service"
)

type MockContractService struct {
	mock.Mock
}

var _ service.ContractService = (*MockContractService)(nil)

func (m *MockContractService) Create(ctx context.Context, c *model.Contract) (*model.Contract, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractService) Get(ctx context.Context, id string) (*model.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

func (m *MockContractService) List(ctx context.Context, f repository.ContractFilter, limit, offset int) (*service.ContractListResult, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ContractListResult), args.Error(1)
}

func (m *MockContractService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDocumentService struct {
	mock.Mock
}

var _ service.DocumentService = (*MockDocumentService)(nil)

func (m *MockDocumentService) Render(ctx context.Context, contractID string, format document.Format) (*document.Rendered, error) {
	args := m.Called(ctx, contractID, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Rendered), args.Error(1)
}

type MockRecordService struct {
	mock.Mock
}

var _ service.RecordService = (*MockRecordService)(nil)

func (m *MockRecordService) CreateOwner(ctx context.Context, o *model.Owner) (*model.Owner, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockRecordService) GetOwner(ctx context.Context, id string) (*model.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Owner), args.Error(1)
}

func (m *MockRecordService) CreateLessee(ctx context.Context, l *model.Lessee) (*model.Lessee, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lessee), args.Error(1)
}

func (m *MockRecordService) GetLessee(ctx context.Context, id string) (*model.Lessee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lessee), args.Error(1)
}

func (m *MockRecordService) CreateRealEstate(ctx context.Context, re *model.RealEstate) (*model.RealEstate, error) {
	args := m.Called(ctx, re)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RealEstate), args.Error(1)
}

func (m *MockRecordService) GetRealEstate(ctx context.Context, id string) (*model.RealEstate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RealEstate), args.Error(1)
}
