package mocks

import (
	"context"
	"io"

	"sogrinha/internal/attachment"
	"sogrinha/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

var _ attachment.Store = (*MockStore)(nil)

func (m *MockStore) List(ctx context.Context, scope model.Scope, opts attachment.ListOptions) ([]model.Attachment, error) {
	args := m.Called(ctx, scope, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attachment), args.Error(1)
}

func (m *MockStore) Upload(ctx context.Context, scope model.Scope, name string, content []byte) (model.Attachment, error) {
	args := m.Called(ctx, scope, name, content)
	return args.Get(0).(model.Attachment), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, scope model.Scope, name string) error {
	args := m.Called(ctx, scope, name)
	return args.Error(0)
}

func (m *MockStore) Export(ctx context.Context, scope model.Scope, name, destination string) error {
	args := m.Called(ctx, scope, name, destination)
	return args.Error(0)
}

func (m *MockStore) Open(ctx context.Context, scope model.Scope, name string) (io.ReadCloser, model.Attachment, error) {
	args := m.Called(ctx, scope, name)
	if args.Get(0) == nil {
		return nil, args.Get(1).(model.Attachment), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(model.Attachment), args.Error(2)
}
