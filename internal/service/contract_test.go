package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sogrinha/internal/model"
	"sogrinha/internal/repository"
	repoMocks "sogrinha/internal/repository/mocks"
)

func newTestContractService(repo repository.RecordRepository) *contractService {
	svc := NewContractService(repo, time.UTC).(*contractService)
	svc.now = func() time.Time { return time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC) }
	svc.rnd = func(int) int { return 7 }
	return svc
}

func TestNewIdentifier(t *testing.T) {
	day := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "#ALG14102026007", NewIdentifier(model.ContractRental, day, 7))
	assert.Equal(t, "#VDE14102026999", NewIdentifier(model.ContractSaleWithExclusivity, day, 999))
	assert.Equal(t, "#UNK14102026000", NewIdentifier("Permuta", day, 1000))
}

func TestContractService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         *model.Contract
		setupMocks func(mRepo *repoMocks.MockRecordRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			in:   &model.Contract{Kind: model.ContractRentalWithAdmin, OwnerID: "owner-1", PaymentDay: 5, PaymentValue: 1500},
			setupMocks: func(mRepo *repoMocks.MockRecordRepository) {
				mRepo.On("CreateContract", ctx, mock.MatchedBy(func(c *model.Contract) bool {
					return c.ID != "" && c.Identifier == "#ALA14102026007" && c.Status == model.ContractActive
				})).Return(&model.Contract{ID: "gen-id", Identifier: "#ALA14102026007"}, nil)
			},
		},
		{
			name:       "validation - unknown kind and no owner",
			in:         &model.Contract{Kind: "Permuta"},
			setupMocks: func(mRepo *repoMocks.MockRecordRepository) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name: "validation - end before start",
			in: &model.Contract{
				Kind: model.ContractRental, OwnerID: "owner-1",
				StartDate: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			setupMocks: func(mRepo *repoMocks.MockRecordRepository) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name: "repository error",
			in:   &model.Contract{Kind: model.ContractRental, OwnerID: "owner-1"},
			setupMocks: func(mRepo *repoMocks.MockRecordRepository) {
				mRepo.On("CreateContract", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErrMsg: "db save failed: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockRecordRepository)
			svc := newTestContractService(mRepo)
			tt.setupMocks(mRepo)

			got, err := svc.Create(ctx, tt.in)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, "#ALA14102026007", got.Identifier)
				assert.Empty(t, tt.in.ID, "input must not be mutated")
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestContractService_Get(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockRecordRepository)
	svc := newTestContractService(mRepo)

	mRepo.On("FindContract", ctx, "ctr_42").Return(&model.Contract{ID: "ctr_42"}, nil)
	mRepo.On("FindContract", ctx, "missing").Return(nil, repository.ErrNotFound)

	c, err := svc.Get(ctx, "ctr_42")
	require.NoError(t, err)
	assert.Equal(t, "ctr_42", c.ID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, ErrIDRequired)

	mRepo.AssertExpectations(t)
}

func TestContractService_List(t *testing.T) {
	ctx := context.Background()
	f := repository.ContractFilter{UserID: "user123"}

	t.Run("default limit", func(t *testing.T) {
		mRepo := new(repoMocks.MockRecordRepository)
		mRepo.On("ListContracts", ctx, f, repository.PageQuery{Limit: 25, Offset: 0}).
			Return(&repository.PageResult[model.Contract]{Items: []model.Contract{{ID: "1"}}, Total: 1}, nil)

		res, err := newTestContractService(mRepo).List(ctx, f, 0, -5)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
		mRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockRecordRepository)
		mRepo.On("ListContracts", ctx, f, mock.Anything).Return(nil, errors.New("db fail"))

		_, err := newTestContractService(mRepo).List(ctx, f, 10, 0)

		assert.EqualError(t, err, "db fail")
	})
}

func TestContractService_Delete(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockRecordRepository)
	svc := newTestContractService(mRepo)

	mRepo.On("DeleteContract", ctx, "ctr_42").Return(nil)
	mRepo.On("DeleteContract", ctx, "missing").Return(repository.ErrNotFound)

	assert.NoError(t, svc.Delete(ctx, "ctr_42"))
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, ""), ErrIDRequired)
	mRepo.AssertExpectations(t)
}
