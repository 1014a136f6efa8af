package repository

import (
	"context"
	"time"

	"sogrinha/internal/model"
)

// RecordRepository persists the real-estate records using SQL queries only.
// No business logic here; identifiers and timestamps are assigned by the caller.
type RecordRepository interface {
	CreateOwner(ctx context.Context, o *model.Owner) (*model.Owner, error)
	FindOwner(ctx context.Context, id string) (*model.Owner, error)

	CreateLessee(ctx context.Context, l *model.Lessee) (*model.Lessee, error)
	FindLessee(ctx context.Context, id string) (*model.Lessee, error)

	CreateRealEstate(ctx context.Context, re *model.RealEstate) (*model.RealEstate, error)
	FindRealEstate(ctx context.Context, id string) (*model.RealEstate, error)

	CreateContract(ctx context.Context, c *model.Contract) (*model.Contract, error)
	FindContract(ctx context.Context, id string) (*model.Contract, error)
	// ListContracts returns one page of contracts matching f, newest start date first.
	ListContracts(ctx context.Context, f ContractFilter, pq PageQuery) (*PageResult[model.Contract], error)
	// DeleteContract removes a contract. A missing row yields ErrNotFound.
	DeleteContract(ctx context.Context, id string) error
}

// ContractFilter is the closed set of supported contract predicates.
// Zero-valued fields are ignored.
type ContractFilter struct {
	UserID    string
	OwnerID   string
	LesseeID  string
	Kind      model.ContractKind
	Status    model.ContractStatus
	EndsAfter time.Time
}
