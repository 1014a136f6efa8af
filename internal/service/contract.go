package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"sogrinha/internal/model"
	"sogrinha/internal/repository"
)

const defaultPageLimit = 25

// ContractListResult is the service-level DTO for paginated contracts.
type ContractListResult struct {
	Items []model.Contract `json:"data"`
	Total int              `json:"total"`
}

// ContractService defines the use cases for contracts.
type ContractService interface {
	// Create assigns a fresh id and identifier and persists the contract.
	Create(ctx context.Context, c *model.Contract) (*model.Contract, error)
	Get(ctx context.Context, id string) (*model.Contract, error)
	// List returns one page of contracts matching f. A non-positive limit uses the default of 25.
	List(ctx context.Context, f repository.ContractFilter, limit, offset int) (*ContractListResult, error)
	Delete(ctx context.Context, id string) error
}

type contractService struct {
	repo repository.RecordRepository
	loc  *time.Location
	now  func() time.Time
	rnd  func(n int) int
}

// NewContractService constructs a ContractService. Identifiers are dated in loc.
func NewContractService(repo repository.RecordRepository, loc *time.Location) ContractService {
	if loc == nil {
		loc = time.Local
	}
	return &contractService{repo: repo, loc: loc, now: time.Now, rnd: rand.IntN}
}

func (s *contractService) Create(ctx context.Context, c *model.Contract) (*model.Contract, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: contract is nil", ErrInvalidInput)
	}
	if err := validateContract(c); err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	in := *c
	in.ID = uuid.New().String()
	in.Identifier = NewIdentifier(in.Kind, now, s.rnd(1000))
	in.CreatedAt = now.UTC()
	if in.Status == "" {
		in.Status = model.ContractActive
	}

	stored, err := s.repo.CreateContract(ctx, &in)
	if err != nil {
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *contractService) Get(ctx context.Context, id string) (*model.Contract, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.repo.FindContract(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return c, nil
}

func (s *contractService) List(ctx context.Context, f repository.ContractFilter, limit, offset int) (*ContractListResult, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.ListContracts(ctx, f, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ContractListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *contractService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return mapRepoErr(s.repo.DeleteContract(ctx, id))
}

// NewIdentifier formats the human contract identifier, e.g. "#ALG14102026007".
// seq is reduced to three digits.
func NewIdentifier(kind model.ContractKind, t time.Time, seq int) string {
	if seq < 0 {
		seq = -seq
	}
	return fmt.Sprintf("#%s%s%03d", kind.Abbreviation(), t.Format("02012006"), seq%1000)
}

func validateContract(c *model.Contract) error {
	var problems []string
	if !c.Kind.IsRental() && !c.Kind.IsSale() {
		problems = append(problems, fmt.Sprintf("unknown kind %q", c.Kind))
	}
	if strings.TrimSpace(c.OwnerID) == "" {
		problems = append(problems, "owner_id is required")
	}
	if c.PaymentDay < 0 || c.PaymentDay > 31 {
		problems = append(problems, "payment_day must be between 1 and 31")
	}
	if c.PaymentValue < 0 {
		problems = append(problems, "payment_value must not be negative")
	}
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && c.EndDate.Before(c.StartDate) {
		problems = append(problems, "end_date is before start_date")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}
