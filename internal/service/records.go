package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sogrinha/internal/model"
	"sogrinha/internal/repository"
)

// RecordService creates and fetches owners, lessees and real estates.
type RecordService interface {
	CreateOwner(ctx context.Context, o *model.Owner) (*model.Owner, error)
	GetOwner(ctx context.Context, id string) (*model.Owner, error)
	CreateLessee(ctx context.Context, l *model.Lessee) (*model.Lessee, error)
	GetLessee(ctx context.Context, id string) (*model.Lessee, error)
	CreateRealEstate(ctx context.Context, re *model.RealEstate) (*model.RealEstate, error)
	GetRealEstate(ctx context.Context, id string) (*model.RealEstate, error)
}

type recordService struct {
	repo repository.RecordRepository
	now  func() time.Time
}

// NewRecordService constructs a RecordService.
func NewRecordService(repo repository.RecordRepository) RecordService {
	return &recordService{repo: repo, now: time.Now}
}

func (s *recordService) CreateOwner(ctx context.Context, o *model.Owner) (*model.Owner, error) {
	if o == nil || strings.TrimSpace(o.FullName) == "" {
		return nil, fmt.Errorf("%w: full_name is required", ErrInvalidInput)
	}
	in := *o
	s.stamp(&in.Party)
	stored, err := s.repo.CreateOwner(ctx, &in)
	if err != nil {
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *recordService) GetOwner(ctx context.Context, id string) (*model.Owner, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	o, err := s.repo.FindOwner(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return o, nil
}

func (s *recordService) CreateLessee(ctx context.Context, l *model.Lessee) (*model.Lessee, error) {
	if l == nil || strings.TrimSpace(l.FullName) == "" {
		return nil, fmt.Errorf("%w: full_name is required", ErrInvalidInput)
	}
	in := *l
	s.stamp(&in.Party)
	stored, err := s.repo.CreateLessee(ctx, &in)
	if err != nil {
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *recordService) GetLessee(ctx context.Context, id string) (*model.Lessee, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	l, err := s.repo.FindLessee(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return l, nil
}

func (s *recordService) CreateRealEstate(ctx context.Context, re *model.RealEstate) (*model.RealEstate, error) {
	if re == nil || strings.TrimSpace(re.OwnerID) == "" {
		return nil, fmt.Errorf("%w: owner_id is required", ErrInvalidInput)
	}
	in := *re
	in.ID = uuid.New().String()
	in.CreatedAt = s.now().UTC()
	if in.Status == "" {
		in.Status = model.RealEstateAvailable
	}
	stored, err := s.repo.CreateRealEstate(ctx, &in)
	if err != nil {
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *recordService) GetRealEstate(ctx context.Context, id string) (*model.RealEstate, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	re, err := s.repo.FindRealEstate(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return re, nil
}

func (s *recordService) stamp(p *model.Party) {
	p.ID = uuid.New().String()
	p.CreatedAt = s.now().UTC()
}
