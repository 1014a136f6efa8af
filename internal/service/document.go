package service

import (
	"context"
	"errors"
	"fmt"

	"sogrinha/internal/document"
	"sogrinha/internal/repository"
)

// DocumentService renders contract documents from stored records.
type DocumentService interface {
	// Render loads the contract with its owner, lessee and real estate and renders it.
	// A missing owner record is reported as document.ErrMissingRequiredData.
	Render(ctx context.Context, contractID string, format document.Format) (*document.Rendered, error)
}

type documentService struct {
	repo repository.RecordRepository
	gen  *document.Generator
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(repo repository.RecordRepository, gen *document.Generator) DocumentService {
	return &documentService{repo: repo, gen: gen}
}

func (s *documentService) Render(ctx context.Context, contractID string, format document.Format) (*document.Rendered, error) {
	if contractID == "" {
		return nil, ErrIDRequired
	}
	data, err := s.load(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return s.gen.Generate(*data, format)
}

func (s *documentService) load(ctx context.Context, contractID string) (*document.ContractData, error) {
	c, err := s.repo.FindContract(ctx, contractID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	data := &document.ContractData{Contract: *c}

	if c.OwnerID == "" {
		return nil, fmt.Errorf("%w: contract has no owner", document.ErrMissingRequiredData)
	}
	owner, err := s.repo.FindOwner(ctx, c.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: owner %s not found", document.ErrMissingRequiredData, c.OwnerID)
		}
		return nil, fmt.Errorf("load owner: %w", err)
	}
	data.Owner = owner

	// Lessee and real estate are optional; the template prints blanks for them.
	if c.LesseeID != "" {
		l, err := s.repo.FindLessee(ctx, c.LesseeID)
		switch {
		case err == nil:
			data.Lessee = l
		case !errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("load lessee: %w", err)
		}
	}
	if c.RealEstateID != "" {
		re, err := s.repo.FindRealEstate(ctx, c.RealEstateID)
		switch {
		case err == nil:
			data.RealEstate = re
		case !errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("load real estate: %w", err)
		}
	}
	return data, nil
}
