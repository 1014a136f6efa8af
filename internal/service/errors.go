package service

import (
	"errors"

	"sogrinha/internal/repository"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
)

// mapRepoErr hides repository sentinels behind service ones.
func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
