package service

import (
	"context"
	"errors"
	"fmt"

	"civicswipe/internal/cache"
	"civicswipe/internal/model"
	"civicswipe/internal/repository"
)

var ErrSpecNotFound = errors.New("no assessment spec loaded")

// SpecService serves the immutable assessment spec, Redis-cached in
// front of Mongo. Every other service resolves domains, axes, and items
// against whatever spec this returns; nothing else hard-codes ids.
type SpecService struct {
	specRepo  repository.SpecRepo
	specCache cache.SpecCache
}

// NewSpecService creates a new spec service
func NewSpecService(specRepo repository.SpecRepo, specCache cache.SpecCache) *SpecService {
	return &SpecService{
		specRepo:  specRepo,
		specCache: specCache,
	}
}

// Get returns the latest spec, filling the cache on a miss
func (s *SpecService) Get(ctx context.Context) (*model.Spec, error) {
	spec, err := s.specCache.Get(ctx)
	if err == nil && spec != nil {
		return spec, nil
	}

	spec, err = s.specRepo.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load spec: %w", err)
	}
	if spec == nil {
		return nil, ErrSpecNotFound
	}

	// Cache failures are not fatal; the next read retries
	_ = s.specCache.Set(ctx, spec)
	return spec, nil
}

// Publish stores a new spec version and invalidates the cache
func (s *SpecService) Publish(ctx context.Context, spec *model.Spec) error {
	if err := s.specRepo.Insert(ctx, spec); err != nil {
		return fmt.Errorf("failed to store spec: %w", err)
	}
	return s.specCache.Invalidate(ctx)
}
