package service

import (
	"context"
	"fmt"

	"civicswipe/internal/archetype"
	"civicswipe/internal/blueprint"
	"civicswipe/internal/cache"
	"civicswipe/internal/model"
	"civicswipe/internal/repository"
)

// BlueprintService owns reads and manual edits of the user's blueprint.
// All edit semantics (sticky user edits, lock/freeze, reset-to-learned)
// live in the blueprint package; this service adds persistence, caching,
// and push notifications around them.
type BlueprintService struct {
	specSvc      *SpecService
	profileRepo  repository.ProfileRepo
	profileCache cache.ProfileCache
	broadcaster  Broadcaster
}

// NewBlueprintService creates a new blueprint service
func NewBlueprintService(specSvc *SpecService, profileRepo repository.ProfileRepo, profileCache cache.ProfileCache) *BlueprintService {
	return &BlueprintService{
		specSvc:      specSvc,
		profileRepo:  profileRepo,
		profileCache: profileCache,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *BlueprintService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// GetProfile returns the user's blueprint, seeding the default from the
// spec on first access
func (s *BlueprintService) GetProfile(ctx context.Context, userID string) (*model.BlueprintProfile, error) {
	profile, err := s.profileCache.Get(ctx, userID)
	if err == nil && profile != nil {
		return profile, nil
	}

	profile, err = s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		spec, err := s.specSvc.Get(ctx)
		if err != nil {
			return nil, err
		}
		profile = blueprint.NewDefaultProfile(userID, spec)
		if err := s.save(ctx, profile); err != nil {
			return nil, err
		}
	} else if err := s.profileCache.Set(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to cache profile: %w", err)
	}
	return profile, nil
}

// UpdateAxis applies a manual stance edit
func (s *BlueprintService) UpdateAxis(ctx context.Context, userID, axisID string, value int) (*model.BlueprintProfile, error) {
	return s.mutate(ctx, userID, func(p *model.BlueprintProfile) error {
		return blueprint.SetAxisValue(p, axisID, value)
	})
}

// LockAxis toggles the lock on an axis
func (s *BlueprintService) LockAxis(ctx context.Context, userID, axisID string, locked bool) (*model.BlueprintProfile, error) {
	return s.mutate(ctx, userID, func(p *model.BlueprintProfile) error {
		return blueprint.SetAxisLocked(p, axisID, locked)
	})
}

// ResetAxis discards a manual edit and restores the learned estimate
func (s *BlueprintService) ResetAxis(ctx context.Context, userID, axisID string) (*model.BlueprintProfile, error) {
	return s.mutate(ctx, userID, func(p *model.BlueprintProfile) error {
		return blueprint.ResetAxisToLearned(p, axisID)
	})
}

// UpdateImportance sets a domain's importance weight
func (s *BlueprintService) UpdateImportance(ctx context.Context, userID, domainID string, importance int) (*model.BlueprintProfile, error) {
	return s.mutate(ctx, userID, func(p *model.BlueprintProfile) error {
		return blueprint.SetDomainImportance(p, domainID, importance)
	})
}

// Archetype classifies the user's blueprint into one of the eight civic
// styles
func (s *BlueprintService) Archetype(ctx context.Context, userID string) (*model.ArchetypeResult, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	spec, err := s.specSvc.Get(ctx)
	if err != nil {
		return nil, err
	}
	return archetype.Classify(profile, spec), nil
}

// UserAxes flattens the profile for the recommendation engine
func (s *BlueprintService) UserAxes(ctx context.Context, userID string) (map[string]model.UserAxis, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	spec, err := s.specSvc.Get(ctx)
	if err != nil {
		return nil, err
	}
	return blueprint.UserAxes(profile, spec), nil
}

func (s *BlueprintService) mutate(ctx context.Context, userID string, edit func(*model.BlueprintProfile) error) (*model.BlueprintProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := edit(profile); err != nil {
		return nil, err
	}
	if err := s.save(ctx, profile); err != nil {
		return nil, err
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(userID, MsgBlueprintUpdated, profile)
	}
	return profile, nil
}

func (s *BlueprintService) save(ctx context.Context, profile *model.BlueprintProfile) error {
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	if err := s.profileCache.Set(ctx, profile); err != nil {
		return fmt.Errorf("failed to cache profile: %w", err)
	}
	return nil
}
