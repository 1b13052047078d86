package service

import (
	"context"
	"errors"
	"fmt"

	"civicswipe/internal/config"
	"civicswipe/internal/model"
	"civicswipe/internal/recommend"
	"civicswipe/internal/repository"
)

var (
	ErrBallotItemNotFound = errors.New("ballot item not found")
	ErrWrongItemType      = errors.New("operation does not apply to this ballot item type")
)

// BallotService serves elections and ballot items and evaluates them
// against the caller's blueprint. Recommendations are recomputed per
// request from the item and the profile; nothing is stored.
type BallotService struct {
	ballotRepo   repository.BallotRepo
	blueprintSvc *BlueprintService
	cfg          *config.ScoringConfig
}

// NewBallotService creates a new ballot service
func NewBallotService(ballotRepo repository.BallotRepo, blueprintSvc *BlueprintService, cfg *config.ScoringConfig) *BallotService {
	return &BallotService{
		ballotRepo:   ballotRepo,
		blueprintSvc: blueprintSvc,
		cfg:          cfg,
	}
}

// Elections lists known elections
func (s *BallotService) Elections(ctx context.Context) ([]*model.Election, error) {
	return s.ballotRepo.GetElections(ctx)
}

// Items lists the ballot items of one election
func (s *BallotService) Items(ctx context.Context, electionID string) ([]*model.BallotItem, error) {
	return s.ballotRepo.GetItemsByElection(ctx, electionID)
}

// Recommendation evaluates a proposition for the user
func (s *BallotService) Recommendation(ctx context.Context, userID, itemID string) (*model.PropositionRecommendation, error) {
	item, axes, err := s.load(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	switch item.Type {
	case model.BallotProposition:
		return recommend.Proposition(item, axes, s.cfg), nil
	case model.BallotCandidateRace:
		return nil, ErrWrongItemType
	default:
		return nil, fmt.Errorf("unknown ballot item type %q", item.Type)
	}
}

// Matches ranks the candidates of a race for the user
func (s *BallotService) Matches(ctx context.Context, userID, itemID string) ([]model.CandidateMatch, error) {
	item, axes, err := s.load(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	switch item.Type {
	case model.BallotCandidateRace:
		return recommend.CandidateMatches(item, axes, s.cfg), nil
	case model.BallotProposition:
		return nil, ErrWrongItemType
	default:
		return nil, fmt.Errorf("unknown ballot item type %q", item.Type)
	}
}

func (s *BallotService) load(ctx context.Context, userID, itemID string) (*model.BallotItem, map[string]model.UserAxis, error) {
	item, err := s.ballotRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ballot item: %w", err)
	}
	if item == nil {
		return nil, nil, ErrBallotItemNotFound
	}
	axes, err := s.blueprintSvc.UserAxes(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return item, axes, nil
}
