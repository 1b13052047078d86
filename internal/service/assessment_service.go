package service

import (
	"context"
	"errors"
	"fmt"

	"civicswipe/internal/blueprint"
	"civicswipe/internal/cache"
	"civicswipe/internal/config"
	"civicswipe/internal/model"
	"civicswipe/internal/repository"
	"civicswipe/internal/scoring"
)

var (
	ErrInvalidResponse = errors.New("unknown swipe response")
	ErrUnknownItem     = errors.New("item not in current spec")
)

// AssessmentService runs the swipe loop: record the response, rescore
// the full log, fold the scores into the blueprint, and pick the next
// question. Scoring is always a fresh fold over every swipe to date so
// the profile can never drift from the log.
type AssessmentService struct {
	specSvc        *SpecService
	swipeRepo      repository.SwipeRepo
	profileRepo    repository.ProfileRepo
	assessCache    cache.AssessmentCache
	profileCache   cache.ProfileCache
	strategy       scoring.Strategy
	linearStrategy scoring.Strategy
	cfg            *config.ScoringConfig
	broadcaster    Broadcaster
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	specSvc *SpecService,
	swipeRepo repository.SwipeRepo,
	profileRepo repository.ProfileRepo,
	assessCache cache.AssessmentCache,
	profileCache cache.ProfileCache,
	cfg *config.ScoringConfig,
) *AssessmentService {
	return &AssessmentService{
		specSvc:        specSvc,
		swipeRepo:      swipeRepo,
		profileRepo:    profileRepo,
		assessCache:    assessCache,
		profileCache:   profileCache,
		strategy:       scoring.NewAdaptiveStrategy(cfg),
		linearStrategy: scoring.NewLinearStrategy(),
		cfg:            cfg,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// WebSocket message types pushed during the assessment
const (
	MsgNextQuestion       = "next_question"
	MsgAssessmentComplete = "assessment_complete"
	MsgBlueprintUpdated   = "blueprint_updated"
)

// SubmitSwipe records one response and returns the next question (or
// the done state). A nil question with Done set is the normal end of the
// assessment, not an error.
func (s *AssessmentService) SubmitSwipe(ctx context.Context, userID string, req *model.SubmitSwipeRequest) (*model.NextQuestionResponse, error) {
	if !req.Response.Valid() {
		return nil, ErrInvalidResponse
	}
	spec, err := s.specSvc.Get(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := spec.ItemIndex()[req.ItemID]; !ok {
		return nil, ErrUnknownItem
	}

	event := &model.SwipeEvent{
		UserID:   userID,
		ItemID:   req.ItemID,
		Response: req.Response,
	}
	if err := s.swipeRepo.Append(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to record swipe: %w", err)
	}
	if err := s.assessCache.AddAnswered(ctx, userID, req.ItemID); err != nil {
		return nil, fmt.Errorf("failed to update answered set: %w", err)
	}

	swipes, err := s.swipeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read swipe log: %w", err)
	}
	scores := scoring.ScoreAxes(spec, swipes, s.cfg)

	profile, err := s.loadOrCreateProfile(ctx, userID, spec)
	if err != nil {
		return nil, err
	}
	blueprint.ApplyScores(profile, scores)
	if err := s.saveProfile(ctx, profile); err != nil {
		return nil, err
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(userID, MsgBlueprintUpdated, profile)
	}

	answered := answeredFromLog(swipes)
	resp := s.advance(spec, scores, answered, nil)
	if s.broadcaster != nil {
		if resp.Progress.Done {
			s.broadcaster.BroadcastToUser(userID, MsgAssessmentComplete, resp.Progress)
		} else {
			s.broadcaster.BroadcastToUser(userID, MsgNextQuestion, resp.Question)
		}
	}
	return resp, nil
}

// Selection strategy names accepted from clients
const (
	StrategyAdaptive = "adaptive"
	StrategyLinear   = "linear"
)

// NextQuestion serves the question poll without recording anything. The
// answered set comes from the Redis mirror, rebuilt from the Mongo log
// when the mirror has expired. Clients may ask for the fixed-order
// linear flow instead of the adaptive selector.
func (s *AssessmentService) NextQuestion(ctx context.Context, userID string, domainFilter []string, strategyName string) (*model.NextQuestionResponse, error) {
	spec, err := s.specSvc.Get(ctx)
	if err != nil {
		return nil, err
	}

	answered, err := s.assessCache.GetAnswered(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read answered set: %w", err)
	}
	swipes, err := s.swipeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read swipe log: %w", err)
	}
	if len(answered) == 0 && len(swipes) > 0 {
		answered = answeredFromLog(swipes)
		ids := make([]string, 0, len(answered))
		for id := range answered {
			ids = append(ids, id)
		}
		if err := s.assessCache.Rebuild(ctx, userID, ids); err != nil {
			return nil, fmt.Errorf("failed to rebuild answered set: %w", err)
		}
	}

	strategy := s.strategy
	if strategyName == StrategyLinear {
		strategy = s.linearStrategy
	}
	scores := scoring.ScoreAxes(spec, swipes, s.cfg)
	return s.advanceWith(strategy, spec, scores, answered, domainFilter), nil
}

// Restart wipes the user's swipe log and resets the blueprint to the
// spec defaults
func (s *AssessmentService) Restart(ctx context.Context, userID string) error {
	spec, err := s.specSvc.Get(ctx)
	if err != nil {
		return err
	}
	if err := s.swipeRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear swipe log: %w", err)
	}
	if err := s.assessCache.Clear(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear answered set: %w", err)
	}
	profile := blueprint.NewDefaultProfile(userID, spec)
	return s.saveProfile(ctx, profile)
}

// advance runs the stop check and, when the loop continues, the
// selection strategy
func (s *AssessmentService) advance(spec *model.Spec, scores map[string]*model.AxisScore, answered map[string]bool, domainFilter []string) *model.NextQuestionResponse {
	return s.advanceWith(s.strategy, spec, scores, answered, domainFilter)
}

func (s *AssessmentService) advanceWith(strategy scoring.Strategy, spec *model.Spec, scores map[string]*model.AxisScore, answered map[string]bool, domainFilter []string) *model.NextQuestionResponse {
	resp := &model.NextQuestionResponse{
		Progress: model.AssessmentProgress{
			QuestionsAnswered: len(answered),
			MinQuestions:      s.cfg.MinQuestions,
			MaxQuestions:      s.cfg.MaxQuestions,
		},
	}

	stop, reason := scoring.ShouldStop(scores, len(answered), s.cfg)
	if stop {
		resp.Progress.Done = true
		resp.Progress.StopReason = reason
		return resp
	}

	item := strategy.NextItem(spec, scores, answered, domainFilter)
	if item == nil {
		// Item bank exhausted: terminal, same as a confident stop
		resp.Progress.Done = true
		return resp
	}
	resp.Question = item
	return resp
}

func (s *AssessmentService) loadOrCreateProfile(ctx context.Context, userID string, spec *model.Spec) (*model.BlueprintProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		profile = blueprint.NewDefaultProfile(userID, spec)
	}
	return profile, nil
}

func (s *AssessmentService) saveProfile(ctx context.Context, profile *model.BlueprintProfile) error {
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	if err := s.profileCache.Set(ctx, profile); err != nil {
		return fmt.Errorf("failed to cache profile: %w", err)
	}
	return nil
}

func answeredFromLog(swipes []model.SwipeEvent) map[string]bool {
	answered := make(map[string]bool, len(swipes))
	for _, sw := range swipes {
		answered[sw.ItemID] = true
	}
	return answered
}
