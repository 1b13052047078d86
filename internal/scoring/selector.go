package scoring

import (
	"civicswipe/internal/config"
	"civicswipe/internal/model"
)

// Strategy picks the next assessment item to show, or nil when no
// candidate remains. A nil result is the normal "assessment complete"
// outcome, not an error. Implementations never return an item whose id
// is already in answered.
type Strategy interface {
	NextItem(spec *model.Spec, scores map[string]*model.AxisScore, answered map[string]bool, domainFilter []string) *model.Item
}

// AdaptiveStrategy drives the question loop in three phases keyed on the
// number of questions answered so far:
//
//  1. coverage: spread questions across underrepresented domains
//  2. precision: target axes that are still uncertain
//  3. information maximization: generic fallback scoring
//
// The first phase that yields a candidate wins.
type AdaptiveStrategy struct {
	cfg *config.ScoringConfig
}

// NewAdaptiveStrategy creates the scorer-driven selector
func NewAdaptiveStrategy(cfg *config.ScoringConfig) *AdaptiveStrategy {
	return &AdaptiveStrategy{cfg: cfg}
}

func (s *AdaptiveStrategy) NextItem(spec *model.Spec, scores map[string]*model.AxisScore, answered map[string]bool, domainFilter []string) *model.Item {
	candidates := candidateItems(spec, answered, domainFilter)
	if len(candidates) == 0 {
		return nil
	}

	asked := len(answered)
	if asked < s.cfg.CoveragePhaseEnd {
		if item := s.coveragePick(spec, candidates, answered); item != nil {
			return item
		}
	}
	if asked < s.cfg.PrecisionPhaseEnd {
		if item := s.precisionPick(spec, candidates, scores); item != nil {
			return item
		}
	}
	return s.informationPick(spec, candidates, scores)
}

// coveragePick restricts candidates to items touching a domain that has
// seen fewer questions than average+1, preferring items that touch the
// most axes.
func (s *AdaptiveStrategy) coveragePick(spec *model.Spec, candidates []*model.Item, answered map[string]bool) *model.Item {
	if len(spec.Domains) == 0 {
		return nil
	}
	axes := spec.AxisIndex()
	items := spec.ItemIndex()

	counts := make(map[string]int, len(spec.Domains))
	total := 0
	for itemID := range answered {
		item, ok := items[itemID]
		if !ok {
			continue
		}
		seen := make(map[string]bool)
		for axisID := range item.AxisKeys {
			ax, ok := axes[axisID]
			if !ok || seen[ax.DomainID] {
				continue
			}
			seen[ax.DomainID] = true
			counts[ax.DomainID]++
			total++
		}
	}
	avg := float64(total) / float64(len(spec.Domains))

	under := make(map[string]bool)
	for _, d := range spec.Domains {
		if float64(counts[d.ID]) < avg+1 {
			under[d.ID] = true
		}
	}

	var best *model.Item
	bestAxes := 0
	for _, item := range candidates {
		touchesUnder := false
		touched := 0
		for axisID := range item.AxisKeys {
			ax, ok := axes[axisID]
			if !ok {
				continue
			}
			touched++
			if under[ax.DomainID] {
				touchesUnder = true
			}
		}
		if touchesUnder && touched > bestAxes {
			best = item
			bestAxes = touched
		}
	}
	return best
}

// precisionPick targets axes whose estimate is still uncertain,
// preferring items that touch the most uncertain axes.
func (s *AdaptiveStrategy) precisionPick(spec *model.Spec, candidates []*model.Item, scores map[string]*model.AxisScore) *model.Item {
	uncertain := make(map[string]bool)
	for axisID, score := range scores {
		if score.Confidence < s.cfg.UncertainConfidence || score.NAnswered < s.cfg.UncertainMinAnswers {
			uncertain[axisID] = true
		}
	}

	var best *model.Item
	bestHits := 0
	for _, item := range candidates {
		hits := 0
		for axisID := range item.AxisKeys {
			if uncertain[axisID] {
				hits++
			}
		}
		if hits > bestHits {
			best = item
			bestHits = hits
		}
	}
	return best
}

// informationPick is the fallback: +2 per touched axis, +3 per axis with
// thin evidence, +2 per axis that has answers but low confidence.
func (s *AdaptiveStrategy) informationPick(spec *model.Spec, candidates []*model.Item, scores map[string]*model.AxisScore) *model.Item {
	var best *model.Item
	bestScore := -1
	for _, item := range candidates {
		value := 0
		for axisID := range item.AxisKeys {
			score, ok := scores[axisID]
			if !ok {
				continue
			}
			value += 2
			if score.NAnswered < s.cfg.UncertainMinAnswers {
				value += 3
			} else if score.Confidence < s.cfg.UncertainConfidence {
				value += 2
			}
		}
		if value > bestScore {
			best = item
			bestScore = value
		}
	}
	return best
}

// LinearStrategy is the simple fixed-flow alternative: items are shown
// in spec order, skipping anything already answered.
type LinearStrategy struct{}

// NewLinearStrategy creates the fixed-order selector
func NewLinearStrategy() *LinearStrategy {
	return &LinearStrategy{}
}

func (s *LinearStrategy) NextItem(spec *model.Spec, scores map[string]*model.AxisScore, answered map[string]bool, domainFilter []string) *model.Item {
	candidates := candidateItems(spec, answered, domainFilter)
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}

// candidateItems filters the item bank to unanswered items, optionally
// restricted to items touching at least one axis in the given domains.
// Order follows the spec's item order so ties stay deterministic.
func candidateItems(spec *model.Spec, answered map[string]bool, domainFilter []string) []*model.Item {
	var allowed map[string]bool
	if len(domainFilter) > 0 {
		allowed = make(map[string]bool, len(domainFilter))
		for _, d := range domainFilter {
			allowed[d] = true
		}
	}
	axes := spec.AxisIndex()

	var out []*model.Item
	for i := range spec.Items {
		item := &spec.Items[i]
		if answered[item.ID] {
			continue
		}
		if allowed != nil {
			inDomain := false
			for axisID := range item.AxisKeys {
				if ax, ok := axes[axisID]; ok && allowed[ax.DomainID] {
					inDomain = true
					break
				}
			}
			if !inDomain {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// Stop reasons reported alongside ShouldStop
const (
	StopReasonMaxQuestions = "max_questions"
	StopReasonConfident    = "confident"
)

// ShouldStop decides whether the assessment loop can end. It never stops
// below MinQuestions, always stops at MaxQuestions, and in between stops
// only once every axis with any answers has at least StopMinAnswers and
// confidence at or above StopConfidence.
func ShouldStop(scores map[string]*model.AxisScore, totalQuestions int, cfg *config.ScoringConfig) (bool, string) {
	if totalQuestions >= cfg.MaxQuestions {
		return true, StopReasonMaxQuestions
	}
	if totalQuestions < cfg.MinQuestions {
		return false, ""
	}

	scored := 0
	for _, score := range scores {
		if score.NAnswered == 0 {
			continue
		}
		scored++
		if score.NAnswered < cfg.StopMinAnswers || score.Confidence < cfg.StopConfidence {
			return false, ""
		}
	}
	if scored == 0 {
		return false, ""
	}
	return true, StopReasonConfident
}
