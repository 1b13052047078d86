package archetype

import (
	"math"

	"civicswipe/internal/model"
)

// The eight civic-style archetypes. Centroid components follow the
// meta-dimension conventions:
//
//	Responsibility: +1 communal, -1 individual
//	ChangeTempo:    +1 rapid reform, -1 incremental
//	Governance:     +1 participatory, -1 expert-led
var Archetypes = []model.Archetype{
	{
		ID: "community_steward", Name: "Community Steward", Emoji: "🤝",
		Traits:   []string{"communal", "incremental", "participatory"},
		Summary:  "Strengthens shared institutions patiently, with neighbors at the table.",
		Centroid: model.MetaVector{Responsibility: 0.7, ChangeTempo: -0.7, Governance: 0.7},
	},
	{
		ID: "bold_reformer", Name: "Bold Reformer", Emoji: "🔥",
		Traits:   []string{"communal", "fast-moving", "participatory"},
		Summary:  "Pushes sweeping collective change driven from the grassroots.",
		Centroid: model.MetaVector{Responsibility: 0.7, ChangeTempo: 0.7, Governance: 0.7},
	},
	{
		ID: "institution_builder", Name: "Institution Builder", Emoji: "🏛️",
		Traits:   []string{"communal", "incremental", "expert-led"},
		Summary:  "Trusts durable public institutions and careful professional stewardship.",
		Centroid: model.MetaVector{Responsibility: 0.7, ChangeTempo: -0.7, Governance: -0.7},
	},
	{
		ID: "public_modernizer", Name: "Public Modernizer", Emoji: "⚙️",
		Traits:   []string{"communal", "fast-moving", "expert-led"},
		Summary:  "Wants government to act big and act now, guided by specialists.",
		Centroid: model.MetaVector{Responsibility: 0.7, ChangeTempo: 0.7, Governance: -0.7},
	},
	{
		ID: "local_guardian", Name: "Local Guardian", Emoji: "🏡",
		Traits:   []string{"individual", "incremental", "participatory"},
		Summary:  "Defends local control and personal liberty against distant mandates.",
		Centroid: model.MetaVector{Responsibility: -0.7, ChangeTempo: -0.7, Governance: 0.7},
	},
	{
		ID: "civic_entrepreneur", Name: "Civic Entrepreneur", Emoji: "🚀",
		Traits:   []string{"individual", "fast-moving", "participatory"},
		Summary:  "Bets on bottom-up experimentation over top-down programs.",
		Centroid: model.MetaVector{Responsibility: -0.7, ChangeTempo: 0.7, Governance: 0.7},
	},
	{
		ID: "steady_skeptic", Name: "Steady Skeptic", Emoji: "⚖️",
		Traits:   []string{"individual", "incremental", "expert-led"},
		Summary:  "Prefers proven rules, restrained government, and predictable change.",
		Centroid: model.MetaVector{Responsibility: -0.7, ChangeTempo: -0.7, Governance: -0.7},
	},
	{
		ID: "market_optimist", Name: "Market Optimist", Emoji: "📈",
		Traits:   []string{"individual", "fast-moving", "expert-led"},
		Summary:  "Backs rapid, technocratic change that widens individual opportunity.",
		Centroid: model.MetaVector{Responsibility: -0.7, ChangeTempo: 0.7, Governance: -0.7},
	},
}

// Classify reduces the blueprint to the 3 meta-dimensions and
// nearest-centroid classifies it. Axis membership in a meta-dimension
// comes from the spec data, never from hard-coded axis ids. Margin is
// the distance gap to the runner-up; AvgConfidence is the plain mean of
// all axis confidences, reported separately.
func Classify(p *model.BlueprintProfile, spec *model.Spec) *model.ArchetypeResult {
	vector := reduce(p, spec)

	type scored struct {
		arch model.Archetype
		dist float64
	}
	best := scored{dist: math.MaxFloat64}
	second := scored{dist: math.MaxFloat64}
	for _, arch := range Archetypes {
		d := distance(vector, arch.Centroid)
		if d < best.dist {
			second = best
			best = scored{arch: arch, dist: d}
		} else if d < second.dist {
			second = scored{arch: arch, dist: d}
		}
	}

	return &model.ArchetypeResult{
		Primary:       best.arch,
		Secondary:     second.arch,
		Margin:        second.dist - best.dist,
		Vector:        vector,
		AvgConfidence: avgConfidence(p),
	}
}

// reduce computes each meta-dimension as the importance-weighted mean of
// its member axes. Axis values map to [-1,+1] via (5-v)/5, flipped by
// the axis's declared polarity.
func reduce(p *model.BlueprintProfile, spec *model.Spec) model.MetaVector {
	sums := map[string]float64{}
	weights := map[string]float64{}

	for _, ax := range spec.Axes {
		if ax.MetaDimension == "" {
			continue
		}
		ap := p.Axis(ax.ID)
		if ap == nil {
			continue
		}
		dp := p.Domain(ax.DomainID)
		if dp == nil {
			continue
		}
		weight := float64(dp.Importance) / 10
		if weight == 0 {
			continue
		}
		polarity := float64(ax.MetaPolarity)
		if polarity == 0 {
			polarity = 1
		}
		score := (5 - float64(ap.Value)) / 5 * polarity
		sums[ax.MetaDimension] += score * weight
		weights[ax.MetaDimension] += weight
	}

	mean := func(dim string) float64 {
		if weights[dim] == 0 {
			return 0
		}
		return sums[dim] / weights[dim]
	}
	return model.MetaVector{
		Responsibility: mean(model.MetaResponsibility),
		ChangeTempo:    mean(model.MetaChangeTempo),
		Governance:     mean(model.MetaGovernance),
	}
}

func distance(a, b model.MetaVector) float64 {
	dr := a.Responsibility - b.Responsibility
	dt := a.ChangeTempo - b.ChangeTempo
	dg := a.Governance - b.Governance
	return math.Sqrt(dr*dr + dt*dt + dg*dg)
}

func avgConfidence(p *model.BlueprintProfile) float64 {
	sum := 0.0
	n := 0
	for _, d := range p.Domains {
		for _, ax := range d.Axes {
			sum += ax.Confidence
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
