package archetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicswipe/internal/blueprint"
	"civicswipe/internal/model"
)

func metaSpec() *model.Spec {
	return &model.Spec{
		Version: 1,
		Domains: []model.Domain{
			{ID: "d1", Title: "Domain One", Importance: 10},
		},
		Axes: []model.Axis{
			{ID: "resp", DomainID: "d1", Title: "Responsibility", MetaDimension: model.MetaResponsibility, MetaPolarity: 1},
			{ID: "tempo", DomainID: "d1", Title: "Tempo", MetaDimension: model.MetaChangeTempo, MetaPolarity: 1},
			{ID: "gov", DomainID: "d1", Title: "Governance", MetaDimension: model.MetaGovernance, MetaPolarity: 1},
			{ID: "plain", DomainID: "d1", Title: "Untagged"},
		},
	}
}

func profileWith(t *testing.T, spec *model.Spec, values map[string]int) *model.BlueprintProfile {
	t.Helper()
	p := blueprint.NewDefaultProfile("u1", spec)
	for axisID, v := range values {
		require.NoError(t, blueprint.SetAxisValue(p, axisID, v))
	}
	return p
}

func TestClassifyCornerProfiles(t *testing.T) {
	spec := metaSpec()

	tests := []struct {
		name   string
		values map[string]int // 0 maps to +1 on the dimension, 10 to -1
		want   string
	}{
		{"communal fast participatory", map[string]int{"resp": 0, "tempo": 0, "gov": 0}, "bold_reformer"},
		{"individual slow expert", map[string]int{"resp": 10, "tempo": 10, "gov": 10}, "steady_skeptic"},
		{"communal slow participatory", map[string]int{"resp": 0, "tempo": 10, "gov": 0}, "community_steward"},
		{"communal fast expert", map[string]int{"resp": 0, "tempo": 0, "gov": 10}, "public_modernizer"},
		{"individual fast participatory", map[string]int{"resp": 10, "tempo": 0, "gov": 0}, "civic_entrepreneur"},
		{"individual slow participatory", map[string]int{"resp": 10, "tempo": 10, "gov": 0}, "local_guardian"},
		{"communal slow expert", map[string]int{"resp": 0, "tempo": 10, "gov": 10}, "institution_builder"},
		{"individual fast expert", map[string]int{"resp": 10, "tempo": 0, "gov": 10}, "market_optimist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profileWith(t, spec, tt.values)
			result := Classify(p, spec)

			assert.Equal(t, tt.want, result.Primary.ID)
			assert.NotEqual(t, result.Primary.ID, result.Secondary.ID)
			assert.Greater(t, result.Margin, 0.0)
		})
	}
}

func TestClassifyNeutralProfileIsAmbiguous(t *testing.T) {
	spec := metaSpec()
	p := blueprint.NewDefaultProfile("u1", spec)

	result := Classify(p, spec)

	assert.InDelta(t, 0, result.Vector.Responsibility, 1e-9)
	assert.InDelta(t, 0, result.Vector.ChangeTempo, 1e-9)
	assert.InDelta(t, 0, result.Vector.Governance, 1e-9)
	// all eight centroids are equidistant from the origin
	assert.InDelta(t, 0, result.Margin, 1e-9)
}

func TestReducePolarityFlip(t *testing.T) {
	spec := metaSpec()
	spec.Axes[0].MetaPolarity = -1

	p := profileWith(t, spec, map[string]int{"resp": 0})
	result := Classify(p, spec)

	assert.InDelta(t, -1, result.Vector.Responsibility, 1e-9)
}

func TestReduceIgnoresUntaggedAxes(t *testing.T) {
	spec := metaSpec()

	// an extreme value on the untagged axis must not move the vector
	p := profileWith(t, spec, map[string]int{"plain": 0})
	result := Classify(p, spec)

	assert.InDelta(t, 0, result.Vector.Responsibility, 1e-9)
	assert.InDelta(t, 0, result.Vector.ChangeTempo, 1e-9)
	assert.InDelta(t, 0, result.Vector.Governance, 1e-9)
}

func TestReduceWeightsByImportance(t *testing.T) {
	spec := &model.Spec{
		Version: 1,
		Domains: []model.Domain{
			{ID: "heavy", Importance: 10},
			{ID: "light", Importance: 2},
		},
		Axes: []model.Axis{
			{ID: "r1", DomainID: "heavy", MetaDimension: model.MetaResponsibility, MetaPolarity: 1},
			{ID: "r2", DomainID: "light", MetaDimension: model.MetaResponsibility, MetaPolarity: 1},
		},
	}

	// r1 pulls +1 at weight 1.0, r2 pulls -1 at weight 0.2
	p := profileWith(t, spec, map[string]int{"r1": 0, "r2": 10})
	result := Classify(p, spec)

	assert.InDelta(t, 0.8/1.2, result.Vector.Responsibility, 1e-9)
}

func TestVectorBounds(t *testing.T) {
	spec := metaSpec()

	p := profileWith(t, spec, map[string]int{"resp": 0, "tempo": 10, "gov": 5})
	result := Classify(p, spec)

	for _, v := range []float64{result.Vector.Responsibility, result.Vector.ChangeTempo, result.Vector.Governance} {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestAvgConfidence(t *testing.T) {
	spec := metaSpec()
	p := blueprint.NewDefaultProfile("u1", spec)
	p.Domains[0].Axes[0].Confidence = 0.8
	p.Domains[0].Axes[1].Confidence = 0.4

	result := Classify(p, spec)

	assert.InDelta(t, (0.8+0.4)/4, result.AvgConfidence, 1e-9)
}
