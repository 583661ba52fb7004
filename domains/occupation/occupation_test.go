package occupation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/condax/axis"
	"github.com/teranos/condax/errors"
)

func TestGenerate_Reproducible(t *testing.T) {
	a, err := Generate(axis.WithSeed(42))
	require.NoError(t, err)
	b, err := Generate(axis.WithSeed(42))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestGenerate_NoIllicitConspicuous(t *testing.T) {
	for seed := int64(0); seed < 2000; seed++ {
		o, err := Generate(axis.WithSeed(seed))
		require.NoError(t, err)

		if o.Value(Legitimacy) == "illicit" {
			assert.NotEqual(t, "conspicuous", o.Value(Visibility), "seed %d", seed)
		}
		if o.Value(Legitimacy) == "sanctioned" {
			assert.NotEqual(t, "hidden", o.Value(Visibility), "seed %d", seed)
		}
		if o.Value(Visibility) == "hidden" {
			assert.NotEqual(t, "unavoidable", o.Value(Dependency), "seed %d", seed)
		}
		if o.Value(RiskExposure) == "eroding" {
			assert.NotEqual(t, "neutral", o.Value(MoralLoad), "seed %d", seed)
		}
		assert.LessOrEqual(t, o.Len(), 4)
	}
}

func TestExclusions_LegitimacyRuleWinsOverVisibility(t *testing.T) {
	rules := Domain().Rules()

	sel := axis.NewSelection()
	sel.Set(Legitimacy, "illicit")
	sel.Set(Visibility, "conspicuous")
	assert.Equal(t, 1, axis.ApplyExclusions(sel, rules))
	assert.Equal(t, []string{Legitimacy}, sel.Snapshot().Axes())

	sel = axis.NewSelection()
	sel.Set(Legitimacy, "sanctioned")
	sel.Set(Visibility, "hidden")
	sel.Set(Dependency, "unavoidable")
	// the visibility=hidden rule never fires once visibility is gone
	assert.Equal(t, 1, axis.ApplyExclusions(sel, rules))
	assert.Equal(t, "sanctioned, unavoidable", sel.Snapshot().Prompt())
}

func TestAvailableAxes(t *testing.T) {
	assert.Equal(t, []string{"legitimacy", "visibility", "moral_load", "dependency", "risk_exposure"}, AvailableAxes())

	values, err := AxisValues(RiskExposure)
	require.NoError(t, err)
	assert.Equal(t, []string{"benign", "straining", "hazardous", "eroding"}, values)

	_, err = AxisValues("salary")
	assert.True(t, errors.IsNotFoundError(err))
}
