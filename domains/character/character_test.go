package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/condax/axis"
	"github.com/teranos/condax/errors"
)

func TestGenerate_Seed42Reproducible(t *testing.T) {
	first, err := Generate(axis.WithSeed(42))
	require.NoError(t, err)
	second, err := Generate(axis.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, first.Pairs(), second.Pairs())
	assert.Equal(t, first.Prompt(), second.Prompt())
	assert.NotEmpty(t, first.Prompt())
}

func TestGenerate_Invariants(t *testing.T) {
	optional := map[string]bool{Health: true, Demeanor: true, Age: true, FacialSignal: true}

	for seed := int64(0); seed < 1000; seed++ {
		c, err := Generate(axis.WithSeed(seed))
		require.NoError(t, err)

		// wealth is never a blocked axis, so it always survives
		assert.True(t, c.Has(Wealth), "seed %d", seed)

		if !c.Has(Physique) {
			// only decadent wealth or hale health can remove physique
			assert.True(t, c.Value(Wealth) == "decadent" || c.Value(Health) == "hale", "seed %d: %s", seed, c)
		}

		n := 0
		for name, value := range c.All() {
			if optional[name] {
				n++
			}
			values, err := AxisValues(name)
			require.NoError(t, err)
			assert.Contains(t, values, value)
		}
		assert.LessOrEqual(t, n, 2, "seed %d", seed)

		for _, r := range Domain().Rules() {
			if c.Value(r.When.Axis) != r.When.Value {
				continue
			}
			for _, b := range r.Block {
				v, ok := c.Get(b.Axis)
				assert.False(t, ok && b.Contains(v), "seed %d: %s violates %s", seed, c, r)
			}
		}
	}
}

func TestGenerate_DecadentNeverSickly(t *testing.T) {
	for seed := int64(0); seed < 3000; seed++ {
		c, err := Generate(axis.WithSeed(seed))
		require.NoError(t, err)
		if c.Value(Wealth) == "decadent" {
			assert.NotEqual(t, "sickly", c.Value(Health))
			assert.NotEqual(t, "frail", c.Value(Physique))
		}
	}
}

func TestGenerate_WealthDistribution(t *testing.T) {
	counts := map[string]int{}
	for seed := int64(0); seed < 1000; seed++ {
		c, err := Generate(axis.WithSeed(seed))
		require.NoError(t, err)
		counts[c.Value(Wealth)]++
	}
	assert.Greater(t, counts["poor"], counts["decadent"])
}

func TestAvailableAxes(t *testing.T) {
	assert.Equal(t, []string{"physique", "wealth", "health", "demeanor", "age", "facial_signal"}, AvailableAxes())

	values, err := AxisValues(Age)
	require.NoError(t, err)
	assert.Equal(t, []string{"young", "middle-aged", "old", "ancient"}, values)

	_, err = AxisValues("mood")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDomain_Tables(t *testing.T) {
	d := Domain()
	assert.Equal(t, Name, d.Name())
	assert.Equal(t, []string{Physique, Wealth}, d.Policy().Mandatory)
	assert.Equal(t, 2, d.Policy().MaxOptional)
	assert.Len(t, d.Rules(), 6)
	assert.Equal(t, 0.5, d.Weights(Wealth)["decadent"])
	assert.Nil(t, d.Weights(Health))
}
