package axis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// personAxes is a compact character-style table used across the package tests
var personAxes = []Axis{
	{Name: "physique", Values: []string{"skinny", "wiry", "stocky", "frail", "broad"}},
	{Name: "wealth", Values: []string{"poor", "modest", "wealthy", "decadent"}},
	{Name: "health", Values: []string{"sickly", "weary", "hale"}},
	{Name: "demeanor", Values: []string{"timid", "alert", "proud"}},
	{Name: "age", Values: []string{"young", "old", "ancient"}},
}

var personWeights = Weights{
	"wealth": {"poor": 4.0, "modest": 3.0, "wealthy": 1.0, "decadent": 0.5},
}

var personPolicy = Policy{
	Mandatory:   []string{"physique", "wealth"},
	Optional:    []string{"health", "demeanor", "age"},
	MaxOptional: 2,
}

var personRules = []Rule{
	Exclude("wealth", "decadent", Blocks("physique", "frail"), Blocks("health", "sickly")),
	Exclude("age", "ancient", Blocks("demeanor", "timid")),
	Exclude("physique", "broad", Blocks("health", "sickly")),
	Exclude("health", "hale", Blocks("physique", "frail")),
}

func newPersonDomain(t testing.TB) *Domain {
	t.Helper()
	d, err := NewDomain("person", personAxes, personWeights, personPolicy, personRules)
	require.NoError(t, err)
	return d
}

// violations lists every rule whose trigger and blocked value coexist in a
func violations(a Assignment, rules []Rule) []string {
	var out []string
	for _, r := range rules {
		if a.Value(r.When.Axis) != r.When.Value {
			continue
		}
		for _, b := range r.Block {
			if v, ok := a.Get(b.Axis); ok && b.Contains(v) {
				out = append(out, r.When.String()+" with "+b.Axis+"="+v)
			}
		}
	}
	return out
}
