// Package character holds the character condition tables: physique, wealth,
// health, demeanor, age and facial signal.
//
// Physique and wealth are always sampled. Up to two of the remaining axes
// add detail. Weights skew toward a poor, survival-built population.
package character

import (
	"github.com/teranos/condax/axis"
)

// Name is the registry name of the character domain
const Name = "character"

// Axis names
const (
	Physique     = "physique"
	Wealth       = "wealth"
	Health       = "health"
	Demeanor     = "demeanor"
	Age          = "age"
	FacialSignal = "facial_signal"
)

var axes = []axis.Axis{
	{Name: Physique, Values: []string{"skinny", "wiry", "stocky", "hunched", "frail", "broad"}},
	{Name: Wealth, Values: []string{"poor", "modest", "well-kept", "wealthy", "decadent"}},
	{Name: Health, Values: []string{"sickly", "scarred", "weary", "hale", "limping"}},
	{Name: Demeanor, Values: []string{"timid", "suspicious", "resentful", "alert", "proud"}},
	{Name: Age, Values: []string{"young", "middle-aged", "old", "ancient"}},
	{Name: FacialSignal, Values: []string{
		"understated",
		"pronounced",
		"exaggerated",
		"asymmetrical",
		"weathered",
		"soft-featured",
		"sharp-featured",
	}},
}

var policy = axis.Policy{
	Mandatory:   []string{Physique, Wealth},
	Optional:    []string{Health, Demeanor, Age, FacialSignal},
	MaxOptional: 2,
}

var weights = axis.Weights{
	Wealth: {
		"poor":      4.0,
		"modest":    3.0,
		"well-kept": 2.0,
		"wealthy":   1.0,
		"decadent":  0.5,
	},
	Physique: {
		"skinny":  3.0,
		"wiry":    2.0,
		"hunched": 2.0,
		"frail":   1.0,
		"stocky":  1.0,
		"broad":   0.5,
	},
	FacialSignal: {
		"understated":    3.0,
		"soft-featured":  2.5,
		"pronounced":     2.0,
		"sharp-featured": 2.0,
		"weathered":      1.5,
		"asymmetrical":   1.0,
		"exaggerated":    0.5,
	},
}

// Evaluated in order; see axis.ApplyExclusions.
var exclusions = []axis.Rule{
	axis.Exclude(Wealth, "decadent",
		axis.Blocks(Physique, "frail"),
		axis.Blocks(Health, "sickly"),
		axis.Blocks(FacialSignal, "weathered"),
	),
	axis.Exclude(Age, "ancient",
		axis.Blocks(Demeanor, "timid"),
		axis.Blocks(FacialSignal, "understated"),
	),
	axis.Exclude(Physique, "broad",
		axis.Blocks(Health, "sickly"),
	),
	axis.Exclude(Health, "hale",
		axis.Blocks(Physique, "frail"),
		axis.Blocks(FacialSignal, "weathered"),
	),
	axis.Exclude(Age, "young",
		axis.Blocks(FacialSignal, "weathered"),
	),
	axis.Exclude(Health, "sickly",
		axis.Blocks(FacialSignal, "soft-featured"),
	),
}

var domain = axis.MustDomain(axis.NewDomain(Name, axes, weights, policy, exclusions))

// Domain returns the validated character domain
func Domain() *axis.Domain {
	return domain
}

// Generate draws one character condition
func Generate(opts ...axis.GenerateOption) (axis.Assignment, error) {
	return domain.Generate(opts...)
}

// AvailableAxes returns the character axis names in table order
func AvailableAxes() []string {
	return domain.Axes()
}

// AxisValues returns the allowed values of one character axis
func AxisValues(name string) ([]string, error) {
	return domain.Values(name)
}
