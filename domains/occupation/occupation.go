// Package occupation describes how a character's work sits in society,
// not what the job is: legitimacy, visibility, moral load, dependency and
// risk exposure.
//
// Legitimacy and visibility are mandatory, but the paired rules between
// them can remove either one. An illicit, conspicuous draw loses its
// visibility; a hidden, sanctioned draw loses its visibility too, because
// the legitimacy rule is reached first.
package occupation

import (
	"github.com/teranos/condax/axis"
)

// Name is the registry name of the occupation domain
const Name = "occupation"

// Axis names
const (
	Legitimacy   = "legitimacy"
	Visibility   = "visibility"
	MoralLoad    = "moral_load"
	Dependency   = "dependency"
	RiskExposure = "risk_exposure"
)

var axes = []axis.Axis{
	{Name: Legitimacy, Values: []string{"sanctioned", "tolerated", "questioned", "illicit"}},
	{Name: Visibility, Values: []string{"hidden", "discreet", "routine", "conspicuous"}},
	{Name: MoralLoad, Values: []string{"neutral", "burdened", "conflicted", "corrosive"}},
	{Name: Dependency, Values: []string{"optional", "useful", "necessary", "unavoidable"}},
	{Name: RiskExposure, Values: []string{"benign", "straining", "hazardous", "eroding"}},
}

var policy = axis.Policy{
	Mandatory:   []string{Legitimacy, Visibility},
	Optional:    []string{MoralLoad, Dependency, RiskExposure},
	MaxOptional: 2,
}

var weights = axis.Weights{
	Legitimacy: {
		"sanctioned": 4.0,
		"tolerated":  3.0,
		"questioned": 1.5,
		"illicit":    0.5,
	},
	Visibility: {
		"routine":     4.0,
		"discreet":    3.0,
		"hidden":      1.0,
		"conspicuous": 1.0,
	},
	MoralLoad: {
		"neutral":    5.0,
		"burdened":   2.0,
		"conflicted": 1.0,
		"corrosive":  0.5,
	},
	Dependency: {
		"necessary":   3.0,
		"useful":      3.0,
		"optional":    2.0,
		"unavoidable": 1.0,
	},
	RiskExposure: {
		"benign":    4.0,
		"straining": 3.0,
		"hazardous": 1.5,
		"eroding":   0.5,
	},
}

var exclusions = []axis.Rule{
	axis.Exclude(Legitimacy, "illicit",
		axis.Blocks(Visibility, "conspicuous"),
	),
	axis.Exclude(Visibility, "conspicuous",
		axis.Blocks(Legitimacy, "illicit"),
	),
	axis.Exclude(Legitimacy, "sanctioned",
		axis.Blocks(Visibility, "hidden"),
	),
	axis.Exclude(Visibility, "hidden",
		axis.Blocks(Legitimacy, "sanctioned"),
		axis.Blocks(Dependency, "unavoidable"),
	),
	axis.Exclude(RiskExposure, "eroding",
		axis.Blocks(MoralLoad, "neutral"),
	),
	axis.Exclude(Dependency, "optional",
		axis.Blocks(RiskExposure, "eroding"),
	),
}

var domain = axis.MustDomain(axis.NewDomain(Name, axes, weights, policy, exclusions))

// Domain returns the validated occupation domain
func Domain() *axis.Domain {
	return domain
}

// Generate draws one occupation condition
func Generate(opts ...axis.GenerateOption) (axis.Assignment, error) {
	return domain.Generate(opts...)
}

// AvailableAxes returns the occupation axis names in table order
func AvailableAxes() []string {
	return domain.Axes()
}

// AxisValues returns the allowed values of one occupation axis
func AxisValues(name string) ([]string, error) {
	return domain.Values(name)
}
