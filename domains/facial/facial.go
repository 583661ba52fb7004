// Package facial generates a single facial perception signal.
//
// Deprecated: the facial_signal axis is part of the character domain, where
// exclusion rules can relate it to age, health and wealth. Use
// character.Generate instead. This package stays for callers that want a
// facial signal on its own.
package facial

import (
	"github.com/teranos/condax/axis"
)

// Name is the registry name of the facial domain
const Name = "facial"

// Signal is the only facial axis
const Signal = "facial_signal"

var axes = []axis.Axis{
	{Name: Signal, Values: []string{
		"understated",
		"pronounced",
		"exaggerated",
		"asymmetrical",
		"weathered",
		"soft-featured",
		"sharp-featured",
	}},
}

// Always exactly one signal
var policy = axis.Policy{
	Mandatory:   []string{Signal},
	MaxOptional: 0,
}

var weights = axis.Weights{
	Signal: {
		"understated":    3.0,
		"soft-featured":  2.5,
		"pronounced":     2.0,
		"sharp-featured": 2.0,
		"weathered":      1.5,
		"asymmetrical":   1.0,
		"exaggerated":    0.5,
	},
}

var domain = axis.MustDomain(axis.NewDomain(Name, axes, weights, policy, nil))

// Domain returns the validated facial domain
func Domain() *axis.Domain {
	return domain
}

// Generate draws one facial signal
func Generate(opts ...axis.GenerateOption) (axis.Assignment, error) {
	return domain.Generate(opts...)
}

// AvailableAxes returns the facial axis names
func AvailableAxes() []string {
	return domain.Axes()
}

// AxisValues returns the allowed values of the facial axis
func AxisValues(name string) ([]string, error) {
	return domain.Values(name)
}
