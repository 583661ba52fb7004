package axis

import (
	"fmt"
	"strings"
)

// Axis is a named discrete dimension with its ordered allowed values
type Axis struct {
	Name   string   `json:"name" yaml:"name" toml:"name"`
	Values []string `json:"values" yaml:"values" toml:"values"`
}

// Weights maps axis name -> value -> relative sampling weight.
// Values absent from an axis entry weigh 1.0; an absent axis is uniform.
type Weights map[string]map[string]float64

// Policy controls which axes are sampled on each call
type Policy struct {
	Mandatory   []string `json:"mandatory" yaml:"mandatory" toml:"mandatory"`
	Optional    []string `json:"optional" yaml:"optional" toml:"optional"`
	MaxOptional int      `json:"max_optional" yaml:"max_optional" toml:"max_optional"`
}

// Trigger is the (axis, value) pair that activates a Rule
type Trigger struct {
	Axis  string `json:"axis" yaml:"axis" toml:"axis"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

func (t Trigger) String() string {
	return t.Axis + "=" + t.Value
}

// Block lists values of one axis that may not coexist with a Trigger
type Block struct {
	Axis   string   `json:"axis" yaml:"axis" toml:"axis"`
	Values []string `json:"values" yaml:"values" toml:"values"`
}

// Contains reports whether value is one of the blocked values
func (b Block) Contains(value string) bool {
	for _, v := range b.Values {
		if v == value {
			return true
		}
	}
	return false
}

// Rule is one exclusion: when the trigger holds, blocked values are removed
type Rule struct {
	When  Trigger `json:"when" yaml:"when" toml:"when"`
	Block []Block `json:"block" yaml:"block" toml:"block"`
}

func (r Rule) String() string {
	parts := make([]string, len(r.Block))
	for i, b := range r.Block {
		parts[i] = fmt.Sprintf("%s in [%s]", b.Axis, strings.Join(b.Values, " "))
	}
	return fmt.Sprintf("%s blocks %s", r.When, strings.Join(parts, ", "))
}

// Exclude is shorthand for building a Rule in table literals
func Exclude(axis, value string, blocks ...Block) Rule {
	return Rule{When: Trigger{Axis: axis, Value: value}, Block: blocks}
}

// Blocks is shorthand for building a Block in table literals
func Blocks(axis string, values ...string) Block {
	return Block{Axis: axis, Values: values}
}

// Pair is one axis/value entry of an Assignment
type Pair struct {
	Axis  string `json:"axis"`
	Value string `json:"value"`
}
