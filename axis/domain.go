package axis

import (
	"math"

	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/logger"
)

// Domain is a validated bundle of axis, weight, policy and exclusion tables.
// It is immutable after construction and safe for concurrent use.
type Domain struct {
	name    string
	order   []string
	axes    map[string][]string
	weights Weights
	policy  Policy
	rules   []Rule
	lenient bool
}

// DomainOption configures NewDomain
type DomainOption func(*domainOptions)

type domainOptions struct {
	lenientPolicy bool
}

// WithLenientPolicy accepts policy entries that name axes missing from the
// axis table. Generate logs a warning and skips them instead of NewDomain
// failing.
func WithLenientPolicy() DomainOption {
	return func(o *domainOptions) {
		o.lenientPolicy = true
	}
}

// NewDomain validates the four tables and returns an immutable Domain.
// Inputs are copied; later changes by the caller do not affect the Domain.
func NewDomain(name string, axes []Axis, weights Weights, policy Policy, rules []Rule, opts ...DomainOption) (*Domain, error) {
	var o domainOptions
	for _, opt := range opts {
		opt(&o)
	}

	if name == "" {
		return nil, errors.NewConfigurationError("domain name is empty")
	}

	d := &Domain{
		name:    name,
		axes:    make(map[string][]string, len(axes)),
		weights: make(Weights, len(weights)),
		lenient: o.lenientPolicy,
	}

	for _, ax := range axes {
		if ax.Name == "" {
			return nil, errors.NewConfigurationError("domain %q: axis with empty name", name)
		}
		if _, dup := d.axes[ax.Name]; dup {
			return nil, errors.NewConfigurationError("domain %q: axis %q defined twice", name, ax.Name)
		}
		seen := make(map[string]bool, len(ax.Values))
		for _, v := range ax.Values {
			if seen[v] {
				return nil, errors.NewConfigurationError("domain %q: value %q listed twice on axis %q", name, v, ax.Name)
			}
			seen[v] = true
		}
		d.order = append(d.order, ax.Name)
		d.axes[ax.Name] = append([]string(nil), ax.Values...)
	}

	if err := d.validatePolicy(policy); err != nil {
		return nil, err
	}
	d.policy = Policy{
		Mandatory:   append([]string(nil), policy.Mandatory...),
		Optional:    append([]string(nil), policy.Optional...),
		MaxOptional: policy.MaxOptional,
	}

	for axisName, byValue := range weights {
		if _, ok := d.axes[axisName]; !ok {
			return nil, errors.NewConfigurationError("domain %q: weights reference undefined axis %q", name, axisName)
		}
		cp := make(map[string]float64, len(byValue))
		for v, w := range byValue {
			if !d.hasValue(axisName, v) {
				return nil, errors.NewConfigurationError("domain %q: weights reference undefined value %s=%s", name, axisName, v)
			}
			if !(w > 0) || math.IsInf(w, 1) {
				return nil, errors.NewInvalidInputError("domain %q: weight for %s=%s must be a positive finite number, got %v", name, axisName, v, w)
			}
			cp[v] = w
		}
		d.weights[axisName] = cp
	}

	d.rules = make([]Rule, 0, len(rules))
	for i, r := range rules {
		if !d.hasValue(r.When.Axis, r.When.Value) {
			return nil, errors.WithDetailf(
				errors.NewConfigurationError("domain %q: exclusion %d triggers on undefined %s", name, i, r.When),
				"rule: %s", r,
			)
		}
		cp := Rule{When: r.When, Block: make([]Block, len(r.Block))}
		for j, b := range r.Block {
			if _, ok := d.axes[b.Axis]; !ok {
				return nil, errors.NewConfigurationError("domain %q: exclusion %s blocks undefined axis %q", name, r.When, b.Axis)
			}
			for _, v := range b.Values {
				if !d.hasValue(b.Axis, v) {
					return nil, errors.NewConfigurationError("domain %q: exclusion %s blocks undefined value %s=%s", name, r.When, b.Axis, v)
				}
			}
			cp.Block[j] = Block{Axis: b.Axis, Values: append([]string(nil), b.Values...)}
		}
		d.rules = append(d.rules, cp)
	}

	return d, nil
}

func (d *Domain) validatePolicy(p Policy) error {
	mandatory := make(map[string]bool, len(p.Mandatory))
	for _, a := range p.Mandatory {
		if mandatory[a] {
			return errors.NewConfigurationError("domain %q: axis %q listed twice as mandatory", d.name, a)
		}
		mandatory[a] = true
		if err := d.checkPolicyAxis(a); err != nil {
			return err
		}
	}

	optional := make(map[string]bool, len(p.Optional))
	for _, a := range p.Optional {
		if optional[a] {
			return errors.NewConfigurationError("domain %q: axis %q listed twice as optional", d.name, a)
		}
		optional[a] = true
		if mandatory[a] {
			return errors.WithHint(
				errors.NewConfigurationError("domain %q: axis %q listed as mandatory and optional", d.name, a),
				"an axis belongs to exactly one policy list",
			)
		}
		if err := d.checkPolicyAxis(a); err != nil {
			return err
		}
	}

	if p.MaxOptional < 0 || p.MaxOptional > len(p.Optional) {
		return errors.NewConfigurationError("domain %q: max_optional %d outside [0, %d]", d.name, p.MaxOptional, len(p.Optional))
	}
	return nil
}

func (d *Domain) checkPolicyAxis(a string) error {
	if _, ok := d.axes[a]; ok {
		return nil
	}
	if d.lenient {
		logger.ComponentLogger("axis").Warnw("Policy axis not defined",
			logger.FieldDomain, d.name,
			logger.FieldAxis, a)
		return nil
	}
	return errors.WithHint(
		errors.NewConfigurationError("domain %q: policy references undefined axis %q", d.name, a),
		"define the axis or remove it from the policy",
	)
}

func (d *Domain) hasValue(axisName, value string) bool {
	for _, v := range d.axes[axisName] {
		if v == value {
			return true
		}
	}
	return false
}

func (d *Domain) Name() string {
	return d.name
}

// Axes returns the axis names in table order
func (d *Domain) Axes() []string {
	return append([]string(nil), d.order...)
}

// Values returns a copy of the allowed values for axis
func (d *Domain) Values(axisName string) ([]string, error) {
	values, ok := d.axes[axisName]
	if !ok {
		return nil, errors.WithHintf(
			errors.NewNotFoundError("axis %q in domain %q", axisName, d.name),
			"available axes: %v", d.order,
		)
	}
	return append([]string(nil), values...), nil
}

// Policy returns a copy of the selection policy
func (d *Domain) Policy() Policy {
	return Policy{
		Mandatory:   append([]string(nil), d.policy.Mandatory...),
		Optional:    append([]string(nil), d.policy.Optional...),
		MaxOptional: d.policy.MaxOptional,
	}
}

// Rules returns a copy of the exclusion table in evaluation order
func (d *Domain) Rules() []Rule {
	out := make([]Rule, len(d.rules))
	for i, r := range d.rules {
		out[i] = Rule{When: r.When, Block: make([]Block, len(r.Block))}
		for j, b := range r.Block {
			out[i].Block[j] = Block{Axis: b.Axis, Values: append([]string(nil), b.Values...)}
		}
	}
	return out
}

// Weights returns a copy of the weights for axis; nil means uniform
func (d *Domain) Weights(axisName string) map[string]float64 {
	w, ok := d.weights[axisName]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// IsMandatory reports whether axis is in the mandatory policy list
func (d *Domain) IsMandatory(axisName string) bool {
	for _, a := range d.policy.Mandatory {
		if a == axisName {
			return true
		}
	}
	return false
}

// MustDomain panics if err is non-nil. It is intended for package-level
// tables compiled into the binary, where an invalid table is a programming
// error.
func MustDomain(d *Domain, err error) *Domain {
	if err != nil {
		panic(err)
	}
	return d
}
