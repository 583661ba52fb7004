package commands

import (
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/condax/axis"
	"github.com/teranos/condax/display"
	"github.com/teranos/condax/sym"
)

// axisInfo describes one axis for axes output
type axisInfo struct {
	Name    string             `json:"name"`
	Role    string             `json:"role"`
	Values  []string           `json:"values"`
	Weights map[string]float64 `json:"weights,omitempty"`
}

// domainInfo describes a domain for axes output
type domainInfo struct {
	Name        string     `json:"name"`
	Source      string     `json:"source"`
	Deprecated  bool       `json:"deprecated,omitempty"`
	Axes        []axisInfo `json:"axes"`
	MaxOptional int        `json:"max_optional"`
	Exclusions  []string   `json:"exclusions"`
}

// Axis roles
const (
	roleMandatory = "mandatory"
	roleOptional  = "optional"
	roleUnused    = "unused"
)

func newAxesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "axes [domain] [axis]",
		Short: sym.Short("axes"),
		Long: `Show the axes of a domain with their policy role and values.
With an axis name, show that axis's values and weights.

Examples:
  condax axes
  condax axes occupation
  condax axes character wealth`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.domains()
			if err != nil {
				return err
			}
			entry, err := reg.Entry(a.domainArg(args, 0))
			if err != nil {
				return err
			}
			info, err := describeDomain(entry.Domain, entry.Source, entry.Deprecated)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 2 {
				ax, err := findAxis(entry.Domain, info, args[1])
				if err != nil {
					return err
				}
				if display.ShouldOutputJSON(cmd) {
					return display.OutputJSON(out, ax)
				}
				rows := make([][]string, 0, len(ax.Values))
				for _, v := range ax.Values {
					rows = append(rows, []string{v, formatWeight(ax.Weights, v)})
				}
				return display.Table(out, []string{ax.Name + " (" + ax.Role + ")", "weight"}, rows)
			}

			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(out, info)
			}

			header := info.Name
			if info.Deprecated {
				header += " " + display.Muted("(deprecated)")
			}
			display.Info(out, "%s: up to %d optional axes", header, info.MaxOptional)

			rows := make([][]string, 0, len(info.Axes))
			for _, ax := range info.Axes {
				rows = append(rows, []string{ax.Name, ax.Role, strings.Join(ax.Values, ", ")})
			}
			if err := display.Table(out, []string{"axis", "role", "values"}, rows); err != nil {
				return err
			}

			if len(info.Exclusions) > 0 {
				excl := make([][]string, 0, len(info.Exclusions))
				for i, r := range info.Exclusions {
					excl = append(excl, []string{strconv.Itoa(i + 1), r})
				}
				return display.Table(out, []string{"#", "exclusion"}, excl)
			}
			return nil
		},
	}
}

func describeDomain(d *axis.Domain, source string, deprecated bool) (domainInfo, error) {
	policy := d.Policy()
	info := domainInfo{
		Name:        d.Name(),
		Source:      source,
		Deprecated:  deprecated,
		MaxOptional: policy.MaxOptional,
		Exclusions:  []string{},
	}

	for _, name := range d.Axes() {
		values, err := d.Values(name)
		if err != nil {
			return domainInfo{}, err
		}
		role := roleUnused
		switch {
		case slices.Contains(policy.Mandatory, name):
			role = roleMandatory
		case slices.Contains(policy.Optional, name):
			role = roleOptional
		}
		info.Axes = append(info.Axes, axisInfo{
			Name:    name,
			Role:    role,
			Values:  values,
			Weights: d.Weights(name),
		})
	}

	for _, r := range d.Rules() {
		info.Exclusions = append(info.Exclusions, r.String())
	}
	return info, nil
}

// findAxis returns the named axis, or the domain's not-found error
func findAxis(d *axis.Domain, info domainInfo, name string) (axisInfo, error) {
	for _, ax := range info.Axes {
		if ax.Name == name {
			return ax, nil
		}
	}
	_, err := d.Values(name)
	return axisInfo{}, err
}

// formatWeight shows the explicit weight, or 1 for uniform axes
func formatWeight(weights map[string]float64, value string) string {
	if weights == nil {
		return "1 (uniform)"
	}
	return strconv.FormatFloat(weights[value], 'g', -1, 64)
}
