package entity

import (
	"slices"
	"strings"

	"github.com/teranos/condax/axis"
	"github.com/teranos/condax/domains/character"
	"github.com/teranos/condax/domains/occupation"
	"github.com/teranos/condax/errors"
)

// Archetype is a narrative role expressed as predicates over the character
// and occupation conditions
type Archetype struct {
	Name       string
	Character  func(axis.Assignment) bool
	Occupation func(axis.Assignment) bool
}

// Matches reports whether e satisfies both predicates. A nil predicate
// matches anything.
func (a Archetype) Matches(e Entity) bool {
	if a.Character != nil && !a.Character(e.Character) {
		return false
	}
	if a.Occupation != nil && !a.Occupation(e.Occupation) {
		return false
	}
	return true
}

func oneOf(a axis.Assignment, name string, values ...string) bool {
	v, ok := a.Get(name)
	return ok && slices.Contains(values, v)
}

var builtinArchetypes = []Archetype{
	{
		Name: "The Desperate Outlaw",
		Character: func(c axis.Assignment) bool {
			return oneOf(c, character.Wealth, "poor") && oneOf(c, character.Health, "weary", "scarred")
		},
		Occupation: func(o axis.Assignment) bool {
			return oneOf(o, occupation.Legitimacy, "illicit") && oneOf(o, occupation.RiskExposure, "hazardous", "eroding")
		},
	},
	{
		Name: "The Respected Merchant",
		Character: func(c axis.Assignment) bool {
			return oneOf(c, character.Wealth, "wealthy", "well-kept") && oneOf(c, character.Demeanor, "alert", "proud")
		},
		Occupation: func(o axis.Assignment) bool {
			return oneOf(o, occupation.Legitimacy, "sanctioned") && oneOf(o, occupation.Visibility, "routine")
		},
	},
	{
		Name: "The Hidden Scholar",
		Character: func(c axis.Assignment) bool {
			return oneOf(c, character.Wealth, "modest") && oneOf(c, character.Physique, "skinny", "wiry", "hunched")
		},
		Occupation: func(o axis.Assignment) bool {
			return oneOf(o, occupation.Visibility, "hidden") && oneOf(o, occupation.MoralLoad, "neutral", "burdened")
		},
	},
}

// Archetypes returns the built-in archetypes
func Archetypes() []Archetype {
	return append([]Archetype(nil), builtinArchetypes...)
}

// LookupArchetype finds a built-in archetype by name, ignoring case and a
// leading "The "
func LookupArchetype(name string) (Archetype, error) {
	want := normalizeArchetype(name)
	for _, a := range builtinArchetypes {
		if normalizeArchetype(a.Name) == want {
			return a, nil
		}
	}

	names := make([]string, len(builtinArchetypes))
	for i, a := range builtinArchetypes {
		names[i] = a.Name
	}
	return Archetype{}, errors.WithHintf(
		errors.NewNotFoundError("archetype %q", name),
		"known archetypes: %s", strings.Join(names, ", "),
	)
}

func normalizeArchetype(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "the ")
	return strings.ReplaceAll(n, "-", " ")
}

// FindArchetype scans seeds in [from, to) and returns the first entity that
// matches a. Returns ErrNotFound when no seed in the range matches.
func FindArchetype(a Archetype, from, to int64) (Entity, error) {
	for seed := from; seed < to; seed++ {
		e, err := Generate(seed)
		if err != nil {
			return Entity{}, err
		}
		if a.Matches(e) {
			return e, nil
		}
	}
	return Entity{}, errors.WithHintf(
		errors.NewNotFoundError("no %s in seeds %d-%d", a.Name, from, to-1),
		"widen the seed range",
	)
}
