// Package entity combines character and occupation conditions drawn from
// one seed into a single described entity, and renders it as a prompt,
// a narrative sentence or an image-generation prompt.
package entity

import (
	"github.com/teranos/condax/axis"
	"github.com/teranos/condax/domains/character"
	"github.com/teranos/condax/domains/occupation"
	"github.com/teranos/condax/errors"
)

// Entity is one generated character with its occupation profile.
// Facial holds the character's facial_signal on its own, or is empty when
// the character draw did not include one.
type Entity struct {
	Seed       int64           `json:"seed"`
	Character  axis.Assignment `json:"character"`
	Facial     axis.Assignment `json:"facial"`
	Occupation axis.Assignment `json:"occupation"`
}

// Generate draws the character and occupation conditions for seed.
// Both domains get their own generator seeded with the same value.
func Generate(seed int64) (Entity, error) {
	c, err := character.Generate(axis.WithSeed(seed))
	if err != nil {
		return Entity{}, errors.Wrapf(err, "character for seed %d", seed)
	}
	o, err := occupation.Generate(axis.WithSeed(seed))
	if err != nil {
		return Entity{}, errors.Wrapf(err, "occupation for seed %d", seed)
	}

	return Entity{
		Seed:       seed,
		Character:  c,
		Facial:     facialOf(c),
		Occupation: o,
	}, nil
}

func facialOf(c axis.Assignment) axis.Assignment {
	signal, ok := c.Get(character.FacialSignal)
	if !ok {
		return axis.Assignment{}
	}
	return axis.AssignmentOf(axis.Pair{Axis: character.FacialSignal, Value: signal})
}

// Prompt joins the character and occupation fragments. The facial signal is
// already part of the character fragment.
func (e Entity) Prompt() string {
	return axis.JoinPrompts(e.Character.Prompt(), e.Occupation.Prompt())
}

// Narrative renders the entity as prose
func (e Entity) Narrative() string {
	return Narrative(e)
}
