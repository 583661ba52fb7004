package entity

import (
	"strings"

	"github.com/teranos/condax/axis"
	"github.com/teranos/condax/domains/character"
	"github.com/teranos/condax/domains/occupation"
)

// Narrative describes e in a few plain sentences, for text games and
// interactive fiction:
//
//	A wiry, poor individual. with a weathered face. whose tolerated work
//	and discreet presence suggests careful positioning.
//
// Clauses whose axis was not drawn are left out. An entity with none of the
// narrated axes yields "".
func Narrative(e Entity) string {
	physique := e.Character.Value(character.Physique)
	wealth := e.Character.Value(character.Wealth)
	health := e.Character.Value(character.Health)
	facial := e.Facial.Value(character.FacialSignal)
	legitimacy := e.Occupation.Value(occupation.Legitimacy)
	visibility := e.Occupation.Value(occupation.Visibility)

	var parts []string
	switch {
	case physique != "" && wealth != "":
		parts = append(parts, "A "+physique+", "+wealth+" individual")
	case physique != "":
		parts = append(parts, "A "+physique+" individual")
	}
	if facial != "" {
		parts = append(parts, "with a "+facial+" face")
	}
	if health != "" {
		parts = append(parts, "bearing signs of being "+health)
	}

	var work []string
	if legitimacy != "" {
		work = append(work, legitimacy+" work")
	}
	if visibility != "" {
		work = append(work, visibility+" presence")
	}
	if len(work) > 0 {
		parts = append(parts, "whose "+strings.Join(work, " and ")+" suggests careful positioning")
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ". ") + "."
}

// ImagePrompt builds text-to-image prompts around an entity
type ImagePrompt struct {
	Style       string   // leading style modifier, e.g. "oil painting"
	QualityTags []string // trailing quality tags
	Details     string   // extra description placed after the conditions
}

// Build returns style, character, occupation, details and quality tags
// joined with ", ", skipping anything empty.
func (p ImagePrompt) Build(e Entity) string {
	parts := []string{p.Style, e.Character.Prompt(), e.Occupation.Prompt(), p.Details}
	parts = append(parts, p.QualityTags...)
	return axis.JoinPrompts(parts...)
}

// BaseNegatives are always part of a negative prompt
var BaseNegatives = []string{
	"low quality",
	"blurry",
	"distorted",
	"deformed",
	"duplicate",
	"watermark",
}

// NegativePrompt lists what an image model should avoid
func NegativePrompt(avoid ...string) string {
	parts := append(append([]string(nil), BaseNegatives...), avoid...)
	return axis.JoinPrompts(parts...)
}

// Quality tag presets
var (
	QualityPhotorealistic = []string{"highly detailed", "8k resolution", "photorealistic", "professional photography"}
	QualityArtistic       = []string{"masterpiece", "trending on artstation", "award winning", "high detail"}
	QualityFantasy        = []string{"fantasy art", "dramatic lighting", "epic composition", "detailed"}
)

// QualityPresets maps preset names to tag sets
var QualityPresets = map[string][]string{
	"photorealistic": QualityPhotorealistic,
	"artistic":       QualityArtistic,
	"fantasy":        QualityFantasy,
}
