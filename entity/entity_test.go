package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/condax/axis"
	"github.com/teranos/condax/domains/character"
	"github.com/teranos/condax/domains/occupation"
)

func pairs(kv ...string) axis.Assignment {
	var ps []axis.Pair
	for i := 0; i+1 < len(kv); i += 2 {
		ps = append(ps, axis.Pair{Axis: kv[i], Value: kv[i+1]})
	}
	return axis.AssignmentOf(ps...)
}

func TestGenerate_MatchesDomains(t *testing.T) {
	e, err := Generate(42)
	require.NoError(t, err)

	c, err := character.Generate(axis.WithSeed(42))
	require.NoError(t, err)
	o, err := occupation.Generate(axis.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, int64(42), e.Seed)
	assert.True(t, c.Equal(e.Character))
	assert.True(t, o.Equal(e.Occupation))
	assert.Equal(t, axis.JoinPrompts(c.Prompt(), o.Prompt()), e.Prompt())
}

func TestGenerate_FacialFollowsCharacter(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		e, err := Generate(seed)
		require.NoError(t, err)

		signal, ok := e.Character.Get(character.FacialSignal)
		if ok {
			assert.Equal(t, signal, e.Facial.Value(character.FacialSignal))
			assert.Equal(t, 1, e.Facial.Len())
		} else {
			assert.Zero(t, e.Facial.Len())
		}
	}
}

func TestEntity_JSON(t *testing.T) {
	e := Entity{
		Seed:       7,
		Character:  pairs("physique", "wiry", "wealth", "poor"),
		Occupation: pairs("legitimacy", "tolerated", "visibility", "discreet"),
	}
	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"seed":7,"character":{"physique":"wiry","wealth":"poor"},"facial":{},"occupation":{"legitimacy":"tolerated","visibility":"discreet"}}`,
		string(data))

	var back Entity
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, e.Prompt(), back.Prompt())
}

func TestNarrative(t *testing.T) {
	tests := []struct {
		name string
		e    Entity
		want string
	}{
		{
			name: "full",
			e: Entity{
				Character:  pairs("physique", "wiry", "wealth", "poor", "health", "weary", "facial_signal", "weathered"),
				Facial:     pairs("facial_signal", "weathered"),
				Occupation: pairs("legitimacy", "tolerated", "visibility", "discreet"),
			},
			want: "A wiry, poor individual. with a weathered face. bearing signs of being weary. whose tolerated work and discreet presence suggests careful positioning.",
		},
		{
			name: "physique only",
			e: Entity{
				Character: pairs("physique", "frail"),
			},
			want: "A frail individual.",
		},
		{
			name: "visibility without legitimacy",
			e: Entity{
				Character:  pairs("wealth", "decadent"),
				Occupation: pairs("visibility", "hidden"),
			},
			want: "whose hidden presence suggests careful positioning.",
		},
		{
			name: "empty",
			e:    Entity{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Narrative(tt.e))
			assert.Equal(t, tt.want, tt.e.Narrative())
		})
	}
}

func TestImagePrompt_Build(t *testing.T) {
	e := Entity{
		Character:  pairs("physique", "wiry", "wealth", "poor"),
		Occupation: pairs("legitimacy", "tolerated"),
	}

	assert.Equal(t, "wiry, poor, tolerated", ImagePrompt{}.Build(e))
	assert.Equal(t,
		"portrait, wiry, poor, tolerated, holding a lantern, highly detailed, 8k resolution",
		ImagePrompt{
			Style:       "portrait",
			Details:     "holding a lantern",
			QualityTags: []string{"highly detailed", "8k resolution"},
		}.Build(e))
}

func TestNegativePrompt(t *testing.T) {
	assert.Equal(t, "low quality, blurry, distorted, deformed, duplicate, watermark", NegativePrompt())
	assert.Equal(t,
		"low quality, blurry, distorted, deformed, duplicate, watermark, cartoon, anime",
		NegativePrompt("cartoon", "anime"))
	// the shared base list is never modified
	assert.Len(t, BaseNegatives, 6)
}
