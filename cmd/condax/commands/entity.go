package commands

import (
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/condax/axis"
	"github.com/teranos/condax/display"
	"github.com/teranos/condax/entity"
	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/sym"
)

// entityOutput is the JSON shape of the entity command
type entityOutput struct {
	entity.Entity
	Prompt         string `json:"prompt"`
	Narrative      string `json:"narrative,omitempty"`
	ImagePrompt    string `json:"image_prompt,omitempty"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
}

type entityOptions struct {
	seed      int64
	narrative bool
	image     bool
	style     string
	quality   string
	details   string
	avoid     []string
}

func newEntityCmd(a *app) *cobra.Command {
	var opts entityOptions

	cmd := &cobra.Command{
		Use:   "entity",
		Short: sym.Short("entity"),
		Long: `Draw character and occupation conditions from one seed.

Examples:
  condax entity --seed 7
  condax entity --seed 7 --narrative
  condax entity --seed 7 --image --style "oil painting" --quality fantasy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				s, err := axis.NewSeed()
				if err != nil {
					return err
				}
				opts.seed = s
			}
			return runEntity(cmd, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed (random when omitted)")
	cmd.Flags().BoolVar(&opts.narrative, "narrative", false, "Include a narrative description")
	cmd.Flags().BoolVar(&opts.image, "image", false, "Include image generation prompts")
	cmd.Flags().StringVar(&opts.style, "style", "", "Image style prefix, e.g. \"oil painting\"")
	cmd.Flags().StringVar(&opts.quality, "quality", "", "Quality preset: "+strings.Join(qualityPresetNames(), ", "))
	cmd.Flags().StringVar(&opts.details, "details", "", "Extra image description after the conditions")
	cmd.Flags().StringSliceVar(&opts.avoid, "avoid", nil, "Extra negative prompt terms")

	return cmd
}

func qualityPresetNames() []string {
	names := make([]string, 0, len(entity.QualityPresets))
	for name := range entity.QualityPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runEntity(cmd *cobra.Command, opts entityOptions) error {
	var tags []string
	if opts.quality != "" {
		preset, ok := entity.QualityPresets[opts.quality]
		if !ok {
			return errors.WithHintf(
				errors.NewInvalidInputError("unknown quality preset %q", opts.quality),
				"available presets: %s", strings.Join(qualityPresetNames(), ", "),
			)
		}
		tags = preset
	}

	e, err := entity.Generate(opts.seed)
	if err != nil {
		return err
	}

	result := entityOutput{Entity: e, Prompt: e.Prompt()}
	if opts.narrative {
		result.Narrative = e.Narrative()
	}
	if opts.image {
		result.ImagePrompt = entity.ImagePrompt{Style: opts.style, QualityTags: tags, Details: opts.details}.Build(e)
		result.NegativePrompt = entity.NegativePrompt(opts.avoid...)
	}

	out := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(out, result)
	}
	return display.KeyValues(out, entityRows(result))
}

func entityRows(r entityOutput) [][2]string {
	rows := [][2]string{
		{"seed", strconv.FormatInt(r.Seed, 10)},
		{"character", r.Character.Prompt()},
		{"occupation", r.Occupation.Prompt()},
		{"prompt", r.Prompt},
	}
	if r.Narrative != "" {
		rows = append(rows, [2]string{"narrative", r.Narrative})
	}
	if r.ImagePrompt != "" {
		rows = append(rows,
			[2]string{"image", r.ImagePrompt},
			[2]string{"negative", r.NegativePrompt})
	}
	return rows
}
