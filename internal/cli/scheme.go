package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colours/internal/colour"
)

type schemeJSON struct {
	Scheme  string       `json:"scheme"`
	Colours []colourJSON `json:"colours"`
}

type schemeOutputJSON struct {
	Input   colourJSON   `json:"input"`
	Schemes []schemeJSON `json:"schemes"`
}

func newSchemeCmd(a *app) *cobra.Command {
	var (
		scheme schemeFlag
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "scheme <colour>",
		Short: "Generate a four-colour scheme from a colour",
		Long: `Generate four related colours from the hue, saturation and value of the
input colour.

Schemes:
  analogous      hues 15 and 30 degrees either side
  monochromatic  the same hue at different saturations and values
  triad          hues 120 and 240 degrees away
  complementary  the input hue and its opposite

Examples:
  # Complementary scheme (default)
  colours scheme '#3366cc'

  # Triad scheme as JSON
  colours scheme --scheme triad -f json tomato

  # Every scheme
  colours scheme --all 'rgb(51, 102, 204)'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := colour.ParseColour(args[0])
			if err != nil {
				return err
			}

			schemes := []colour.Scheme{a.settings.Scheme}
			if all {
				schemes = colour.Schemes()
			}

			out := schemeOutputJSON{Input: toColourJSON(input)}
			results := make([][]colour.Packed, len(schemes))
			for i, s := range schemes {
				colours, err := colour.SchemeOfType(input, s)
				if err != nil {
					return err
				}
				a.logger.Debug("generated scheme", "input", input.Hex(), "scheme", s, "colours", len(colours))
				results[i] = colours
				out.Schemes = append(out.Schemes, schemeJSON{Scheme: s.String(), Colours: toColourJSONs(colours)})
			}

			w := cmd.OutOrStdout()
			p := a.previewer(w)
			return a.render(w, out, func() *Table {
				t := NewTable("SCHEME", "#", "COLOUR", "RGB")
				for i, s := range schemes {
					for j, c := range results[i] {
						t.AddRow(s.String(), strconv.Itoa(j+1), p.label(c), c.String())
					}
				}
				return t
			})
		},
	}

	scheme.scheme = a.settings.Scheme
	cmd.Flags().VarP(&scheme, "scheme", "s", "scheme (analogous, monochromatic, triad, complementary)")
	cmd.Flags().BoolVar(&all, "all", false, "generate every scheme")

	return cmd
}

func newComplementCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complement <colour>",
		Short: "Print the colour opposite on the colour wheel",
		Long: `Print the colour whose hue is opposite the input colour, keeping its
saturation and value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := colour.ParseColour(args[0])
			if err != nil {
				return err
			}
			result := colour.ComplementaryColour(input)
			a.logger.Debug("complement", "input", input.Hex(), "result", result.Hex())

			w := cmd.OutOrStdout()
			p := a.previewer(w)
			return a.render(w, toColourJSON(result), func() *Table {
				t := NewTable("INPUT", "COMPLEMENT", "RGB")
				t.AddRow(p.label(input), p.label(result), result.String())
				return t
			})
		},
	}
}
