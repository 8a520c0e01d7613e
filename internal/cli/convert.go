package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colours/internal/colour"
)

type convertJSON struct {
	Hex  string      `json:"hex"`
	RGB  rgbJSON     `json:"rgb"`
	HSV  colour.HSV  `json:"hsv"`
	CMYK colour.CMYK `json:"cmyk"`
	Lab  colour.Lab  `json:"lab"`
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <colour>",
		Short: "Show a colour in RGB, HSV, CMYK and CIE L*a*b*",
		Long: `Show a colour in every supported colour model.

Examples:
  colours convert '#ff0000'
  colours convert -f json cornflowerblue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := colour.ParseColour(args[0])
			if err != nil {
				return err
			}

			c := toColourJSON(input)
			out := convertJSON{
				Hex:  c.Hex,
				RGB:  c.RGB,
				HSV:  colour.ToHSV(input),
				CMYK: colour.ToCMYK(input),
				Lab:  colour.ToLab(input),
			}
			a.logger.Debug("converted colour", "input", input.Hex(), "lab", out.Lab)

			w := cmd.OutOrStdout()
			p := a.previewer(w)
			return a.render(w, out, func() *Table {
				t := NewTable("MODEL", "VALUE")
				t.AddRow("hex", p.label(input))
				t.AddRow("rgb", input.String())
				t.AddRow("hsv", out.HSV.String())
				t.AddRow("cmyk", out.CMYK.String())
				t.AddRow("lab", out.Lab.String())
				return t
			})
		},
	}
}

func newFromCMYKCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "from-cmyk <c> <m> <y> <k>",
		Short: "Convert CMYK components (0-1) to a colour",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			cmyk := colour.CMYK{C: v[0], M: v[1], Y: v[2], K: v[3]}
			return a.writeColour(cmd, cmyk.String(), colour.FromCMYK(cmyk))
		},
	}
}

func newFromLabCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "from-lab <L> <a> <b>",
		Short: "Convert CIE L*a*b* components to a colour",
		Long: `Convert CIE L*a*b* components to a colour. Channels outside the sRGB
gamut are clamped.

Negative components must follow "--" so they are not read as flags:
  colours from-lab -- 32.3 79.2 -107.9`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			lab := colour.Lab{L: v[0], A: v[1], B: v[2]}
			return a.writeColour(cmd, lab.String(), colour.FromLab(lab))
		},
	}
}

// writeColour prints a single converted colour.
func (a *app) writeColour(cmd *cobra.Command, from string, c colour.Packed) error {
	a.logger.Debug("converted to colour", "from", from, "result", c.Hex())

	w := cmd.OutOrStdout()
	p := a.previewer(w)
	return a.render(w, toColourJSON(c), func() *Table {
		t := NewTable("FROM", "COLOUR", "RGB")
		t.AddRow(from, p.label(c), c.String())
		return t
	})
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		out[i] = v
	}
	return out, nil
}
