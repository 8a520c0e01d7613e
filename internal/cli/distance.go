package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colours/internal/colour"
)

type distanceJSON struct {
	Formula  string  `json:"formula"`
	Distance float64 `json:"distance"`
}

type distanceOutputJSON struct {
	A         colourJSON     `json:"a"`
	B         colourJSON     `json:"b"`
	Distances []distanceJSON `json:"distances"`
}

func newDistanceCmd(a *app) *cobra.Command {
	var (
		formula formulaFlag
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "distance <colour> <colour>",
		Short: "Measure the perceptual difference between two colours",
		Long: `Measure the perceptual difference (Delta-E) between two colours.

CIE94 is the default. CIE94 weights the difference by the first colour's
chroma, so swapping the arguments can change the result.

Examples:
  colours distance red blue
  colours distance --formula cie2000 '#3366cc' '#3367cd'
  colours distance --all -f json tomato coral`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}
			ca, cb := colours[0], colours[1]

			formulas := []colour.Formula{a.settings.Formula}
			if all {
				formulas = colour.Formulas()
			}

			out := distanceOutputJSON{A: toColourJSON(ca), B: toColourJSON(cb)}
			for _, f := range formulas {
				d, err := colour.DistanceWithFormula(ca, cb, f)
				if err != nil {
					return err
				}
				a.logger.Debug("computed distance", "a", ca.Hex(), "b", cb.Hex(), "formula", f, "distance", d)
				out.Distances = append(out.Distances, distanceJSON{Formula: f.String(), Distance: d})
			}

			w := cmd.OutOrStdout()
			p := a.previewer(w)
			return a.render(w, out, func() *Table {
				t := NewTable("A", "B", "FORMULA", "DELTA-E")
				for _, d := range out.Distances {
					t.AddRow(p.label(ca), p.label(cb), d.Formula, strconv.FormatFloat(d.Distance, 'f', 4, 64))
				}
				return t
			})
		},
	}

	formula.formula = a.settings.Formula
	cmd.Flags().VarP(&formula, "formula", "F", "distance formula (cie76, cie94, cie2000)")
	cmd.Flags().BoolVar(&all, "all", false, "report every formula")

	return cmd
}
