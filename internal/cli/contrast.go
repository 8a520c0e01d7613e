package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colours/internal/colour"
)

type contrastJSON struct {
	Input    colourJSON `json:"input"`
	Contrast string     `json:"contrast"`
	Colour   colourJSON `json:"colour"`
}

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <colour>",
		Short: "Pick black or white text for a background colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := colour.ParseColour(args[0])
			if err != nil {
				return err
			}

			pick := colour.ContrastingColour(input)
			name := "black"
			if pick == colour.White {
				name = "white"
			}
			a.logger.Debug("picked contrasting colour", "input", input.Hex(), "contrast", name)

			out := contrastJSON{Input: toColourJSON(input), Contrast: name, Colour: toColourJSON(pick)}

			w := cmd.OutOrStdout()
			p := a.previewer(w)
			return a.render(w, out, func() *Table {
				t := NewTable("INPUT", "CONTRAST", "COLOUR")
				in := input.Hex()
				if p.enabled {
					in = swatchWithText(input, "Aa", p.width) + " " + in
				}
				t.AddRow(in, name, pick.Hex())
				return t
			})
		},
	}
}
