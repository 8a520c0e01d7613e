package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/colours/internal/colour"
	"github.com/jmylchreest/colours/internal/config"
)

// rgbJSON represents a colour's channels in JSON output.
type rgbJSON struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// colourJSON represents a colour in JSON output format.
type colourJSON struct {
	Hex string  `json:"hex"`
	RGB rgbJSON `json:"rgb"`
}

func toColourJSON(c colour.Packed) colourJSON {
	r, g, b := colour.Decompose(c)
	return colourJSON{Hex: c.Hex(), RGB: rgbJSON{R: r, G: g, B: b}}
}

func toColourJSONs(cs []colour.Packed) []colourJSON {
	out := make([]colourJSON, len(cs))
	for i, c := range cs {
		out[i] = toColourJSON(c)
	}
	return out
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// render writes either the JSON value or the text table, depending on the
// resolved output format.
func (a *app) render(w io.Writer, jsonValue any, table func() *Table) error {
	if a.settings.Format == config.FormatJSON {
		return writeJSON(w, jsonValue)
	}
	_, err := io.WriteString(w, table().Render())
	return err
}

// parseColours parses each argument as a colour.
func parseColours(args []string) ([]colour.Packed, error) {
	out := make([]colour.Packed, len(args))
	for i, arg := range args {
		c, err := colour.ParseColour(arg)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// schemeFlag is a pflag.Value accepting scheme names.
type schemeFlag struct{ scheme colour.Scheme }

var _ pflag.Value = (*schemeFlag)(nil)

func (f *schemeFlag) String() string { return f.scheme.String() }

func (f *schemeFlag) Set(s string) error {
	v, err := colour.ParseScheme(s)
	if err != nil {
		return err
	}
	f.scheme = v
	return nil
}

func (f *schemeFlag) Type() string { return "scheme" }

// formulaFlag is a pflag.Value accepting distance formula names.
type formulaFlag struct{ formula colour.Formula }

var _ pflag.Value = (*formulaFlag)(nil)

func (f *formulaFlag) String() string { return f.formula.String() }

func (f *formulaFlag) Set(s string) error {
	v, err := colour.ParseFormula(s)
	if err != nil {
		return err
	}
	f.formula = v
	return nil
}

func (f *formulaFlag) Type() string { return "formula" }
