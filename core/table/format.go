package table

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Badge variants, the way listing screens style enum values.
const (
	VariantDefault     = "default"
	VariantSecondary   = "secondary"
	VariantOutline     = "outline"
	VariantDestructive = "destructive"
)

// Cell tones.
const (
	TonePositive = "positive"
	ToneNegative = "negative"
)

// Cell is a display element: what a renderer needs to draw one table cell.
// It carries no markup; renderers (HTML, terminal, JSON) decide how to draw it.
type Cell struct {
	Text    string `json:"text"`
	Variant string `json:"variant,omitempty"` // badge variant; empty means plain text
	Tone    string `json:"tone,omitempty"`
	Percent *int   `json:"percent,omitempty"` // progress bar value, 0 - 100
}

// Formatter turns a raw column value into a Cell.
type Formatter interface {
	Format(value interface{}, row Row) Cell
}

// FormatterFunc adapts a func to a Formatter.
type FormatterFunc func(value interface{}, row Row) Cell

func (f FormatterFunc) Format(value interface{}, row Row) Cell { return f(value, row) }

var (
	_ Formatter = Identity{}
	_ Formatter = Currency{}
	_ Formatter = Date{}
	_ Formatter = Badge{}
	_ Formatter = Percentage{}
)

// Identity displays the raw value's display string.
type Identity struct{}

func (Identity) Format(value interface{}, _ Row) Cell {
	return Cell{Text: Display(value)}
}

// Currency displays numbers with thousands separators, prefixed by Symbol (eg. "$1,500").
// With Tone set, negative amounts get ToneNegative and positive ones TonePositive.
type Currency struct {
	Symbol string
	Tone   bool
}

func (c Currency) Format(value interface{}, _ Row) Cell {
	f, ok := toFloat(value)
	if !ok {
		return Cell{Text: Display(value)}
	}
	var sign string
	if f < 0 {
		sign = "-"
	}
	cell := Cell{Text: sign + c.Symbol + humanize.Commaf(math.Abs(f))}
	if c.Tone {
		switch {
		case f < 0:
			cell.Tone = ToneNegative
		case f > 0:
			cell.Tone = TonePositive
		}
	}
	return cell
}

// Date displays dates with Layout (default "Jan 2, 2006").
// String values are parsed first; unparsable values are shown as is.
type Date struct {
	Layout string
}

func (d Date) Format(value interface{}, _ Row) Cell {
	layout := d.Layout
	if layout == "" {
		layout = "Jan 2, 2006"
	}
	t, ok := toTime(value)
	if !ok {
		return Cell{Text: Display(value)}
	}
	return Cell{Text: t.Format(layout)}
}

// Badge displays enum values as labelled badges.
// Labels maps raw values to display labels, Variants maps raw values to badge variants;
// values missing from Variants get Fallback (VariantDefault when empty).
// With Title set, labels are title-cased ("monthly" -> "Monthly").
type Badge struct {
	Labels   map[string]string
	Variants map[string]string
	Fallback string
	Title    bool
}

func (b Badge) Format(value interface{}, _ Row) Cell {
	raw := Display(value)
	label, ok := b.Labels[raw]
	if !ok {
		label = raw
		if b.Title {
			// a Caser is stateful, do not share it
			label = cases.Title(language.English).String(strings.ToLower(raw))
		}
	}
	variant, ok := b.Variants[raw]
	if !ok {
		variant = b.Fallback
		if variant == "" {
			variant = VariantDefault
		}
	}
	return Cell{Text: label, Variant: variant}
}

// Percentage displays a 0 - 100 value as "n%" along with a progress value.
type Percentage struct{}

func (Percentage) Format(value interface{}, _ Row) Cell {
	f, ok := toFloat(value)
	if !ok {
		return Cell{Text: Display(value)}
	}
	p := int(math.Round(math.Max(0, math.Min(100, f))))
	return Cell{Text: Display(value) + "%", Percent: &p}
}
