// Package display renders ivchecker results for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lilellia/ivchecker/internal/iv"
	"github.com/mattn/go-runewidth"
)

// Printer writes styled output to w.
type Printer struct {
	w      io.Writer
	styles Styles

	// Verbose adds base stats and a summary header to check results.
	Verbose bool
}

// New creates a printer for w. Colors are only emitted when w is a terminal.
func New(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		styles: NewStyles(lipgloss.NewRenderer(w)),
	}
}

// CheckResult prints one line per stat with its possible IVs.
func (p *Printer) CheckResult(res *iv.CheckResult) {
	if p.Verbose {
		fmt.Fprintf(p.w, "%s, %s\n",
			p.styles.Subtitle.Render(res.Species), natureSummary(res.Nature))
		if res.Characteristic != nil {
			fmt.Fprintf(p.w, "characteristic = %s (%s %% 5 = %d)\n",
				res.Characteristic.Description, res.Characteristic.HighStat, res.Characteristic.Residue)
		}
		if res.HiddenPower != nil {
			fmt.Fprintf(p.w, "hidden power = %s\n", *res.HiddenPower)
		}
	}

	for _, s := range iv.AllStats {
		var base string
		if p.Verbose {
			base = p.styles.Muted.Render(fmt.Sprintf(" [Base: %3d]", res.Base[s]))
		}
		fmt.Fprintf(p.w, "%s%s - IVs: %s\n",
			p.styles.Label.Render(fmt.Sprintf("%3s", s)), base, p.candidates(res.IVs[s]))
	}
}

func (p *Printer) candidates(c iv.Candidates) string {
	text := iv.FormatCandidates(c)
	switch len(c) {
	case 0:
		return p.styles.Error.Render(text)
	case 1:
		return p.styles.Exact.Render(text)
	default:
		return p.styles.Value.Render(text)
	}
}

func natureSummary(n iv.Nature) string {
	if n.IsNeutral() {
		return "neutral nature"
	}
	return fmt.Sprintf("nature = +%s/-%s", n.Raised, n.Lowered)
}

// PlainIVs renders a check result as unstyled text, one stat per line.
func PlainIVs(res *iv.CheckResult) string {
	var b strings.Builder
	for _, s := range iv.AllStats {
		fmt.Fprintf(&b, "%3s - IVs: %s\n", s, iv.FormatCandidates(res.IVs[s]))
	}
	return b.String()
}

// Ranges prints the lowest and highest stat for every stat.
func (p *Printer) Ranges(res *iv.RangeResult) {
	fmt.Fprintln(p.w, p.styles.Title.Render(fmt.Sprintf("%s at level %d", res.Species, res.Level)))
	for _, s := range iv.AllStats {
		r := res.Ranges[s]
		fmt.Fprintf(p.w, "%s: %s %s\n",
			p.styles.Label.Render(fmt.Sprintf("%3s", s)),
			p.styles.Value.Render(fmt.Sprintf("%d-%d", r.Min, r.MaxNoEV)),
			p.styles.Muted.Render(fmt.Sprintf("(%d with %d EVs)", r.MaxFullEV, iv.MaxEV)))
	}
}

// BaseStats prints a species' base stats and their total.
func (p *Printer) BaseStats(species string, generation int, base iv.Stats) {
	fmt.Fprintln(p.w, p.styles.Title.Render(fmt.Sprintf("%s (generation %d)", species, generation)))
	total := 0
	for _, s := range iv.AllStats {
		total += base[s]
		fmt.Fprintf(p.w, "%s: %s\n",
			p.styles.Label.Render(fmt.Sprintf("%3s", s)),
			p.styles.Value.Render(fmt.Sprintf("%3d", base[s])))
	}
	fmt.Fprintf(p.w, "%s: %s\n", p.styles.Label.Render("BST"), p.styles.Value.Render(fmt.Sprintf("%3d", total)))
}

// HiddenPower prints the hidden power type and base power of known IVs.
func (p *Printer) HiddenPower(ivs iv.Stats) {
	fmt.Fprintf(p.w, "%s %s %s\n",
		p.styles.Label.Render("Hidden Power:"),
		p.styles.Value.Render(iv.HiddenPower(ivs).String()),
		p.styles.Muted.Render(fmt.Sprintf("(%d)", iv.HiddenPowerPower(ivs))))
}

// Natures prints a table of natures with the stats they change.
func (p *Printer) Natures(natures []iv.Nature) {
	names := make([]string, len(natures))
	for i, n := range natures {
		names[i] = n.Name
	}
	width := maxWidth(names)

	for _, n := range natures {
		effect := "neutral"
		if !n.IsNeutral() {
			effect = fmt.Sprintf("+%s -%s", n.Raised, n.Lowered)
		}
		fmt.Fprintf(p.w, "%s  %s\n",
			p.styles.Value.Render(runewidth.FillRight(n.Name, width)),
			p.styles.Muted.Render(effect))
	}
}

// Characteristics prints each characteristic with the IV it reveals.
func (p *Printer) Characteristics(chars []iv.Characteristic) {
	names := make([]string, len(chars))
	for i, c := range chars {
		names[i] = c.Description
	}
	width := maxWidth(names)

	for _, c := range chars {
		fmt.Fprintf(p.w, "%s  %s\n",
			p.styles.Value.Render(runewidth.FillRight(c.Description, width)),
			p.styles.Muted.Render(fmt.Sprintf("%s %% 5 = %d", c.HighStat, c.Residue)))
	}
}

// Columns prints items in a grid that fits within width terminal cells.
func (p *Printer) Columns(items []string, width int) {
	if len(items) == 0 {
		return
	}

	cell := maxWidth(items) + 2
	cols := max(1, width/cell)
	rows := (len(items) + cols - 1) / cols

	for r := 0; r < rows; r++ {
		var line strings.Builder
		for c := 0; c < cols; c++ {
			// column-major, like ls
			i := c*rows + r
			if i >= len(items) {
				break
			}
			line.WriteString(runewidth.FillRight(items[i], cell))
		}
		fmt.Fprintln(p.w, strings.TrimRight(line.String(), " "))
	}
}

// maxWidth returns the widest display width among items.
func maxWidth(items []string) int {
	w := 0
	for _, s := range items {
		w = max(w, runewidth.StringWidth(s))
	}
	return w
}
