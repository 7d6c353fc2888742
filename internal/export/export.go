// Package export renders a generation result for consumption outside the
// form: the downloadable plain-text artifact and the markdown report used
// by the CLI.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nthterm/nthterm"
	"github.com/nthterm/nthterm/pkg/domain"
)

// Text builds the downloadable plain-text artifact.
func Text(res *domain.Result) string {
	p := res.Parameters

	var b strings.Builder
	fmt.Fprintf(&b, "%s Sequence\n", p.Kind.Label())
	fmt.Fprintf(&b, "First Term: %s\n", nthterm.FormatTerm(p.FirstTerm))
	fmt.Fprintf(&b, "%s: %s\n", p.Kind.StepLabel(), nthterm.FormatTerm(p.Step))
	fmt.Fprintf(&b, "Number of Terms: %d\n", p.TermCount)
	fmt.Fprintf(&b, "Sequence: %s\n", res.Formatted)
	fmt.Fprintf(&b, "Sum of Series: %s\n", nthterm.FormatTerm(res.ClosedSum))
	return b.String()
}

// Filename encodes the kind and parameters into the artifact name, e.g.
// "geometric_sequence_1_2_8.txt".
func Filename(p domain.Parameters) string {
	return fmt.Sprintf("%s_sequence_%s_%s_%d.txt",
		string(p.Kind),
		num(p.FirstTerm),
		num(p.Step),
		p.TermCount,
	)
}

// Markdown builds the CLI report. It is rendered through glamour when stdout
// is a terminal and printed as-is otherwise.
func Markdown(res *domain.Result) string {
	p := res.Parameters

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Sequence\n\n", p.Kind.Label())
	fmt.Fprintf(&b, "**First Term:** %s · **%s:** %s · **Terms:** %d\n\n",
		nthterm.FormatTerm(p.FirstTerm), p.Kind.StepLabel(), nthterm.FormatTerm(p.Step), p.TermCount)
	fmt.Fprintf(&b, "```\n%s\n```\n\n", res.Formatted)

	if len(res.Terms) > 1 {
		fmt.Fprintf(&b, "- **Last Term:** %s\n", nthterm.FormatTerm(res.LastTerm))
		fmt.Fprintf(&b, "- **Sum of Series:** %s\n", nthterm.FormatTerm(res.ClosedSum))
		fmt.Fprintf(&b, "- **Sum (Verification):** %s\n", nthterm.FormatTerm(res.DirectSum))
		fmt.Fprintf(&b, "- **Range:** %s\n", nthterm.FormatTerm(res.Range))
		fmt.Fprintf(&b, "- **Formula:** %s\n", res.Formula)
	}
	return b.String()
}

// num formats a float compactly for filenames (no trailing ".0", full
// precision otherwise).
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
