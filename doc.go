/*
Package nthterm generates arithmetic and geometric numeric sequences and the
summary values that go with them: closed-form series sums, display formatting,
and the nth-term formula.

The computational core is four pure functions (Generate, Sum, Format, Formula)
with no hidden state. The Service facade composes them into a single
validate-generate-summarize pipeline and adds the ambient concerns (structured
logging, lifecycle hooks for metrics) without touching the math.

# Usage

	svc := nthterm.New()

	result, err := svc.Generate(context.Background(), domain.Parameters{
		Kind:      domain.KindGeometric,
		FirstTerm: 1,
		Step:      2,
		TermCount: 8,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result.Formatted) // 1, 2, 4, 8, 16, 32, 64, 128
	fmt.Println(result.ClosedSum) // 255

The engine is embeddable in any interface. This repository ships three hosts:
an HTTP server with an interactive form (internal/adapters/http), an MCP
server exposing generation as tools (internal/adapters/mcp), and a one-shot
CLI (cmd/nthterm).

# Numeric behavior

Arithmetic terms are computed directly as a + i*d; fractional steps carry
standard floating-point rounding, with no compensated summation. Geometric
terms use per-term exponentiation (a * r^i), so terms do not accumulate drift
but each pays the rounding of math.Pow. Non-finite inputs are not rejected:
NaN and infinity propagate through the formulas unchanged.
*/
package nthterm
