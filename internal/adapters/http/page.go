package http

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nthterm/nthterm"
	"github.com/nthterm/nthterm/pkg/domain"
)

// formView is the data passed to the form page template.
type formView struct {
	Params      domain.Parameters
	MaxTerms    int
	Result      *domain.Result
	Warning     string
	DownloadURL string
	Examples    []example
}

type example struct {
	Title  string
	Params string
	Result string
}

var arithmeticExamples = []example{
	{"Natural Numbers", "First Term: 1, Common Difference: 1, Terms: 10", "1, 2, 3, 4, 5, 6, 7, 8, 9, 10 (sum 55)"},
	{"Even Numbers", "First Term: 2, Common Difference: 2, Terms: 8", "2, 4, 6, 8, 10, 12, 14, 16 (sum 72)"},
	{"Decreasing Sequence", "First Term: 100, Common Difference: -5, Terms: 6", "100, 95, 90, 85, 80, 75 (sum 525)"},
	{"Decimal Sequence", "First Term: 0.5, Common Difference: 0.25, Terms: 8", "0.5, 0.75, 1, 1.25, 1.5, 1.75, 2, 2.25 (sum 12)"},
}

var geometricExamples = []example{
	{"Powers of 2", "First Term: 1, Common Ratio: 2, Terms: 8", "1, 2, 4, 8, 16, 32, 64, 128 (sum 255)"},
	{"Halving", "First Term: 100, Common Ratio: 0.5, Terms: 6", "100, 50, 25, 12.5, 6.25, 3.125 (sum 196.875)"},
	{"Powers of 3", "First Term: 1, Common Ratio: 3, Terms: 6", "1, 3, 9, 27, 81, 243 (sum 364)"},
}

// GetForm handles GET /: the interactive form page. Submitting the form
// round-trips query parameters back to this handler; a returning session
// with no query re-generates from its remembered parameters.
func (s *Server) GetForm(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	q := r.URL.Query()

	view := formView{
		Params:   s.defaults,
		MaxTerms: s.gen.MaxTerms(),
	}

	generate := false
	switch {
	case hasGenerationKeys(q):
		params, err := s.parseQuery(q)
		if err != nil {
			view.Warning = err.Error()
		} else {
			view.Params = params
			generate = true
		}
	default:
		if session := s.loadSession(r.Context(), id); session != nil {
			view.Params = session.Parameters
			generate = session.Generated
		}
	}

	if generate {
		res, err := s.gen.Generate(r.Context(), view.Params)
		switch {
		case err == nil:
			view.Result = res
			view.DownloadURL = downloadURL(view.Params)
			s.saveSession(r.Context(), id, view.Params)
		default:
			// Out-of-range counts and any unexpected failure both surface as
			// a warning on the page; generation is simply skipped.
			view.Warning = err.Error()
		}
	}

	view.Examples = arithmeticExamples
	if view.Params.Kind == domain.KindGeometric {
		view.Examples = geometricExamples
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formPage.Execute(w, view); err != nil {
		s.logger.Error("Form page render failed", "err", err)
	}
}

func hasGenerationKeys(q url.Values) bool {
	for _, key := range []string{"kind", "first_term", "step", "term_count"} {
		if q.Has(key) {
			return true
		}
	}
	return false
}

func downloadURL(p domain.Parameters) string {
	q := url.Values{}
	q.Set("kind", string(p.Kind))
	q.Set("first_term", strconv.FormatFloat(p.FirstTerm, 'g', -1, 64))
	q.Set("step", strconv.FormatFloat(p.Step, 'g', -1, 64))
	q.Set("term_count", strconv.Itoa(p.TermCount))
	return "/download?" + q.Encode()
}

var formPage = template.Must(template.New("form").Funcs(template.FuncMap{
	"term": nthterm.FormatTerm,
}).Parse(formHTML))

const formHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Sequence Generator</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; color: #1f2937; }
  h1 { font-size: 1.6rem; }
  fieldset { border: 1px solid #d1d5db; border-radius: 6px; margin-bottom: 1rem; }
  label { display: block; margin: 0.5rem 0 0.15rem; font-weight: 600; }
  input, select { padding: 0.35rem; width: 10rem; }
  button { padding: 0.5rem 1.25rem; background: #4f46e5; color: white; border: 0; border-radius: 6px; cursor: pointer; }
  .warning { background: #fef3c7; border: 1px solid #f59e0b; padding: 0.75rem; border-radius: 6px; }
  .metrics { display: flex; gap: 2rem; margin: 0.75rem 0; }
  .metrics div span { display: block; color: #6b7280; font-size: 0.8rem; }
  code.seq { display: block; background: #f3f4f6; padding: 0.75rem; border-radius: 6px; overflow-x: auto; }
  ul.info { list-style: none; padding: 0; }
  ul.info li { background: #eff6ff; margin: 0.3rem 0; padding: 0.5rem; border-radius: 6px; }
</style>
</head>
<body>
<h1>&#x1F522; Sequence Generator</h1>
<p>Generate arithmetic or geometric sequences by specifying the parameters.</p>

<form method="get" action="/">
<fieldset>
  <legend>Input Parameters</legend>
  <label for="kind">Sequence Type</label>
  <select id="kind" name="kind">
    <option value="arithmetic" {{if ne .Params.Kind "geometric"}}selected{{end}}>Arithmetic</option>
    <option value="geometric" {{if eq .Params.Kind "geometric"}}selected{{end}}>Geometric</option>
  </select>

  <label for="first_term">First Term (a&#x2081;)</label>
  <input id="first_term" name="first_term" type="number" step="any" value="{{term .Params.FirstTerm}}">

  <label for="step">{{.Params.Kind.StepLabel}}</label>
  <input id="step" name="step" type="number" step="any" value="{{term .Params.Step}}">

  <label for="term_count">Number of Terms (max {{.MaxTerms}})</label>
  <input id="term_count" name="term_count" type="number" min="1" max="{{.MaxTerms}}" value="{{.Params.TermCount}}">

  <p><button type="submit">Generate Sequence</button></p>
</fieldset>
</form>

{{if .Warning}}<p class="warning">&#x26A0;&#xFE0F; {{.Warning}}</p>{{end}}

{{with .Result}}
<h2>Generated {{.Parameters.Kind.Label}} Sequence</h2>
<div class="metrics">
  <div><span>First Term</span>{{term .Parameters.FirstTerm}}</div>
  <div><span>{{.Parameters.Kind.StepLabel}}</span>{{term .Parameters.Step}}</div>
  <div><span>Number of Terms</span>{{.Parameters.TermCount}}</div>
</div>

<h3>Sequence:</h3>
<code class="seq">{{.Formatted}}</code>

{{if gt (len .Terms) 1}}
<h3>Additional Information:</h3>
<ul class="info">
  <li><strong>Last Term:</strong> {{term .LastTerm}}</li>
  <li><strong>Sum of Series:</strong> {{term .ClosedSum}}</li>
  <li><strong>Sum (Verification):</strong> {{term .DirectSum}}</li>
  <li><strong>Range:</strong> {{term .Range}}</li>
  <li><strong>Formula:</strong> {{.Formula}}</li>
</ul>
{{end}}

<p><a href="{{$.DownloadURL}}" download>&#x1F4E5; Download Sequence</a></p>
{{end}}

<details>
<summary>&#x1F4DA; Examples</summary>
<ul>
{{range .Examples}}
  <li><strong>{{.Title}}</strong><br>{{.Params}}<br>{{.Result}}</li>
{{end}}
</ul>
</details>
</body>
</html>
`
