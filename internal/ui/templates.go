package ui

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"joinInts": func(values []int) string {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.Itoa(v)
		}
		return strings.Join(parts, ", ")
	},
	"seekPath": func(values []int) string {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.Itoa(v)
		}
		return strings.Join(parts, " → ")
	},
	"formatAvg": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
}

// renderTemplate renders a page template inside the layout.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}
	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	if _, err := tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	return tmpl.ExecuteTemplate(w, "layout", data)
}

var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; background: #f3f4f6; color: #111827; }
    header { background: #1f2937; color: white; padding: 1rem 2rem; }
    header h1 { margin: 0; font-size: 1.25rem; }
    main { max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
    .card { background: white; border-radius: 8px; padding: 1.5rem; margin-bottom: 1.5rem;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
    label { display: block; font-size: 0.875rem; font-weight: 600; margin-bottom: 0.25rem; }
    input, select { width: 100%; padding: 0.5rem; border: 1px solid #d1d5db; border-radius: 6px;
                    box-sizing: border-box; font-size: 1rem; }
    .row { display: flex; gap: 1rem; margin-bottom: 1rem; }
    .row > div { flex: 1; }
    button { background: #2563eb; color: white; border: none; border-radius: 6px;
             padding: 0.6rem 1.5rem; font-size: 1rem; cursor: pointer; }
    button:hover { background: #1d4ed8; }
    .error { background: #fef2f2; border: 1px solid #fecaca; color: #b91c1c;
             border-radius: 6px; padding: 0.75rem 1rem; margin-bottom: 1rem; }
    .metrics { display: flex; gap: 2rem; margin-bottom: 1rem; }
    .metric .value { font-size: 1.75rem; font-weight: 700; }
    .metric .label { font-size: 0.8rem; color: #6b7280; text-transform: uppercase; }
    .sequence { font-family: ui-monospace, monospace; background: #f9fafb; padding: 0.75rem 1rem;
                border-radius: 6px; overflow-x: auto; white-space: nowrap; }
    .plot { width: 100%; height: auto; border: 1px solid #e5e7eb; border-radius: 6px; }
  </style>
</head>
<body>
  <header><h1>Disk Scheduling Simulator</h1></header>
  <main>
    {{template "content" .}}
  </main>
</body>
</html>`,

	"index": `
<div class="card">
  {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
  <form method="POST" action="/simulate">
    <div class="row">
      <div>
        <label for="initial_position">Initial Head Position</label>
        <input id="initial_position" name="initial_position" type="number" min="0" value="{{.InitialPosition}}" required>
      </div>
      <div>
        <label for="max_cylinder">Maximum Cylinder</label>
        <input id="max_cylinder" name="max_cylinder" type="number" min="1" value="{{.MaxCylinder}}" required>
      </div>
    </div>
    <div class="row">
      <div>
        <label for="requests">Requests (comma or space separated)</label>
        <input id="requests" name="requests" type="text" value="{{.Requests}}" placeholder="82, 170, 43, 140, 24, 16, 190" required>
      </div>
    </div>
    <div class="row">
      <div>
        <label for="algorithm">Scheduling Algorithm</label>
        <select id="algorithm" name="algorithm">
          {{range .Algorithms}}
          <option value="{{.ID}}" {{if eq .ID $.Algorithm}}selected{{end}}>{{.Name}}</option>
          {{end}}
        </select>
      </div>
      <div>
        <label for="direction">SCAN Direction</label>
        <select id="direction" name="direction">
          <option value="right" {{if eq .Direction "right"}}selected{{end}}>right</option>
          <option value="left" {{if eq .Direction "left"}}selected{{end}}>left</option>
        </select>
      </div>
    </div>
    <button type="submit">Run Simulation</button>
  </form>
</div>

{{if .Result}}
<div class="card">
  <h2>{{.Result.AlgorithmName}}{{if .Result.Direction}} ({{.Result.Direction}}){{end}}</h2>
  <div class="metrics">
    <div class="metric">
      <div class="value">{{.Result.TotalSeek}}</div>
      <div class="label">Total Seek (cylinders)</div>
    </div>
    <div class="metric">
      <div class="value">{{formatAvg .Result.AverageSeek}}</div>
      <div class="label">Average Seek</div>
    </div>
  </div>
  <p><strong>Service sequence:</strong></p>
  <div class="sequence">{{.Result.InitialPosition}} → {{seekPath .Result.Sequence}}</div>
</div>
<div class="card">
  <h2>Head Movement</h2>
  {{.PlotSVG}}
</div>
{{end}}`,
}
