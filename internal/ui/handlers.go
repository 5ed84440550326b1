// Package ui is the HTML front end of the simulator: one form page that
// collects a configuration and a request list, runs a policy, and shows
// the resulting sequence, seek metrics, and head-movement plot.
package ui

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/me/seeksim/internal/plot"
	"github.com/me/seeksim/pkg/disk"
	"github.com/me/seeksim/pkg/model"
)

// UI handles the web user interface.
type UI struct {
	logger *slog.Logger
}

// New creates a new UI handler.
func New(logger *slog.Logger) *UI {
	return &UI{logger: logger.With("component", "ui")}
}

// algorithmInfos lists the policies for the form's select element.
func algorithmInfos() []model.AlgorithmInfo {
	policies := []disk.Policy{disk.PolicyFCFS, disk.PolicySSTF, disk.PolicySCAN, disk.PolicyCSCAN}
	infos := make([]model.AlgorithmInfo, 0, len(policies))
	for _, p := range policies {
		infos = append(infos, model.AlgorithmInfo{
			ID:             string(p),
			Name:           p.DisplayName(),
			NeedsDirection: p.NeedsDirection(),
		})
	}
	return infos
}

// HandleIndex renders the simulation form with the textbook defaults.
func (ui *UI) HandleIndex(w http.ResponseWriter, r *http.Request) {
	ui.render(w, map[string]any{
		"Title":           "Disk Scheduling Simulator",
		"InitialPosition": "50",
		"MaxCylinder":     "200",
		"Requests":        "",
		"Algorithm":       string(disk.PolicyFCFS),
		"Direction":       string(disk.DirectionRight),
		"Algorithms":      algorithmInfos(),
	})
}

// HandleSimulate runs one policy over the submitted form and re-renders
// the page with the result. Validation failures re-render the form with
// the offending value and its valid range, inputs preserved.
func (ui *UI) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	data := map[string]any{
		"Title":           "Disk Scheduling Simulator",
		"InitialPosition": r.FormValue("initial_position"),
		"MaxCylinder":     r.FormValue("max_cylinder"),
		"Requests":        r.FormValue("requests"),
		"Algorithm":       r.FormValue("algorithm"),
		"Direction":       r.FormValue("direction"),
		"Algorithms":      algorithmInfos(),
	}

	fail := func(msg string) {
		data["Error"] = msg
		ui.render(w, data)
	}

	initial, err := strconv.Atoi(strings.TrimSpace(r.FormValue("initial_position")))
	if err != nil {
		fail("initial head position must be an integer")
		return
	}
	maxCyl, err := strconv.Atoi(strings.TrimSpace(r.FormValue("max_cylinder")))
	if err != nil {
		fail("maximum cylinder must be an integer")
		return
	}
	requests, err := ParseRequestList(r.FormValue("requests"))
	if err != nil {
		fail(err.Error())
		return
	}
	if len(requests) == 0 {
		fail("add at least one request")
		return
	}

	sched, err := disk.New(initial, maxCyl)
	if err != nil {
		fail(err.Error())
		return
	}
	for _, req := range requests {
		if err := sched.AddRequest(req); err != nil {
			fail(err.Error())
			return
		}
	}

	policy, err := disk.ParsePolicy(r.FormValue("algorithm"))
	if err != nil {
		fail(err.Error())
		return
	}
	direction := disk.Direction(r.FormValue("direction"))
	if policy.NeedsDirection() && direction == "" {
		direction = disk.DirectionRight
	}

	res, err := sched.Run(policy, direction)
	if err != nil {
		fail(err.Error())
		return
	}

	result := &model.SimulationResult{
		Algorithm:       string(policy),
		AlgorithmName:   policy.DisplayName(),
		InitialPosition: initial,
		MaxCylinder:     maxCyl,
		Requests:        requests,
		Sequence:        res.Sequence,
		TotalSeek:       res.TotalSeek,
		AverageSeek:     res.AverageSeek(),
	}
	if policy.NeedsDirection() {
		result.Direction = string(direction)
	}

	data["Result"] = result
	data["PlotSVG"] = template.HTML(plot.SVG(initial, res.Sequence, maxCyl, requests))
	ui.render(w, data)
}

// ParseRequestList splits a comma/space separated list of cylinders.
func ParseRequestList(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	var out []int
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("request %q is not an integer", f)
		}
		out = append(out, v)
	}
	return out, nil
}

func (ui *UI) render(w http.ResponseWriter, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderTemplate(w, "index", data); err != nil {
		ui.logger.Error("render failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
