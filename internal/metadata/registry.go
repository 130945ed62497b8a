// Package metadata extracts the machine-readable annotations embedded in the
// lights firmware source and cross-validates them into a single in-memory
// model. The annotations are the source of truth for parameter names, UI
// layering, tooltips and the two mode enumerations; everything downstream
// (the CSV template, the drift check) is a projection of this model.
package metadata

import (
	"slices"
	"strings"
)

// Committed CC range and the two selector conventions.
const (
	ccMin = 1
	ccMax = 15

	// ffMode / bgMode selectors by firmware convention.
	ForegroundSelectorCC = 6
	BackgroundSelectorCC = 9
)

// The three handler functions carrying per-case mode annotations. OnNoteOn
// and OnControlChange jointly dispatch foreground modes; updateBG dispatches
// background modes.
var (
	foregroundFunctions = []string{"OnNoteOn", "OnControlChange"}
	backgroundFunction  = "updateBG"
)

// Registry is the unified model built from one read of the source text.
// It is constructed once per run, validated, consumed by the generator and
// then discarded; nothing mutates it after Parse returns.
type Registry struct {
	Parameters      map[int]*Parameter
	ForegroundModes []Mode
	BackgroundModes []Mode
	Findings        []Finding
}

// Parse scans the full firmware source text and returns the validated
// registry. Parsing always completes; problems are accumulated as findings
// so a single run reports every issue at once.
func Parse(src string) *Registry {
	r := &Registry{Parameters: make(map[int]*Parameter)}

	r.scanParameters(src)
	r.scanSelectors(src)

	var fg strings.Builder
	for _, fn := range foregroundFunctions {
		if body, err := FunctionBody(src, fn); err == nil {
			fg.WriteString(body)
		}
	}
	r.scanModes(fg.String(), Foreground)

	if body, err := FunctionBody(src, backgroundFunction); err == nil {
		r.scanModes(body, Background)
	}

	r.validate()
	return r
}

// Errors returns the error-severity findings.
func (r *Registry) Errors() []Finding {
	return r.findings(SeverityError)
}

// Warnings returns the warning-severity findings. Warnings are surfaced but
// never block generation.
func (r *Registry) Warnings() []Finding {
	return r.findings(SeverityWarning)
}

func (r *Registry) findings(s Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

// ModesUsing returns the names of every mode whose @uses list contains the
// given firmware variable, foreground first, each category in discovery
// order.
func (r *Registry) ModesUsing(variable string) []string {
	var names []string
	for _, m := range r.ForegroundModes {
		if slices.Contains(m.Uses, variable) {
			names = append(names, m.Name)
		}
	}
	for _, m := range r.BackgroundModes {
		if slices.Contains(m.Uses, variable) {
			names = append(names, m.Name)
		}
	}
	return names
}
