package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// consistentRegistry builds a small registry that passes every cross-check:
// all 15 CCs defined, both selectors matching their implementations.
func consistentRegistry() *Registry {
	r := newRegistry()
	for cc := 1; cc <= 15; cc++ {
		r.Parameters[cc] = &Parameter{Name: "P", CC: cc, Layer: "Foreground", Tooltip: "t"}
	}
	r.Parameters[ForegroundSelectorCC] = &Parameter{
		Name: "Foreground", CC: ForegroundSelectorCC, Tooltip: "Layering of effects",
		Modes: map[int]string{0: "Solid", 1: "Pulse"},
	}
	r.Parameters[BackgroundSelectorCC] = &Parameter{
		Name: "Background", CC: BackgroundSelectorCC, Tooltip: "Layering of effects",
		Modes: map[int]string{0: "Flat"},
	}
	r.ForegroundModes = []Mode{
		{Name: "Solid", Case: 0, Uses: []string{"ffHue"}},
		{Name: "Pulse", Case: 1, Uses: []string{"ffHue", "ffBright"}},
	}
	r.BackgroundModes = []Mode{
		{Name: "Flat", Case: 0, Uses: []string{"bgHue"}},
	}
	return r
}

func TestValidateConsistentRegistry(t *testing.T) {
	r := consistentRegistry()
	r.validate()

	assert.Empty(t, r.Findings)
}

func TestValidateMissingParameter(t *testing.T) {
	r := consistentRegistry()
	delete(r.Parameters, 12)
	r.validate()

	require.Len(t, r.Findings, 1)
	assert.Equal(t, "Missing parameter definition for CC 12", r.Findings[0].Message)
}

func TestValidateDeclaredNotImplemented(t *testing.T) {
	r := consistentRegistry()
	r.Parameters[ForegroundSelectorCC].Modes[2] = "Ghost"
	r.validate()

	require.Len(t, r.Findings, 1)
	assert.Equal(t, "Foreground modes defined but not implemented: Ghost", r.Findings[0].Message)
}

func TestValidateImplementedNotDeclared(t *testing.T) {
	r := consistentRegistry()
	r.ForegroundModes = append(r.ForegroundModes, Mode{Name: "Rogue", Case: 2, Uses: []string{"ffHue"}})
	r.validate()

	require.Len(t, r.Findings, 1)
	assert.Equal(t, "Foreground modes implemented but not in @modes list: Rogue", r.Findings[0].Message)
}

func TestValidateBothDirectionsReportedIndependently(t *testing.T) {
	r := consistentRegistry()
	r.Parameters[BackgroundSelectorCC].Modes[1] = "Ghost"
	r.BackgroundModes = append(r.BackgroundModes, Mode{Name: "Rogue", Case: 1, Uses: []string{"bgHue"}})
	r.validate()

	require.Len(t, r.Findings, 2)
	assert.Equal(t, "Background modes defined but not implemented: Ghost", r.Findings[0].Message)
	assert.Equal(t, "Background modes implemented but not in @modes list: Rogue", r.Findings[1].Message)
}

func TestValidateSkipsReconciliationWithoutSelector(t *testing.T) {
	r := consistentRegistry()
	// CC 6 defined as a plain parameter: nothing to reconcile against.
	r.Parameters[ForegroundSelectorCC] = &Parameter{Name: "Knob", CC: 6, Layer: "Foreground", Tooltip: "t"}
	r.validate()

	assert.Empty(t, r.Findings)
}

func TestErrorsAndWarningsSplitBySeverity(t *testing.T) {
	r := newRegistry()
	r.Findings = []Finding{
		{Severity: SeverityError, Message: "boom"},
		{Severity: SeverityWarning, Message: "hmm"},
	}

	require.Len(t, r.Errors(), 1)
	assert.Equal(t, "boom", r.Errors()[0].Message)
	require.Len(t, r.Warnings(), 1)
	assert.Equal(t, "hmm", r.Warnings()[0].Message)
}
