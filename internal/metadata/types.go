package metadata

import "fmt"

// Parameter describes one MIDI CC parameter declared in the firmware source
// via an @param annotation block.
type Parameter struct {
	Name    string
	CC      int
	Layer   string
	Tooltip string
	// Modes is non-nil only for mode selectors (@modes blocks); it maps the
	// selector's numeric setting to the mode name it activates.
	Modes map[int]string
}

// Selector reports whether this parameter chooses among enumerated modes
// rather than covering a continuous value range.
func (p *Parameter) Selector() bool {
	return p.Modes != nil
}

// Category identifies which mode-selection subsystem a mode belongs to.
// Foreground and background modes live in separate namespaces because the
// firmware dispatches them from independent switch statements.
type Category string

const (
	Foreground Category = "foreground"
	Background Category = "background"
)

// Label returns the category name capitalized for user-facing messages.
func (c Category) Label() string {
	switch c {
	case Foreground:
		return "Foreground"
	case Background:
		return "Background"
	}
	return string(c)
}

// Mode is one implemented mode, recognized from a case-label annotation
// (case N: // @mode Name @uses a,b,c) inside a firmware switch statement.
type Mode struct {
	Name string
	Case int
	// Uses lists the firmware state variables the mode reads, in the order
	// they were written. Order is meaningful and preserved verbatim.
	Uses []string
}

// Severity classifies a validation finding.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Finding is one validation problem discovered while scanning or
// cross-checking the metadata. Findings accumulate; they never interrupt
// parsing.
type Finding struct {
	Severity Severity
	Message  string
}

func (f Finding) String() string {
	if f.Severity == SeverityWarning {
		return fmt.Sprintf("warning: %s", f.Message)
	}
	return f.Message
}
