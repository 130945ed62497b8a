package metadata

// Binding pairs a firmware state variable with the CC number that drives it.
// The table mirrors the switch statement in the firmware's OnControlChange
// handler and is maintained by hand; it is configuration, not something the
// scanner derives from the source text.
type Binding struct {
	Variable string
	CC       int
}

// Bindings covers the full committed CC range 1-15, one variable per CC.
var Bindings = []Binding{
	{"ffHue", 1},
	{"ffSat", 2},
	{"ffBright", 3},
	{"ffLedStart", 4},
	{"ffLedLength", 5},
	{"ffMode", 6},
	{"lines", 7},
	{"cAmp", 8},
	{"bgMode", 9},
	{"pan", 10},
	{"bgHue", 11},
	{"bgSat", 12},
	{"bgBright", 13},
	{"bgLedStart", 14},
	{"bgLedLength", 15},
}

// VariableForCC returns the firmware variable bound to a CC number, or ""
// when the CC has no binding.
func VariableForCC(cc int) string {
	for _, b := range Bindings {
		if b.CC == cc {
			return b.Variable
		}
	}
	return ""
}

// CCForVariable returns the CC number a firmware variable is bound to.
func CCForVariable(name string) (int, bool) {
	for _, b := range Bindings {
		if b.Variable == name {
			return b.CC, true
		}
	}
	return 0, false
}
