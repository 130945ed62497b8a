package metadata

import (
	"sort"
	"strings"
)

// validate cross-checks the registry after all scanning has finished. Every
// check runs; nothing stops at the first problem.
func (r *Registry) validate() {
	for cc := ccMin; cc <= ccMax; cc++ {
		if _, ok := r.Parameters[cc]; !ok {
			r.errorf("Missing parameter definition for CC %d", cc)
		}
	}

	r.reconcile(ForegroundSelectorCC, Foreground, r.ForegroundModes)
	r.reconcile(BackgroundSelectorCC, Background, r.BackgroundModes)
}

// reconcile compares a selector's declared mode list against the modes
// actually implemented in the matching category. Both directions are
// reported independently: names declared but never implemented, and names
// implemented but missing from the @modes list.
func (r *Registry) reconcile(cc int, category Category, implemented []Mode) {
	p, ok := r.Parameters[cc]
	if !ok || !p.Selector() {
		return
	}

	declared := make(map[string]bool, len(p.Modes))
	for _, name := range p.Modes {
		declared[name] = true
	}
	actual := make(map[string]bool, len(implemented))
	for _, m := range implemented {
		actual[m.Name] = true
	}

	if missing := diff(declared, actual); len(missing) > 0 {
		r.errorf("%s modes defined but not implemented: %s",
			category.Label(), strings.Join(missing, ", "))
	}
	if extra := diff(actual, declared); len(extra) > 0 {
		r.errorf("%s modes implemented but not in @modes list: %s",
			category.Label(), strings.Join(extra, ", "))
	}
}

// diff returns the keys of a that are absent from b, sorted for stable
// messages.
func diff(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
