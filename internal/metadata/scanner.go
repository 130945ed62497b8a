package metadata

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// selectorTooltip is the synthesized tooltip for every mode selector; the
// firmware blocks carry @modes instead of a free-text tooltip.
const selectorTooltip = "Layering of effects"

// paramBlockRe matches a plain parameter annotation block:
//
//	/**
//	 * @param Hue
//	 * @cc 1
//	 * @layer Foreground
//	 * @tooltip Sets color [roygbivmr]. Cyclic (min val = max val)
//	 */
//
// The tooltip may span lines; it runs to the closing delimiter and therefore
// cannot contain '*'.
var paramBlockRe = regexp.MustCompile(
	`(?s)/\*\*\s*\n\s*\*\s*@param\s+([^\n]+)\n` +
		`\s*\*\s*@cc\s+(\d+)\n` +
		`\s*\*\s*@layer\s+(\w+)\n` +
		`\s*\*\s*@tooltip\s+([^*]+?)\s*\*/`)

// selectorBlockRe matches a mode-selector block: same opening as a plain
// block but with an @modes payload ("0:Name0,1:Name1,...") in place of
// @layer/@tooltip.
var selectorBlockRe = regexp.MustCompile(
	`(?s)/\*\*\s*\n\s*\*\s*@param\s+([^\n]+)\n` +
		`\s*\*\s*@cc\s+(\d+)\n` +
		`\s*\*\s*@modes\s+([^*]+?)\s*\*/`)

// scanParameters records every plain parameter block in document order.
// A CC that is already present yields a duplicate-CC finding, but the later
// block still replaces the earlier one so generation stays deterministic.
func (r *Registry) scanParameters(src string) {
	for _, m := range paramBlockRe.FindAllStringSubmatch(src, -1) {
		name := strings.TrimSpace(m[1])
		cc, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		if _, ok := r.Parameters[cc]; ok {
			r.errorf("Duplicate CC number %d for parameter '%s'", cc, name)
		}

		r.Parameters[cc] = &Parameter{
			Name:    name,
			CC:      cc,
			Layer:   strings.TrimSpace(m[3]),
			Tooltip: strings.TrimSpace(m[4]),
		}
	}
}

// scanSelectors records every mode-selector block in document order.
func (r *Registry) scanSelectors(src string) {
	for _, m := range selectorBlockRe.FindAllStringSubmatch(src, -1) {
		name := strings.TrimSpace(m[1])
		cc, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		modes := parseModeList(m[3])

		if _, ok := r.Parameters[cc]; ok {
			r.errorf("Duplicate CC number %d for mode selector '%s'", cc, name)
		}

		r.Parameters[cc] = &Parameter{
			Name:    name,
			CC:      cc,
			Tooltip: selectorTooltip,
			Modes:   modes,
		}
	}
}

// parseModeList splits an @modes payload into numeric-setting/name entries.
// Pieces without a colon are skipped without a finding; the annotation
// grammar has always tolerated them.
func parseModeList(payload string) map[int]string {
	modes := make(map[int]string)
	for _, piece := range strings.Split(payload, ",") {
		piece = strings.TrimSpace(piece)
		key, name, ok := strings.Cut(piece, ":")
		if !ok {
			continue
		}
		num, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			continue
		}
		modes[num] = strings.TrimSpace(name)
	}
	return modes
}

func (r *Registry) errorf(format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
	})
}
