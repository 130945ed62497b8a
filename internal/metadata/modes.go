package metadata

import (
	"regexp"
	"strconv"
	"strings"
)

// caseModeRe matches a per-case mode declaration inside a firmware switch:
//
//	case 2: // @mode Moving Dots @uses ffHue,ffSat,ffBright,ffLedStart,ffLedLength,lines
//
// The @uses list is written without spaces; variable order is preserved as
// the mode's read order.
var caseModeRe = regexp.MustCompile(`case\s+(\d+):\s*//\s*@mode\s+([^@]+?)\s*@uses\s+([\w,]+)`)

// scanModes walks one category's function-body text and appends every
// recognized mode in discovery order. Duplicate mode names and duplicate case
// numbers within the category are reported independently, so a declaration
// repeating both yields both findings; the later declaration still replaces
// the earlier one.
func (r *Registry) scanModes(body string, category Category) {
	modes := r.category(category)
	seenCases := make(map[int]bool)
	for _, m := range *modes {
		seenCases[m.Case] = true
	}

	for _, m := range caseModeRe.FindAllStringSubmatch(body, -1) {
		caseNum, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		name := strings.TrimSpace(m[2])

		uses := strings.Split(m[3], ",")
		for i := range uses {
			uses[i] = strings.TrimSpace(uses[i])
		}

		dupName := indexByName(*modes, name)
		if dupName >= 0 {
			r.errorf("Duplicate %s mode '%s' (case %d)", category, name, caseNum)
		}
		if seenCases[caseNum] {
			r.errorf("Duplicate case %d in %s modes", caseNum, category)
		}
		seenCases[caseNum] = true

		if dupName >= 0 {
			(*modes)[dupName] = Mode{Name: name, Case: caseNum, Uses: uses}
			continue
		}
		*modes = append(*modes, Mode{Name: name, Case: caseNum, Uses: uses})
	}
}

func (r *Registry) category(c Category) *[]Mode {
	if c == Background {
		return &r.BackgroundModes
	}
	return &r.ForegroundModes
}

func indexByName(modes []Mode, name string) int {
	for i, m := range modes {
		if m.Name == name {
			return i
		}
	}
	return -1
}
