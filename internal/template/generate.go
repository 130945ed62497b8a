// Package template projects a validated metadata registry into the
// controller-mapping CSV consumed by the host application, and checks a
// generated table against the committed one for drift.
package template

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/lightengine/templategen/internal/metadata"
)

// Header is the fixed first row of the template table.
var Header = []string{"Parameter", "CC", "Minimum Value", "Maximum Value", "Layer", "Tooltip", "Choices"}

// Every parameter spans the full MIDI CC value range.
const (
	minValue = "0"
	maxValue = "127"
)

// Rows projects the registry into the output table, header first, then one
// row per defined CC in ascending order. CCs without a parameter are skipped;
// with a validated registry that cannot happen.
func Rows(reg *metadata.Registry) [][]string {
	rows := [][]string{Header}

	for cc := 1; cc <= 15; cc++ {
		p, ok := reg.Parameters[cc]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			p.Name,
			strconv.Itoa(cc),
			minValue,
			maxValue,
			p.Layer,
			p.Tooltip,
			choices(reg, p),
		})
	}
	return rows
}

// choices builds the newline-joined Choices cell. A selector lists its own
// declared modes in ascending numeric-setting order; a plain parameter lists
// every mode that reads its bound variable, in mode discovery order.
func choices(reg *metadata.Registry, p *metadata.Parameter) string {
	if p.Selector() {
		keys := make([]int, 0, len(p.Modes))
		for k := range p.Modes {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = p.Modes[k]
		}
		return strings.Join(names, "\n")
	}

	variable := metadata.VariableForCC(p.CC)
	if variable == "" {
		return ""
	}
	return strings.Join(reg.ModesUsing(variable), "\n")
}

// Write renders the table to path. Multi-line Choices cells are quoted by the
// CSV encoder, so embedded newlines stay inside a single field.
func Write(path string, reg *metadata.Registry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(Rows(reg)); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
