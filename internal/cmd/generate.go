package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/lightengine/templategen/internal/log"
	"github.com/lightengine/templategen/internal/metadata"
	"github.com/lightengine/templategen/internal/template"
)

// Generate extracts annotation metadata from the firmware source, validates
// it and writes the controller template table. With --validate it writes to
// a temporary file and compares against the committed table instead.
type Generate struct {
	Source   string `help:"Firmware source file to scan" default:"Source/lights/lights.ino" env:"TEMPLATEGEN_SOURCE"`
	Output   string `help:"Destination for the generated template table" default:"Template.csv" env:"TEMPLATEGEN_OUTPUT"`
	Validate bool   `help:"Compare a freshly generated table against the committed one instead of overwriting it"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	if _, err := os.Stat(g.Source); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("source file %s not found", g.Source)
		}
		return fmt.Errorf("stat %s: %w", g.Source, err)
	}
	data, err := os.ReadFile(g.Source)
	if err != nil {
		return fmt.Errorf("read %s: %w", g.Source, err)
	}

	logger.Info("Parsing firmware metadata", "source", g.Source)
	reg := metadata.Parse(string(data))
	traceRegistry(logger, reg)

	if errs := reg.Errors(); len(errs) > 0 {
		for _, f := range errs {
			logger.Error(f.Message)
		}
		return fmt.Errorf("metadata validation failed with %d error(s)", len(errs))
	}
	for _, f := range reg.Warnings() {
		logger.Warn(f.Message)
	}

	logger.Info("Scan complete",
		"parameters", len(reg.Parameters),
		"foregroundModes", len(reg.ForegroundModes),
		"backgroundModes", len(reg.BackgroundModes))

	if g.Validate {
		return g.checkDrift(logger, reg)
	}

	if err := template.Write(g.Output, reg); err != nil {
		return err
	}
	logger.Info("Template generated", "path", g.Output)
	return nil
}

// checkDrift generates the table to a sibling temp file, diffs it against
// the committed one and cleans the temp file up again.
func (g *Generate) checkDrift(logger *slog.Logger, reg *metadata.Registry) error {
	tmp := tempPath(g.Output)
	if err := template.Write(tmp, reg); err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp) }()

	ok, diffs, err := template.CompareFiles(tmp, g.Output)
	if errors.Is(err, template.ErrExistingNotFound) {
		logger.Warn("No committed table to compare against", "path", g.Output)
		return fmt.Errorf("no committed table at %s", g.Output)
	}
	if err != nil {
		return err
	}

	if ok {
		fmt.Printf("%s Generated table matches %s\n", statusGlyph(true), g.Output)
		return nil
	}

	fmt.Printf("%s Generated table differs from %s\n", statusGlyph(false), g.Output)
	for _, d := range diffs {
		fmt.Printf("\nLine %d:\n  Generated: %s\n  Existing:  %s\n", d.Line, d.Generated, d.Existing)
	}
	return fmt.Errorf("generated table differs from %s", g.Output)
}

// statusGlyph keeps the glyphs for interactive runs and plain words for
// redirected output.
func statusGlyph(ok bool) string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if ok {
			return "✓"
		}
		return "✗"
	}
	if ok {
		return "OK:"
	}
	return "MISMATCH:"
}

func tempPath(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "_generated" + ext
}

// traceRegistry dumps every recognized annotation at trace level for
// debugging the scan itself.
func traceRegistry(logger *slog.Logger, reg *metadata.Registry) {
	ctx := context.Background()
	if !logger.Enabled(ctx, log.LevelTrace) {
		return
	}
	for cc := 1; cc <= 15; cc++ {
		if p, ok := reg.Parameters[cc]; ok {
			logger.Log(ctx, log.LevelTrace, "parameter block",
				"cc", cc, "name", p.Name, "selector", p.Selector())
		}
	}
	for _, m := range reg.ForegroundModes {
		logger.Log(ctx, log.LevelTrace, "foreground mode",
			"case", m.Case, "name", m.Name, "uses", strings.Join(m.Uses, ","))
	}
	for _, m := range reg.BackgroundModes {
		logger.Log(ctx, log.LevelTrace, "background mode",
			"case", m.Case, "name", m.Name, "uses", strings.Join(m.Uses, ","))
	}
}
