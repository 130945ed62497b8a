package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry() *Registry {
	return &Registry{Parameters: make(map[int]*Parameter)}
}

func TestScanPlainParameterBlock(t *testing.T) {
	src := `/**
 * @param Hue
 * @cc 1
 * @layer Foreground
 * @tooltip Sets color [roygbivmr]. Cyclic (min val = max val)
 */
int ffHue = 0;
`
	r := newRegistry()
	r.scanParameters(src)

	require.Len(t, r.Parameters, 1)
	p := r.Parameters[1]
	require.NotNil(t, p)
	assert.Equal(t, "Hue", p.Name)
	assert.Equal(t, 1, p.CC)
	assert.Equal(t, "Foreground", p.Layer)
	assert.Equal(t, "Sets color [roygbivmr]. Cyclic (min val = max val)", p.Tooltip)
	assert.False(t, p.Selector())
}

func TestScanTooltipSpanningLines(t *testing.T) {
	src := `/**
 * @param Length
 * @cc 5
 * @layer Foreground
 * @tooltip length of line
   wraps around the strip end
 */
`
	r := newRegistry()
	r.scanParameters(src)

	require.NotNil(t, r.Parameters[5])
	assert.Equal(t, "length of line\n   wraps around the strip end", r.Parameters[5].Tooltip)
}

func TestScanSelectorBlock(t *testing.T) {
	src := `/**
 * @param Background
 * @cc 9
 * @modes 0:Flat Color background,1:rainbow wheel background,2:Color Sinusoid
 */
int bgMode = 0;
`
	r := newRegistry()
	r.scanSelectors(src)

	p := r.Parameters[9]
	require.NotNil(t, p)
	assert.True(t, p.Selector())
	assert.Equal(t, "Background", p.Name)
	assert.Empty(t, p.Layer)
	assert.Equal(t, "Layering of effects", p.Tooltip)
	assert.Equal(t, map[int]string{
		0: "Flat Color background",
		1: "rainbow wheel background",
		2: "Color Sinusoid",
	}, p.Modes)
}

func TestDuplicateCCReportedLastWriteWins(t *testing.T) {
	src := `/**
 * @param Start
 * @cc 4
 * @layer Foreground
 * @tooltip start position of line
 */

/**
 * @param Offset
 * @cc 4
 * @layer Background
 * @tooltip offset into the strip
 */
`
	r := newRegistry()
	r.scanParameters(src)

	require.Len(t, r.Findings, 1)
	assert.Equal(t, SeverityError, r.Findings[0].Severity)
	assert.Equal(t, "Duplicate CC number 4 for parameter 'Offset'", r.Findings[0].Message)

	// The later block replaces the earlier one.
	require.NotNil(t, r.Parameters[4])
	assert.Equal(t, "Offset", r.Parameters[4].Name)
	assert.Equal(t, "Background", r.Parameters[4].Layer)
}

func TestSelectorOverPlainDuplicateCC(t *testing.T) {
	src := `/**
 * @param Foreground
 * @cc 6
 * @layer Foreground
 * @tooltip old continuous definition
 */

/**
 * @param Foreground
 * @cc 6
 * @modes 0:Solid,1:Pulse
 */
`
	r := newRegistry()
	r.scanParameters(src)
	r.scanSelectors(src)

	require.Len(t, r.Findings, 1)
	assert.Equal(t, "Duplicate CC number 6 for mode selector 'Foreground'", r.Findings[0].Message)
	assert.True(t, r.Parameters[6].Selector())
}

func TestParseModeListSkipsMalformedEntries(t *testing.T) {
	modes := parseModeList("0:Solid,broken,1:Pulse, 2 : Chase ")

	assert.Equal(t, map[int]string{0: "Solid", 1: "Pulse", 2: "Chase"}, modes)
}

func TestParseModeListNonNumericKeySkipped(t *testing.T) {
	modes := parseModeList("x:Ghost,1:Pulse")

	assert.Equal(t, map[int]string{1: "Pulse"}, modes)
}
