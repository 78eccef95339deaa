package hwdef_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/samclk/hwdef"
)

func TestDescriptorShape(t *testing.T) {
	d := hwdef.SAMD21()

	assert.Equal(t, "samd21", d.Chip)
	assert.Equal(t, 9, d.Gclk.Generators)
	require.Len(t, d.Gclk.DivWidths, 9)
	assert.Equal(t, []int{8, 16, 5, 8, 8, 8, 8, 8, 8}, d.Gclk.DivWidths)
	assert.Len(t, d.Apb, 3)
}

func TestFindSource(t *testing.T) {
	d := hwdef.SAMD21()

	src, err := d.FindSource("dfll48m")
	require.NoError(t, err)
	assert.Equal(t, 7, src.Src)

	src, err = d.FindSource("DPLL96M")
	require.NoError(t, err)
	assert.Equal(t, 8, src.Src)

	_, err = d.FindSource("pll0")
	assert.ErrorIs(t, err, hwdef.ErrNotFound)
}

func TestFindPclk(t *testing.T) {
	d := hwdef.SAMD21()

	for name, id := range map[string]int{
		"dfll":    0,
		"dpll":    1,
		"wdt":     3,
		"evsys0":  7,
		"evsys11": 18,
		"sercom0": 20,
		"i2s1":    36,
	} {
		p, err := d.FindPclk(name)
		require.NoError(t, err, name)
		assert.Equal(t, id, p.ID, name)
	}

	_, err := d.FindPclk("sercom6")
	assert.ErrorIs(t, err, hwdef.ErrNotFound)
}

func TestFindGate(t *testing.T) {
	d := hwdef.SAMD21()

	bridge, gate, err := d.FindGate("usb")
	require.NoError(t, err)
	assert.Equal(t, "b", bridge.Bridge)
	assert.Equal(t, 5, gate.Bit)
	assert.False(t, gate.Reset)

	bridge, gate, err = d.FindGate("wdt")
	require.NoError(t, err)
	assert.Equal(t, "a", bridge.Bridge)
	assert.Equal(t, 4, gate.Bit)
	assert.True(t, gate.Reset)

	_, _, err = d.FindGate("can0")
	assert.ErrorIs(t, err, hwdef.ErrNotFound)
}

func TestResetRoutes(t *testing.T) {
	d := hwdef.SAMD21()

	var reset []hwdef.RouteInfo
	for _, r := range d.Routes {
		if r.Reset {
			reset = append(reset, r)
		}
	}
	require.Len(t, reset, 3)
	assert.Contains(t, reset, hwdef.RouteInfo{From: "osc8m", To: "gclk0", Reset: true})
	assert.Contains(t, reset, hwdef.RouteInfo{From: "osculp32k", To: "gclk2", Reset: true})
	assert.Contains(t, reset, hwdef.RouteInfo{From: "gclk2", To: "pclk.wdt", Reset: true})
}

func TestPclkIDsAreUnique(t *testing.T) {
	d := hwdef.SAMD21()

	seen := make(map[int]string)
	for _, p := range d.Pclks {
		if prev, dup := seen[p.ID]; dup {
			t.Fatalf("channel id %d assigned to both %s and %s", p.ID, prev, p.Name)
		}
		seen[p.ID] = p.Name
	}
}
