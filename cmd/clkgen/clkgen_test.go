package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"omibyte.io/samclk/hwdef"
)

// descriptor returns a SAMD21 descriptor whose slices are safe to mutate.
func descriptor() hwdef.Descriptor {
	d := hwdef.SAMD21()
	d.Gclk.DivWidths = slices.Clone(d.Gclk.DivWidths)
	d.Pclks = slices.Clone(d.Pclks)
	d.Routes = slices.Clone(d.Routes)
	return d
}

func TestValidateDescriptor(t *testing.T) {
	assert.NoError(t, validate(hwdef.SAMD21()))
}

func TestValidateRejectsUnknownRoute(t *testing.T) {
	desc := descriptor()
	desc.Routes = append(desc.Routes, hwdef.RouteInfo{From: "pll0", To: "gclk0"})
	assert.ErrorContains(t, validate(desc), "unknown node")
}

func TestValidateRejectsCycle(t *testing.T) {
	desc := descriptor()
	// gclk0 already feeds nothing; close a loop through two generators.
	desc.Routes = append(desc.Routes,
		hwdef.RouteInfo{From: "gclk0", To: "gclk1"},
		hwdef.RouteInfo{From: "gclk1", To: "gclk0"},
	)
	assert.ErrorContains(t, validate(desc), "not a DAG")
}

func TestValidateRejectsSelfFeed(t *testing.T) {
	desc := descriptor()
	desc.Routes = append(desc.Routes, hwdef.RouteInfo{From: "gclk3", To: "gclk3"})
	assert.ErrorContains(t, validate(desc), "feeds itself")
}

func TestValidateRejectsDivWidthMismatch(t *testing.T) {
	desc := descriptor()
	desc.Gclk.DivWidths = desc.Gclk.DivWidths[:3]
	assert.ErrorContains(t, validate(desc), "divider widths")
}

func TestValidateRejectsDuplicateChannelID(t *testing.T) {
	desc := descriptor()
	desc.Pclks = append(desc.Pclks, hwdef.PclkInfo{Name: "ghost", ID: 0})
	assert.ErrorContains(t, validate(desc), "assigned to both")
}

func TestGenerate(t *testing.T) {
	src, err := generate(hwdef.SAMD21())
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by clkgen"))
	assert.Contains(t, out, "package clock")

	// Irregular names resolve through the name table.
	assert.Contains(t, out, "SercomSlowId")
	assert.Contains(t, out, "Tcc0Tcc1Id")
	assert.Contains(t, out, "NvmCtrlId")

	// Reset-enabled channels hand out no token.
	assert.Contains(t, out, "PclkToken[DfllId]")
	assert.NotContains(t, out, "PclkToken[WdtId]")

	assert.Contains(t, out, "gclkDivWidth = [9]uint8{8, 16, 5, 8, 8, 8, 8, 8, 8}")
}
