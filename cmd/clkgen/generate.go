package main

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/tools/imports"

	"omibyte.io/samclk/hwdef"
)

// goNames maps descriptor names that do not capitalize mechanically.
var goNames = map[string]string{
	"sysctrl":    "SysCtrl",
	"nvmctrl":    "NvmCtrl",
	"sercomslow": "SercomSlow",
	"evsys":      "EvSys",
	"acdig":      "AcDig",
	"acana":      "AcAna",
	"i2s":        "I2S",
	"i2s0":       "I2S0",
	"i2s1":       "I2S1",
	"tcc0tcc1":   "Tcc0Tcc1",
	"tcc2tc3":    "Tcc2Tc3",
	"tc4tc5":     "Tc4Tc5",
	"tc6tc7":     "Tc6Tc7",
}

func goName(name string) string {
	if n, ok := goNames[name]; ok {
		return n
	}
	if rest, ok := strings.CutPrefix(name, "evsys"); ok {
		return "EvSys" + rest
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// marker is one peripheral identity type and the id spaces it participates
// in.
type marker struct {
	name   string
	pclk   *hwdef.PclkInfo
	bridge string
	apb    *hwdef.GateInfo
	ahb    *hwdef.GateInfo
}

func collectMarkers(desc hwdef.Descriptor) []*marker {
	var markers []*marker
	byName := make(map[string]*marker)
	get := func(name string) *marker {
		if m, ok := byName[name]; ok {
			return m
		}
		m := &marker{name: name}
		byName[name] = m
		markers = append(markers, m)
		return m
	}

	for i := range desc.Pclks {
		get(desc.Pclks[i].Name).pclk = &desc.Pclks[i]
	}
	for bi := range desc.Apb {
		bridge := desc.Apb[bi]
		for gi := range bridge.Peripherals {
			m := get(bridge.Peripherals[gi].Name)
			m.bridge = bridge.Bridge
			m.apb = &bridge.Peripherals[gi]
		}
	}
	for i := range desc.Ahb {
		get(desc.Ahb[i].Name).ahb = &desc.Ahb[i]
	}
	return markers
}

// resetPclks lists channels already enabled at power-on reset; they get no
// token.
func resetPclks(desc hwdef.Descriptor) []string {
	var names []string
	for _, r := range desc.Routes {
		if r.Reset {
			if name, ok := strings.CutPrefix(r.To, "pclk."); ok {
				names = append(names, name)
			}
		}
	}
	return names
}

func generate(desc hwdef.Descriptor) ([]byte, error) {
	markers := collectMarkers(desc)
	noToken := resetPclks(desc)

	var b bytes.Buffer
	p := func(format string, args ...any) { fmt.Fprintf(&b, format+"\n", args...) }

	p("// Code generated by clkgen from hwdef/%s.yaml. DO NOT EDIT.", desc.Chip)
	p("")
	p("package clock")
	p("")
	p(`import "omibyte.io/samclk/chip"`)
	p("")

	p("// gclkDivWidth holds the GENDIV.DIV field width in bits per generator.")
	widths := make([]string, len(desc.Gclk.DivWidths))
	for i, w := range desc.Gclk.DivWidths {
		widths[i] = fmt.Sprint(w)
	}
	p("var gclkDivWidth = [%d]uint8{%s}", desc.Gclk.Generators, strings.Join(widths, ", "))
	p("")

	p("// Peripheral channel numbers (CLKCTRL.ID values).")
	p("const (")
	for _, pc := range desc.Pclks {
		p("\tPclk%s DynPclkID = %d", goName(pc.Name), pc.ID)
	}
	p(")")
	p("")

	p("// Peripheral identity markers.")
	p("type (")
	for _, m := range markers {
		p("\t%sId struct{}", goName(m.name))
	}
	p(")")
	p("")

	for _, m := range markers {
		if m.pclk != nil {
			p("func (%sId) pclkID() DynPclkID { return Pclk%s }", goName(m.name), goName(m.name))
		}
	}
	p("")
	for _, m := range markers {
		if m.apb != nil {
			p("func (%sId) apbID() DynApbID { return DynApbID{Bridge%s, %d} }",
				goName(m.name), strings.ToUpper(m.bridge), m.apb.Bit)
		}
	}
	p("")
	for _, m := range markers {
		if m.ahb != nil {
			p("func (%sId) ahbID() DynAhbID { return %d }", goName(m.name), m.ahb.Bit)
		}
	}
	p("")

	p("// PclkTokens holds one token per peripheral channel not already enabled at")
	p("// power-on reset.")
	p("type PclkTokens struct {")
	for _, pc := range desc.Pclks {
		if slices.Contains(noToken, pc.Name) {
			continue
		}
		p("\t%s PclkToken[%sId]", goName(pc.Name), goName(pc.Name))
	}
	p("}")
	p("")
	p("func makePclkTokens(gclk *chip.PeripheralGCLK) PclkTokens {")
	p("\treturn PclkTokens{")
	for _, pc := range desc.Pclks {
		if slices.Contains(noToken, pc.Name) {
			continue
		}
		p("\t\t%s: PclkToken[%sId]{gclk: gclk},", goName(pc.Name), goName(pc.Name))
	}
	p("\t}")
	p("}")
	p("")

	p("// ApbTokens holds one token per APB gate closed at power-on reset.")
	p("type ApbTokens struct {")
	for _, m := range markers {
		if m.apb != nil && !m.apb.Reset {
			p("\t%s ApbToken[%sId]", goName(m.name), goName(m.name))
		}
	}
	p("}")
	p("")
	p("func makeApbTokens(pm *chip.PeripheralPM) ApbTokens {")
	p("\treturn ApbTokens{")
	for _, m := range markers {
		if m.apb != nil && !m.apb.Reset {
			p("\t\t%s: ApbToken[%sId]{pm: pm},", goName(m.name), goName(m.name))
		}
	}
	p("\t}")
	p("}")
	p("")

	p("// ApbClks holds the APB gates open at power-on reset.")
	p("type ApbClks struct {")
	for _, m := range markers {
		if m.apb != nil && m.apb.Reset {
			p("\t%s ApbClk[%sId]", goName(m.name), goName(m.name))
		}
	}
	p("}")
	p("")
	p("func makeApbClks(pm *chip.PeripheralPM) ApbClks {")
	p("\treturn ApbClks{")
	for _, m := range markers {
		if m.apb != nil && m.apb.Reset {
			p("\t\t%s: ApbClk[%sId]{pm: pm},", goName(m.name), goName(m.name))
		}
	}
	p("\t}")
	p("}")
	p("")

	p("// AhbClks holds the AHB gates, all open at power-on reset.")
	p("type AhbClks struct {")
	for _, m := range markers {
		if m.ahb != nil {
			p("\t%s AhbClk[%sId]", goName(m.name), goName(m.name))
		}
	}
	p("}")
	p("")
	p("func makeAhbClks(pm *chip.PeripheralPM) AhbClks {")
	p("\treturn AhbClks{")
	for _, m := range markers {
		if m.ahb != nil {
			p("\t\t%s: AhbClk[%sId]{pm: pm},", goName(m.name), goName(m.name))
		}
	}
	p("\t}")
	p("}")

	return imports.Process("identities_gen.go", b.Bytes(), nil)
}
