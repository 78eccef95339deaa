// Package hwdef carries the machine-readable description of the SAM D21
// clock fabric: the generic clock generators, the peripheral channel table,
// the bus bridge bit assignments and the fixed routes present at power-on
// reset. The clkgen tool consumes it to emit the identity types in package
// clock; tests consume it to cross-check the generated code against the
// descriptor.
package hwdef

import (
	_ "embed"
	"errors"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed samd21.yaml
var rawSAMD21 []byte

var samd21 Descriptor

var ErrNotFound = errors.New("hwdef: no such entry")

// Descriptor is one chip's clock fabric description.
type Descriptor struct {
	Chip    string       `yaml:"chip"`
	Gclk    GclkInfo     `yaml:"gclk"`
	Sources []SourceInfo `yaml:"sources"`
	Pclks   []PclkInfo   `yaml:"pclks"`
	Apb     []BridgeInfo `yaml:"apb"`
	Ahb     []GateInfo   `yaml:"ahb"`
	Routes  []RouteInfo  `yaml:"routes"`
}

// GclkInfo describes the generic clock generator bank. DivWidths holds the
// divider field width in bits for each generator in index order.
type GclkInfo struct {
	Generators int   `yaml:"generators"`
	DivWidths  []int `yaml:"divWidths"`
}

// SourceInfo maps a generator source name to its GENCTRL.SRC value.
type SourceInfo struct {
	Name string `yaml:"name"`
	Src  int    `yaml:"src"`
}

// PclkInfo maps a peripheral channel name to its CLKCTRL.ID value.
type PclkInfo struct {
	Name string `yaml:"name"`
	ID   int    `yaml:"id"`
}

// BridgeInfo is one APB bridge and the mask bit of every peripheral behind
// it.
type BridgeInfo struct {
	Bridge      string     `yaml:"bridge"`
	Peripherals []GateInfo `yaml:"peripherals"`
}

// GateInfo maps a bus gate name to its mask register bit. Reset marks gates
// whose mask bit is set at power-on reset.
type GateInfo struct {
	Name  string `yaml:"name"`
	Bit   int    `yaml:"bit"`
	Reset bool   `yaml:"reset"`
}

// RouteInfo is one fixed edge of the reset or preset clock tree, named by the
// source and sink entries it connects. Reset marks edges already wired at
// power-on reset.
type RouteInfo struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Reset bool   `yaml:"reset"`
}

// SAMD21 returns the descriptor parsed from the embedded samd21.yaml.
func SAMD21() Descriptor {
	return samd21
}

func (d Descriptor) FindSource(name string) (SourceInfo, error) {
	i := slices.IndexFunc(d.Sources, func(s SourceInfo) bool {
		return s.Name == strings.ToLower(name)
	})
	if i < 0 {
		return SourceInfo{}, ErrNotFound
	}
	return d.Sources[i], nil
}

func (d Descriptor) FindPclk(name string) (PclkInfo, error) {
	i := slices.IndexFunc(d.Pclks, func(p PclkInfo) bool {
		return p.Name == strings.ToLower(name)
	})
	if i < 0 {
		return PclkInfo{}, ErrNotFound
	}
	return d.Pclks[i], nil
}

func (d Descriptor) FindBridge(name string) (BridgeInfo, error) {
	i := slices.IndexFunc(d.Apb, func(b BridgeInfo) bool {
		return b.Bridge == strings.ToLower(name)
	})
	if i < 0 {
		return BridgeInfo{}, ErrNotFound
	}
	return d.Apb[i], nil
}

// FindGate looks a peripheral gate up across all APB bridges and reports
// which bridge it sits behind.
func (d Descriptor) FindGate(name string) (BridgeInfo, GateInfo, error) {
	name = strings.ToLower(name)
	for _, bridge := range d.Apb {
		i := slices.IndexFunc(bridge.Peripherals, func(g GateInfo) bool {
			return g.Name == name
		})
		if i >= 0 {
			return bridge, bridge.Peripherals[i], nil
		}
	}
	return BridgeInfo{}, GateInfo{}, ErrNotFound
}

func init() {
	if err := yaml.Unmarshal(rawSAMD21, &samd21); err != nil {
		panic(err)
	}
}
