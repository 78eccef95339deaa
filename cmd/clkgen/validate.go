package main

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"omibyte.io/samclk/hwdef"
)

// validate cross-checks the descriptor before any code is emitted: every
// route endpoint must name a declared source, generator or channel, and the
// fixed routes must form a DAG, since a cyclic reset tree could never come up.
func validate(desc hwdef.Descriptor) error {
	if len(desc.Gclk.DivWidths) != desc.Gclk.Generators {
		return fmt.Errorf("clkgen: %d generators but %d divider widths",
			desc.Gclk.Generators, len(desc.Gclk.DivWidths))
	}

	nodes := make(map[string]int64)
	add := func(name string) {
		if _, ok := nodes[name]; !ok {
			nodes[name] = int64(len(nodes))
		}
	}
	for _, s := range desc.Sources {
		add(s.Name)
	}
	for i := 0; i < desc.Gclk.Generators; i++ {
		add(fmt.Sprintf("gclk%d", i))
	}
	for _, p := range desc.Pclks {
		add("pclk." + p.Name)
	}

	g := simple.NewDirectedGraph()
	for _, r := range desc.Routes {
		from, ok := nodes[r.From]
		if !ok {
			return fmt.Errorf("clkgen: route from unknown node %q", r.From)
		}
		to, ok := nodes[r.To]
		if !ok {
			return fmt.Errorf("clkgen: route to unknown node %q", r.To)
		}
		if from == to {
			return fmt.Errorf("clkgen: route %q feeds itself", r.From)
		}
		g.SetEdge(g.NewEdge(simple.Node(from), simple.Node(to)))
	}

	if _, err := topo.Sort(g); err != nil {
		return fmt.Errorf("clkgen: routes are not a DAG: %w", err)
	}

	seenPclk := make(map[int]string)
	for _, p := range desc.Pclks {
		if prev, ok := seenPclk[p.ID]; ok {
			return fmt.Errorf("clkgen: channel %d assigned to both %q and %q", p.ID, prev, p.Name)
		}
		seenPclk[p.ID] = p.Name
	}

	for _, bridge := range desc.Apb {
		seen := make(map[int]string)
		for _, gate := range bridge.Peripherals {
			if prev, ok := seen[gate.Bit]; ok {
				return fmt.Errorf("clkgen: APB%s bit %d assigned to both %q and %q",
					strings.ToUpper(bridge.Bridge), gate.Bit, prev, gate.Name)
			}
			seen[gate.Bit] = gate.Name
		}
	}

	return nil
}
