// SPDX-License-Identifier: MIT

package flow_test

import (
	"fmt"

	"github.com/katalvlaran/hydronet/flow"
	"github.com/katalvlaran/hydronet/network"
	"github.com/katalvlaran/hydronet/solver"
	"github.com/katalvlaran/hydronet/topology"
)

func ExampleCompute() {
	snap := &topology.Snapshot{
		Components: []topology.Component{
			topology.NewPump("pump", 2000),
			topology.NewChannel("chip", 1e9),
			topology.NewOutlet("drain"),
		},
		Connections: []topology.Connection{
			topology.Connect("feed", "pump", "out", "chip", "a", 5e8),
			topology.Connect("waste", "chip", "b", "drain", "in", 5e8),
		},
	}
	g, _ := network.Build(snap)
	sol, _ := solver.Solve(g)
	flows, _, _ := flow.Compute(g, sol)
	for _, f := range flows {
		fmt.Printf("%-22s %s -> %s %.1e m³/s\n", f.ID, f.From, f.To, f.Flow)
	}
	// Output:
	// chip:a--chip:b         chip:a -> chip:b 1.0e-06 m³/s
	// chip:a--pump:out       pump:out -> chip:a 1.0e-06 m³/s
	// chip:b--drain:in       chip:b -> drain:in 1.0e-06 m³/s
}
