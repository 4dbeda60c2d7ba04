//
// Copyright (c) 2021-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"
)

// Dot creates graphviz dot output of the circuit.
func (c *Circuit) Dot(out io.Writer) {
	fmt.Fprintf(out, "digraph circuit\n{\n")
	fmt.Fprintf(out, "  overlap=scale;\n")
	fmt.Fprintf(out, "  node\t[fontname=\"Helvetica\"];\n")

	fmt.Fprintf(out, "  {\n    node [shape=box];\n")
	for _, g := range c.Gates {
		fmt.Fprintf(out, "    g%d\t[label=\"%s\"];\n", g.pos, g.Op)
	}
	fmt.Fprintf(out, "  }\n")

	fmt.Fprintf(out, "  {  rank=same")
	for _, g := range c.Gates {
		if g.IsInput {
			fmt.Fprintf(out, "; g%d", g.pos)
		}
	}
	fmt.Fprintf(out, ";}\n")

	fmt.Fprintf(out, "  {  rank=same")
	for _, g := range c.Gates {
		if g.IsOutput {
			fmt.Fprintf(out, "; g%d", g.pos)
		}
	}
	fmt.Fprintf(out, ";}\n")

	for _, g := range c.Gates {
		for _, ig := range g.Inputs {
			fmt.Fprintf(out, "  g%d -> g%d;\n", ig.pos, g.pos)
		}
	}
	fmt.Fprintf(out, "}\n")
}
