//
// gate.go
//
// Copyright (c) 2021-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"strings"

	"github.com/markkurossi/circuitry/op"
)

// Gate is a single circuit node: a boolean operation, its ordered
// input edges, and the derived output edges. Output edges are
// maintained by the owning circuit as gates are added; they are
// append-only and unique under gate identity.
type Gate struct {
	Op       op.Op
	Inputs   []*Gate
	Outputs  []*Gate
	IsInput  bool
	IsOutput bool
	pos      int
}

// Pos returns the gate's current index in the owning circuit. The
// index is assigned when the gate is added and reassigned by
// PruneAndTopologicalSortStable.
func (g *Gate) Pos() int {
	return g.pos
}

// addOutput designates another gate as an output of this gate.
// Adding the same gate twice is a no-op.
func (g *Gate) addOutput(o *Gate) {
	for _, out := range g.Outputs {
		if out == o {
			return
		}
	}
	g.Outputs = append(g.Outputs, o)
}

func (g *Gate) String() string {
	sb := new(strings.Builder)
	sb.WriteRune('(')
	sb.WriteString(g.Op.String())
	for _, ig := range g.Inputs {
		fmt.Fprintf(sb, " %d", ig.pos)
	}
	sb.WriteRune(')')
	return sb.String()
}
