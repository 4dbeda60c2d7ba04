//
// gates.go
//
// Copyright (c) 2021-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/markkurossi/circuitry/op"
)

// Gates is the ordered gate collection of one circuit. The position
// of every gate equals its index in the collection.
type Gates []*Gate

// add validates and appends a new gate. Validation runs before any
// mutation: a failing add leaves the collection and every existing
// gate's output edges unchanged.
func (gs *Gates) add(operation op.Op, inputs []*Gate,
	isInput, isOutput bool) (*Gate, error) {

	if (isInput || isOutput) && !operation.Equal(op.ID) {
		return nil, fmt.Errorf("%w: %s", ErrRole, operation)
	}
	for _, ig := range inputs {
		if ig.IsOutput {
			return nil, fmt.Errorf("%w: gate %d", ErrDanglingOutput, ig.pos)
		}
	}
	if isInput {
		if len(inputs) != 0 {
			return nil, fmt.Errorf("%w: input gate takes no inputs", ErrArity)
		}
	} else if len(inputs) != operation.Arity() {
		return nil, fmt.Errorf("%w: %s takes %d inputs, got %d",
			ErrArity, operation, operation.Arity(), len(inputs))
	}

	g := &Gate{
		Op:       operation,
		Inputs:   inputs,
		IsInput:  isInput,
		IsOutput: isOutput,
		pos:      len(*gs),
	}
	*gs = append(*gs, g)
	for _, ig := range inputs {
		ig.addOutput(g)
	}
	return g, nil
}

// mark records into reach the positions of all gates reachable from
// g through input edges. Termination is guaranteed by acyclicity:
// gates can only take earlier gates as inputs.
func mark(reach *bitset.BitSet, g *Gate) {
	if reach.Test(uint(g.pos)) {
		return
	}
	reach.Set(uint(g.pos))
	for _, ig := range g.Inputs {
		mark(reach, ig)
	}
}

// pruneAndSortStable removes all interior gates from which no output
// gate is reachable and reorders the collection into three blocks:
// input gates, surviving interior gates, and output gates. Each
// block keeps the original relative order of its members so that
// signature-based input and output indexing stays valid. Returns
// the number of pruned gates.
func (gs *Gates) pruneAndSortStable() int {
	old := *gs

	reach := bitset.New(uint(len(old)))
	for _, g := range old {
		if g.IsOutput {
			mark(reach, g)
		}
	}

	sorted := make(Gates, 0, len(old))
	for _, g := range old {
		if g.IsInput {
			sorted = append(sorted, g)
		}
	}
	for _, g := range old {
		if g.IsInput || g.IsOutput || !reach.Test(uint(g.pos)) {
			continue
		}
		// A marked interior gate without consumers is a dead end.
		if len(g.Outputs) == 0 {
			continue
		}
		if len(g.Inputs) > 0 || g.Op.Arity() == 0 {
			sorted = append(sorted, g)
		}
	}
	for _, g := range old {
		if g.IsOutput && !g.IsInput {
			// Output gates are terminal sinks after the sort.
			g.Outputs = nil
			sorted = append(sorted, g)
		}
	}

	for idx, g := range sorted {
		g.pos = idx
	}
	*gs = sorted

	return len(old) - len(sorted)
}

// String returns the canonical tuple-of-tuples dump of the
// collection: for each gate in position order, the operation name
// followed by the positions of the gate's inputs.
func (gs Gates) String() string {
	sb := new(strings.Builder)
	sb.WriteRune('(')
	for idx, g := range gs {
		if idx > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(g.String())
	}
	sb.WriteRune(')')
	return sb.String()
}
