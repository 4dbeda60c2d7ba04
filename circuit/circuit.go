//
// Copyright (c) 2021-2025 Markku Rossi
//
// All rights reserved.
//

// Package circuit implements boolean circuits as directed acyclic
// graphs of gates. Circuits are built gate by gate, optionally
// canonicalized with PruneAndTopologicalSortStable, and evaluated
// on concrete bit vectors.
package circuit

import (
	"fmt"
	"io"

	"github.com/markkurossi/circuitry/logger"
	"github.com/markkurossi/circuitry/op"
)

// Circuit specifies a boolean circuit: a gate collection and the
// signature governing evaluation input and output formats. The
// signature can be replaced at any time; replacing it changes only
// the formatting of subsequent Evaluate calls.
type Circuit struct {
	Gates Gates
	Sig   *Signature
}

// New creates an empty circuit with the given signature. A nil
// signature means flat, ungrouped evaluation inputs and outputs.
func New(sig *Signature) *Circuit {
	return &Circuit{
		Sig: sig,
	}
}

// AddGate adds a gate to the circuit. Input and output gates must
// use the identity operation and output gates can not be used as
// inputs of other gates. The number of inputs must match the
// operation arity; input gates take no inputs. A failing AddGate
// does not modify the circuit.
func (c *Circuit) AddGate(operation op.Op, inputs []*Gate,
	isInput, isOutput bool) (*Gate, error) {
	return c.Gates.add(operation, inputs, isInput, isOutput)
}

// Input adds a circuit input gate.
func (c *Circuit) Input() (*Gate, error) {
	return c.AddGate(op.ID, nil, true, false)
}

// Output adds a circuit output gate reading from the gate from.
func (c *Circuit) Output(from *Gate) (*Gate, error) {
	return c.AddGate(op.ID, []*Gate{from}, false, true)
}

// Count returns the number of gates satisfying the predicate. A nil
// predicate counts all gates.
func (c *Circuit) Count(pred func(*Gate) bool) int {
	if pred == nil {
		return len(c.Gates)
	}
	var count int
	for _, g := range c.Gates {
		if pred(g) {
			count++
		}
	}
	return count
}

// Depth returns the longest path through the circuit, counting the
// gates satisfying the predicate. A nil predicate counts every
// gate. The computation is a single forward pass in position order;
// it is valid because every gate appears after all of its inputs.
func (c *Circuit) Depth(pred func(*Gate) bool) int {
	depths := make([]int, len(c.Gates))
	var max int
	for idx, g := range c.Gates {
		var d int
		for _, ig := range g.Inputs {
			if depths[ig.pos] > d {
				d = depths[ig.pos]
			}
		}
		if pred == nil || pred(g) {
			d++
		}
		depths[idx] = d
		if d > max {
			max = d
		}
	}
	return max
}

// PruneAndTopologicalSortStable removes all interior gates from
// which no output gate can be reached and sorts the gates into
// input, interior, and output blocks. Input gates keep their
// original relative order at the beginning and output gates keep
// theirs at the end, so signature-based indexing stays valid.
func (c *Circuit) PruneAndTopologicalSortStable() {
	count := len(c.Gates)
	pruned := c.Gates.pruneAndSortStable()
	log := logger.Logger()
	log.Debug().
		Int("gates", count).
		Int("pruned", pruned).
		Msg("prune and topological sort")
}

func (c *Circuit) String() string {
	return fmt.Sprintf("#gates=%d #in=%d #out=%d", len(c.Gates),
		c.Count(func(g *Gate) bool { return g.IsInput }),
		c.Count(func(g *Gate) bool { return g.IsOutput }))
}

// Dump prints a debug dump of the circuit.
func (c *Circuit) Dump(w io.Writer) {
	fmt.Fprintf(w, "circuit %s\n", c)
	for _, g := range c.Gates {
		fmt.Fprintf(w, "%04d\t%s", g.pos, g)
		if g.IsInput {
			fmt.Fprintf(w, "\tinput")
		}
		if g.IsOutput {
			fmt.Fprintf(w, "\toutput")
		}
		fmt.Fprintln(w)
	}
}
