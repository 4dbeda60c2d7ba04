//
// prop_test.go
//
// Copyright (c) 2023-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/markkurossi/circuitry/op"
)

var propOps = []op.Op{
	op.NOT, op.AND, op.OR, op.XOR, op.XNOR, op.NAND, op.NOR, op.IMP,
}

// randomCircuit builds a random circuit with 1-4 input gates, 0-11
// interior gates, and 1-3 output gates.
func randomCircuit(t *testing.T, seed int64) (*Circuit, int) {
	t.Helper()

	rnd := rand.New(rand.NewSource(seed))
	c := New(nil)

	numInputs := 1 + rnd.Intn(4)
	var gates []*Gate
	for i := 0; i < numInputs; i++ {
		g, err := c.Input()
		if err != nil {
			t.Fatalf("Input: %v", err)
		}
		gates = append(gates, g)
	}

	numInterior := rnd.Intn(12)
	for i := 0; i < numInterior; i++ {
		operation := propOps[rnd.Intn(len(propOps))]
		inputs := make([]*Gate, operation.Arity())
		for idx := range inputs {
			inputs[idx] = gates[rnd.Intn(len(gates))]
		}
		g, err := c.AddGate(operation, inputs, false, false)
		if err != nil {
			t.Fatalf("AddGate: %v", err)
		}
		gates = append(gates, g)
	}

	numOutputs := 1 + rnd.Intn(3)
	for i := 0; i < numOutputs; i++ {
		_, err := c.Output(gates[rnd.Intn(len(gates))])
		if err != nil {
			t.Fatalf("Output: %v", err)
		}
	}

	return c, numInputs
}

// inputVectors enumerates all input bit vectors of the width.
func inputVectors(width int) [][]byte {
	var result [][]byte
	for v := 0; v < 1<<width; v++ {
		bits := make([]byte, width)
		for bit := 0; bit < width; bit++ {
			bits[bit] = byte(v >> bit & 1)
		}
		result = append(result, bits)
	}
	return result
}

func evaluateAll(t *testing.T, c *Circuit, numInputs int) []any {
	t.Helper()

	var results []any
	for _, input := range inputVectors(numInputs) {
		result, err := c.Evaluate(input)
		if err != nil {
			t.Fatalf("Evaluate(%v): %v", input, err)
		}
		results = append(results, result)
	}
	return results
}

func TestPruneProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("prune preserves evaluation", prop.ForAll(
		func(seed int64) bool {
			c, numInputs := randomCircuit(t, seed)
			before := evaluateAll(t, c, numInputs)
			c.PruneAndTopologicalSortStable()
			after := evaluateAll(t, c, numInputs)
			return reflect.DeepEqual(before, after)
		},
		gen.Int64(),
	))

	properties.Property("prune is idempotent", prop.ForAll(
		func(seed int64) bool {
			c, _ := randomCircuit(t, seed)
			c.PruneAndTopologicalSortStable()
			once := c.Gates.String()
			c.PruneAndTopologicalSortStable()
			return c.Gates.String() == once
		},
		gen.Int64(),
	))

	properties.Property("positions match indices after prune", prop.ForAll(
		func(seed int64) bool {
			c, _ := randomCircuit(t, seed)
			c.PruneAndTopologicalSortStable()
			for idx, g := range c.Gates {
				if g.pos != idx {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.Property("sorted gates follow their inputs", prop.ForAll(
		func(seed int64) bool {
			c, _ := randomCircuit(t, seed)
			c.PruneAndTopologicalSortStable()
			for _, g := range c.Gates {
				for _, ig := range g.Inputs {
					if ig.pos >= g.pos {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestMarkReachability(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("mark is the backward closure", prop.ForAll(
		func(seed int64) bool {
			c, _ := randomCircuit(t, seed)
			rnd := rand.New(rand.NewSource(seed + 1))
			g := c.Gates[rnd.Intn(len(c.Gates))]

			reach := bitset.New(uint(len(c.Gates)))
			mark(reach, g)

			closure := make(map[*Gate]bool)
			pending := []*Gate{g}
			for len(pending) > 0 {
				next := pending[len(pending)-1]
				pending = pending[:len(pending)-1]
				if closure[next] {
					continue
				}
				closure[next] = true
				pending = append(pending, next.Inputs...)
			}

			for _, gate := range c.Gates {
				if reach.Test(uint(gate.pos)) != closure[gate] {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
