//
// eval.go
//
// Copyright (c) 2021-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"

	"github.com/markkurossi/circuitry/op"
)

// Evaluate computes the circuit outputs for the input. The input is
// organized according to the circuit signature's input format and
// the result according to its output format. Evaluation is a pure
// function of the input: one wire value is computed per gate in
// position order and the output gate wires are collected at the
// end.
func (c *Circuit) Evaluate(input any) (any, error) {
	bits, err := c.Sig.Input(input)
	if err != nil {
		return nil, err
	}
	out, err := c.evalFlat(bits)
	if err != nil {
		return nil, err
	}
	return c.Sig.Output(out)
}

// evalFlat evaluates the circuit on a flat bit vector, bypassing
// signature conversion. The input bits are bound to the input gates
// in position order.
func (c *Circuit) evalFlat(bits []byte) ([]byte, error) {
	numInputs := c.Count(func(g *Gate) bool { return g.IsInput })
	if len(bits) != numInputs {
		return nil, fmt.Errorf("%w: got %d input bits, circuit takes %d",
			ErrArity, len(bits), numInputs)
	}

	wires := make([]byte, len(c.Gates))

	var in int
	for _, g := range c.Gates {
		switch {
		case g.IsInput:
			wires[g.pos] = bits[in]
			in++

		case len(g.Inputs) > 0:
			args := make([]byte, len(g.Inputs))
			for idx, ig := range g.Inputs {
				args[idx] = wires[ig.pos]
			}
			wires[g.pos] = g.Op.Eval(args...)

		case g.Op.Arity() == 0:
			wires[g.pos] = g.Op.Eval()
		}
	}

	// Construct outputs.
	var out []byte
	for _, g := range c.Gates {
		if g.IsOutput && len(g.Outputs) == 0 {
			out = append(out, wires[g.pos])
		}
	}
	return out, nil
}

// ToOp converts the circuit into the boolean operation it computes.
// The circuit must have exactly one output gate and at most
// op.MaxArity input gates. The conversion evaluates the circuit on
// every input vector: the running time is exponential in the number
// of input gates.
func (c *Circuit) ToOp() (op.Op, error) {
	if c.Count(func(g *Gate) bool { return g.IsOutput }) != 1 {
		return op.Op{}, fmt.Errorf(
			"%w: circuit must have exactly one output gate", ErrArity)
	}
	numInputs := c.Count(func(g *Gate) bool { return g.IsInput })
	if numInputs > op.MaxArity {
		return op.Op{}, fmt.Errorf(
			"%w: circuit takes %d inputs, operations take at most %d",
			ErrArity, numInputs, op.MaxArity)
	}

	var table uint32
	for row := 0; row < 1<<numInputs; row++ {
		bits := make([]byte, numInputs)
		for bit := 0; bit < numInputs; bit++ {
			bits[bit] = byte(row >> (numInputs - bit - 1) & 1)
		}
		out, err := c.evalFlat(bits)
		if err != nil {
			return op.Op{}, err
		}
		if out[0] == 1 {
			table |= 1 << row
		}
	}
	return op.New("", numInputs, table)
}
