//
// op.go
//
// Copyright (c) 2021-2025 Markku Rossi
//
// All rights reserved.
//

// Package op implements n-ary boolean operations as truth tables. An
// operation is a value type: two operations with identical arity and
// truth table are equal regardless of their display names.
package op

import (
	"errors"
	"fmt"
)

// MaxArity defines the maximum operation arity.
const MaxArity = 5

// ErrOp is returned for invalid operation definitions.
var ErrOp = errors.New("op: invalid operation")

// Op specifies an n-ary boolean operation. The truth table bit i
// holds the result for the input row i, where the first argument is
// the most significant bit of the row index.
type Op struct {
	name  string
	arity int
	table uint32
}

// New creates an operation with the given display name, arity, and
// truth table. The arity must be between 0 and MaxArity and the
// table must not set bits beyond the 2^arity truth table rows.
func New(name string, arity int, table uint32) (Op, error) {
	if arity < 0 || arity > MaxArity {
		return Op{}, fmt.Errorf("%w: arity %d", ErrOp, arity)
	}
	if table>>(1<<arity) != 0 {
		return Op{}, fmt.Errorf("%w: table %#b too large for arity %d",
			ErrOp, table, arity)
	}
	return Op{
		name:  name,
		arity: arity,
		table: table,
	}, nil
}

// Arity returns the number of arguments the operation takes.
func (o Op) Arity() int {
	return o.arity
}

// Table returns the operation truth table.
func (o Op) Table() uint32 {
	return o.table
}

func (o Op) String() string {
	if len(o.name) > 0 {
		return o.name
	}
	return fmt.Sprintf("{Op %d/%#b}", o.arity, o.table)
}

// Equal tests if the operations compute the same boolean function.
// Display names are not compared.
func (o Op) Equal(other Op) bool {
	return o.arity == other.arity && o.table == other.table
}

// Eval applies the operation to the argument bits. The number of
// arguments must match the operation arity.
func (o Op) Eval(args ...byte) byte {
	if len(args) != o.arity {
		panic(fmt.Sprintf("op: %s called with %d arguments, takes %d",
			o, len(args), o.arity))
	}
	var row int
	for _, b := range args {
		row = row<<1 | int(b&1)
	}
	return byte(o.table >> row & 1)
}

func mustNew(name string, arity int, table uint32) Op {
	o, err := New(name, arity, table)
	if err != nil {
		panic(err)
	}
	return o
}

// Predefined operations. ID is the unary identity operation; it is
// the only operation valid for circuit input and output gates. Zero
// and One are the nullary constants.
var (
	ID   = mustNew("id", 1, 0b10)
	NOT  = mustNew("not", 1, 0b01)
	AND  = mustNew("and", 2, 0b1000)
	OR   = mustNew("or", 2, 0b1110)
	XOR  = mustNew("xor", 2, 0b0110)
	XNOR = mustNew("xnor", 2, 0b1001)
	NAND = mustNew("nand", 2, 0b0111)
	NOR  = mustNew("nor", 2, 0b0001)
	IMP  = mustNew("imp", 2, 0b1011)
	Zero = mustNew("0", 0, 0b0)
	One  = mustNew("1", 0, 0b1)
)
