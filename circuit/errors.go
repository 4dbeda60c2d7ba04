//
// errors.go
//
// Copyright (c) 2021-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"errors"
)

// Errors returned by gate construction, signature conversion, and
// evaluation. All of them signal a programming error by the caller;
// a failed operation never leaves the circuit partially mutated.
var (
	// ErrRole is returned when a gate is flagged as a circuit
	// input or output but its operation is not the identity
	// operation.
	ErrRole = errors.New("circuit: non-identity operation on input/output gate")

	// ErrDanglingOutput is returned when an output-flagged gate is
	// used as an input of another gate. Output gates are terminal
	// sinks.
	ErrDanglingOutput = errors.New("circuit: output gate used as an input")

	// ErrArity is returned when a gate's declared inputs do not
	// match its operation arity, or when an evaluation bit vector
	// does not match the circuit signature.
	ErrArity = errors.New("circuit: arity mismatch")

	// ErrShape is returned when a value passed to signature
	// conversion is not a well-formed bit vector.
	ErrShape = errors.New("circuit: invalid value shape")
)
