//
// signature.go
//
// Copyright (c) 2021-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
)

// Signature defines how evaluation inputs and outputs are grouped.
// A configured side groups the flat bit vector into sub-vectors of
// the declared lengths; an unconfigured side uses flat bit vectors.
// A nil Signature is fully unconfigured.
type Signature struct {
	inputFormat  []int
	outputFormat []int
}

// NewSignature creates a signature with the given input and output
// group lengths. A nil format leaves the corresponding side flat.
func NewSignature(inputFormat, outputFormat []int) (*Signature, error) {
	for _, n := range inputFormat {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative input group length %d",
				ErrShape, n)
		}
	}
	for _, n := range outputFormat {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative output group length %d",
				ErrShape, n)
		}
	}
	return &Signature{
		inputFormat:  inputFormat,
		outputFormat: outputFormat,
	}, nil
}

// Input converts a value organized according to the signature's
// input format into a flat bit vector. Without an input format the
// value must be a []byte of bits; with a format it must be a
// [][]byte whose group lengths match the format exactly.
func (s *Signature) Input(v any) ([]byte, error) {
	if s == nil || s.inputFormat == nil {
		bits, ok := v.([]byte)
		if !ok {
			return nil, fmt.Errorf("%w: input must be a bit vector, got %T",
				ErrShape, v)
		}
		if err := checkBits(bits); err != nil {
			return nil, err
		}
		return bits, nil
	}

	groups, ok := v.([][]byte)
	if !ok {
		return nil, fmt.Errorf(
			"%w: input must be a list of bit vectors, got %T", ErrShape, v)
	}
	if len(groups) != len(s.inputFormat) {
		return nil, fmt.Errorf("%w: input format does not match signature",
			ErrArity)
	}
	var flat []byte
	for idx, bits := range groups {
		if len(bits) != s.inputFormat[idx] {
			return nil, fmt.Errorf(
				"%w: input format does not match signature", ErrArity)
		}
		if err := checkBits(bits); err != nil {
			return nil, err
		}
		flat = append(flat, bits...)
	}
	return flat, nil
}

// Output converts a flat bit vector into the signature's output
// format. Without an output format the vector is passed through
// unchanged; with a format the result is a [][]byte grouped by the
// declared lengths.
func (s *Signature) Output(bits []byte) (any, error) {
	if s == nil || s.outputFormat == nil {
		return bits, nil
	}
	var sum int
	for _, n := range s.outputFormat {
		sum += n
	}
	if sum != len(bits) {
		return nil, fmt.Errorf("%w: output format does not match signature",
			ErrArity)
	}
	groups := make([][]byte, 0, len(s.outputFormat))
	for _, n := range s.outputFormat {
		groups = append(groups, bits[:n])
		bits = bits[n:]
	}
	return groups, nil
}

func checkBits(bits []byte) error {
	for _, b := range bits {
		if b > 1 {
			return fmt.Errorf("%w: non-bit value %d", ErrShape, b)
		}
	}
	return nil
}
