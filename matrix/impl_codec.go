// SPDX-License-Identifier: MIT

// Package matrix - textual rendering and decoding.
//
// Purpose:
//   - String renders the nested-list form "[[2, 4, 1], [2, -5, 2]]".
//   - Parse reads the same grammar. The grammar is a YAML flow sequence, so
//     decoding is delegated to gopkg.in/yaml.v3 and the result is validated
//     through NewFromAny (same error kinds as any other construction).
//   - YAML and JSON codecs encode a nested list and decode through the same
//     validation, keeping the receiver's numeric policy.
//
// Notes:
//   - Parse(m.String()) round-trips every finite matrix. NaN/±Inf render as
//     Go spells them and read back as strings (ErrRowType).

package matrix

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	opParse         = "Parse"
	opUnmarshalYAML = "UnmarshalYAML"
	opUnmarshalJSON = "UnmarshalJSON"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// String renders m in nested-list form. Values use the shortest
// representation that round-trips ('g', -1). The empty matrix renders "[]".
// Complexity: O(r*c).
func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtOpen)
		for j, v := range m.grid[i] {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString(_fmtClose)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// Parse decodes the nested-list text form into a Matrix.
//
// Implementation:
//   - Stage 1: yaml.Unmarshal into an untyped value.
//   - Stage 2: NewFromAny with the given options.
//
// Errors:
//   - ErrConstruction for malformed text or a non-sequence document
//     ("5", "{a: 1}", "").
//   - ErrRowType, ErrRaggedRows, ErrEmptyRow, ErrNaNInf as in NewFromAny.
func Parse(s string, opts ...Option) (*Matrix, error) {
	var raw any
	if err := yaml.Unmarshal([]byte(s), &raw); err != nil {
		return nil, matrixErrorf(opParse, fmt.Errorf("%w: %v", ErrConstruction, err))
	}
	m, err := NewFromAny(raw, opts...)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	return m, nil
}

// MarshalYAML encodes m as a sequence of float sequences.
func (m *Matrix) MarshalYAML() (any, error) {
	return m.Raw(), nil
}

// UnmarshalYAML decodes a sequence of numeric sequences into m, keeping the
// receiver's numeric policy. On error m is unchanged.
func (m *Matrix) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return matrixErrorf(opUnmarshalYAML, fmt.Errorf("%w: %v", ErrConstruction, err))
	}
	parsed, err := NewFromAny(raw, withNaNInfPolicy(m.validateNaNInf))
	if err != nil {
		return matrixErrorf(opUnmarshalYAML, err)
	}
	*m = *parsed

	return nil
}

// MarshalJSON encodes m as a JSON array of arrays. NaN/±Inf cannot be
// represented in JSON and fail with the encoding/json error.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Raw())
}

// UnmarshalJSON decodes a JSON array of numeric arrays into m, keeping the
// receiver's numeric policy. On error m is unchanged.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return matrixErrorf(opUnmarshalJSON, fmt.Errorf("%w: %v", ErrConstruction, err))
	}
	parsed, err := NewFromAny(raw, withNaNInfPolicy(m.validateNaNInf))
	if err != nil {
		return matrixErrorf(opUnmarshalJSON, err)
	}
	*m = *parsed

	return nil
}

// Compile-time assertions for codec conformance.
var (
	_ yaml.Marshaler   = (*Matrix)(nil)
	_ yaml.Unmarshaler = (*Matrix)(nil)
	_ json.Marshaler   = (*Matrix)(nil)
	_ json.Unmarshaler = (*Matrix)(nil)
)
