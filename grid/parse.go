// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Validating boundary for loosely typed data (decoded JSON, config, scripts).
//   - Inside the package every value is already a T; only here can a value be
//     "not a number" or "not a sequence".
//
// Notes:
//   - encoding/json decodes numbers as float64 (or json.Number with UseNumber);
//     both are accepted and converted to T with a Go conversion.

package grid

import (
	"encoding/json"
	"fmt"
)

// ParseInput converts foreign data into an Input.
// MAIN DESCRIPTION:
//   - Resolves flat vs nested by the first element, then validates every element.
//
// Accepted forms:
//   - Flat[T], Nested[T], []T, [][]T.
//   - []any whose first element is a number (flat) or a sequence (nested rows
//     given as []any or []T).
//
// Errors:
//   - ErrInvalidInput for a non-sequence, an empty sequence, a first element that
//     is neither number nor sequence, or any later element of the wrong kind.
//
// Notes:
//   - Row lengths are NOT checked here; Load/Replace report ErrShapeMismatch.
func ParseInput[T Number](v any) (Input[T], error) {
	var in Input[T]
	switch x := v.(type) {
	case Flat[T]:
		in = x
	case Nested[T]:
		in = x
	case []T:
		in = Flat[T](x)
	case [][]T:
		in = Nested[T](x)
	case []any:
		return parseAnySlice[T](x)
	default:
		return nil, parseErrorf("not a sequence (%T)", v)
	}
	if in.Len() == 0 {
		return nil, parseErrorf("empty sequence")
	}

	return in, nil
}

// parseAnySlice handles the []any form.
func parseAnySlice[T Number](xs []any) (Input[T], error) {
	if len(xs) == 0 {
		return nil, parseErrorf("empty sequence")
	}
	if _, ok := toNumber[T](xs[0]); ok {
		flat := make(Flat[T], len(xs))
		for i, x := range xs {
			n, ok := toNumber[T](x)
			if !ok {
				return nil, parseErrorf("element %d: not a number (%T)", i, x)
			}
			flat[i] = n
		}
		return flat, nil
	}
	if !isSequence[T](xs[0]) {
		return nil, parseErrorf("first element: expected number or sequence (%T)", xs[0])
	}

	nested := make(Nested[T], len(xs))
	for i, x := range xs {
		row, err := parseRow[T](x)
		if err != nil {
			return nil, parseErrorf("row %d: %v", i, err)
		}
		nested[i] = row
	}

	return nested, nil
}

// parseRow converts one nested row.
func parseRow[T Number](x any) ([]T, error) {
	switch r := x.(type) {
	case []T:
		out := make([]T, len(r))
		copy(out, r)
		return out, nil
	case []any:
		out := make([]T, len(r))
		for j, e := range r {
			n, ok := toNumber[T](e)
			if !ok {
				return nil, fmt.Errorf("column %d: not a number (%T)", j, e)
			}
			out[j] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("not a sequence (%T)", x)
	}
}

func isSequence[T Number](x any) bool {
	switch x.(type) {
	case []any, []T:
		return true
	default:
		return false
	}
}

// ParseScalar converts a foreign scalar into T.
// Errors: ErrInvalidInput when v is not a number.
func ParseScalar[T Number](v any) (T, error) {
	n, ok := toNumber[T](v)
	if !ok {
		var zero T
		return zero, fmt.Errorf("grid.ParseScalar: not a number (%T): %w", v, ErrInvalidInput)
	}

	return n, nil
}

// ParseDirection accepts the symbolic ("cw", "ccw") and numeric (0, 1) tokens.
// Errors: ErrInvalidInput for anything else.
func ParseDirection(v any) (Direction, error) {
	switch x := v.(type) {
	case Direction:
		if x == CW || x == CCW {
			return x, nil
		}
	case string:
		switch x {
		case "cw":
			return CW, nil
		case "ccw":
			return CCW, nil
		}
	default:
		if n, ok := toNumber[float64](v); ok {
			switch n {
			case 0:
				return CW, nil
			case 1:
				return CCW, nil
			}
		}
	}

	return 0, fmt.Errorf("grid.ParseDirection: %v: %w", v, ErrInvalidInput)
}

// toNumber converts any Go numeric kind (and json.Number) to T.
func toNumber[T Number](v any) (T, bool) {
	switch n := v.(type) {
	case T:
		return n, true
	case int:
		return T(n), true
	case int8:
		return T(n), true
	case int16:
		return T(n), true
	case int32:
		return T(n), true
	case int64:
		return T(n), true
	case uint:
		return T(n), true
	case uint8:
		return T(n), true
	case uint16:
		return T(n), true
	case uint32:
		return T(n), true
	case uint64:
		return T(n), true
	case float32:
		return T(n), true
	case float64:
		return T(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return T(f), true
	default:
		return 0, false
	}
}

func parseErrorf(format string, args ...any) error {
	return fmt.Errorf("grid.ParseInput: %s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}
