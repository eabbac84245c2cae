// Package safe converts between signed and unsigned integers with range checks.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange reports a value the target type cannot hold.
var ErrOutOfRange = errors.New("value out of range")

// Uint64 converts a signed integer, rejecting negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrOutOfRange, v)
	}
	return uint64(v), nil
}

// Int64 converts an unsigned integer, rejecting values above math.MaxInt64.
func Int64[T ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d exceeds int64", ErrOutOfRange, v)
	}
	return int64(v), nil
}

// Int64s converts every element with Int64, failing on the first value out of range.
func Int64s[T ~uint | ~uint32 | ~uint64](values []T) ([]int64, error) {
	out := make([]int64, len(values))
	for i, v := range values {
		n, err := Int64(v)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
