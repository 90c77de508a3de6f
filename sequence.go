package pew

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadMultiplier is returned when a Range multiplier is not greater than 1.
var ErrBadMultiplier = errors.New("range multiplier must be greater than 1")

// Range describes the input sizes a benchmark entry runs over: Lower,
// Lower*Mul, Lower*Mul^2, ... up to and including the last value that is
// still <= Upper.
type Range struct {
	Lower uint64
	Upper uint64
	Mul   uint64
}

func (r Range) validate() error {
	if r.Mul <= 1 {
		return fmt.Errorf("%w: got %d", ErrBadMultiplier, r.Mul)
	}
	return nil
}

// Sizes expands the range into its ordered size sequence. The sequence is
// strictly increasing, starts at Lower, and never overshoots Upper; it is
// empty when Lower > Upper. Multiplication is overflow-guarded: a product
// that would wrap uint64 cannot be <= Upper, so expansion stops at the guard
// instead of wrapping.
func (r Range) Sizes() ([]uint64, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	var sizes []uint64
	for cur := r.Lower; cur <= r.Upper; {
		sizes = append(sizes, cur)
		if cur > math.MaxUint64/r.Mul {
			break
		}
		next := cur * r.Mul
		if next <= cur {
			// Only reachable for Lower == 0, where multiplying cannot
			// make progress.
			break
		}
		cur = next
	}
	return sizes, nil
}
