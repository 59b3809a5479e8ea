// Package flags maps TSC flag numbers onto bits of the game's memory
// image. Every flag names one bit: flag 0 is bit 0 of the byte at the
// base of the flags array, flag 8 is bit 0 of the next byte, and so on.
// Writing a multi-bit integer into memory therefore reduces to a run of
// <FL+ and <FL- commands, one per bit.
package flags

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all flag mapping errors.
var Error = errs.Class("flags")

// ErrRange is the class of range errors: values too wide for their
// declared bit width.
var ErrRange = errs.Class("range")

// Freeware is the start of the flags array in the freeware executable's
// default memory layout.
var Freeware = Address{Offset: 0x49DDA0}

// Address names a single bit in a flat memory image: a byte offset and a
// bit index within that byte. Addresses are immutable values; arithmetic
// carries across the bit boundary and always returns a normalized address
// with 0 <= Bit < 8.
type Address struct {
	Offset int64
	Bit    int
}

// NewAddress returns the normalized address for the given offset and bit.
// Bit counts outside [0, 8) carry into or borrow from the offset.
func NewAddress(offset int64, bit int) Address {
	o, b := floorDivmod(int64(bit), 8)

	return Address{
		Offset: offset + o,
		Bit:    int(b),
	}
}

// Bits returns the address as a total bit count from offset zero.
func (a Address) Bits() int64 {
	return a.Offset*8 + int64(a.Bit)
}

// Add returns the sum of two addresses.
func (a Address) Add(other Address) Address {
	return NewAddress(a.Offset+other.Offset, a.Bit+other.Bit)
}

// Sub returns the difference of two addresses.
func (a Address) Sub(other Address) Address {
	return NewAddress(a.Offset-other.Offset, a.Bit-other.Bit)
}

// AddBits returns the address moved forward by a bit count.
func (a Address) AddBits(bits int64) Address {
	o, b := floorDivmod(a.Bits()+bits, 8)

	return Address{Offset: o, Bit: int(b)}
}

// SubBits returns the address moved backward by a bit count.
func (a Address) SubBits(bits int64) Address {
	return a.AddBits(-bits)
}

// Less orders addresses by position in memory.
func (a Address) Less(other Address) bool {
	return a.Bits() < other.Bits()
}

func (a Address) String() string {
	return fmt.Sprintf("%#x, bit %d", a.Offset, a.Bit)
}

// floorDivmod divides rounding toward negative infinity, so the remainder
// is always within [0, divisor).
func floorDivmod(dividend, divisor int64) (quotient, remainder int64) {
	quotient = dividend / divisor
	remainder = dividend % divisor
	if remainder < 0 {
		quotient--
		remainder += divisor
	}

	return quotient, remainder
}
