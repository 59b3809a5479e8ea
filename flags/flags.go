package flags

import (
	"fmt"

	"github.com/cavetools/tsc/value"
)

// FlagSchema returns the value schema used for flag numbers: four bytes
// with the full byte range available, since flag commands accept any byte.
func FlagSchema() value.Schema {
	return value.Schema{
		Length:  4,
		MinChar: 0x00,
		MaxChar: 0xFF,
	}
}

// FlagAddress returns the memory address of a flag. Flags count bits from
// the base of the flags array; negative flags borrow downward, so flag -1
// is bit 7 of the byte below the base.
func FlagAddress(flag int64, base Address) Address {
	return base.AddBits(flag)
}

// AddressFlag returns the flag number of a bit address relative to the
// base of the flags array.
func AddressFlag(addr Address, base Address) int64 {
	return addr.Sub(base).Bits()
}

// Flags returns the flag values covering the given number of bits starting
// at an address, one value per bit at consecutive flag numbers.
func Flags(addr Address, bits int, base Address, schema value.Schema) (_ []value.Value, err error) {
	defer Error.WrapP(&err)

	if bits < 0 || bits > 64 {
		return nil, Error.New("bit count %d must be within [0, 64]", bits)
	}

	first := AddressFlag(addr, base)

	out := make([]value.Value, 0, bits)
	for i := 0; i < bits; i++ {
		f, err := schema.Encode(first + int64(i))
		if err != nil {
			return nil, err
		}

		out = append(out, f)
	}

	return out, nil
}

// SetValue returns the flag commands that store a number at an address,
// one <FL+ or <FL- per bit, least significant bit first. Negative numbers
// are stored as their two's complement over the declared width; numbers
// that do not fit the width are rejected.
func SetValue(addr Address, val int64, bits int, base Address, schema value.Schema) (_ []string, err error) {
	defer Error.WrapP(&err)

	if bits < 1 || bits > 64 {
		return nil, Error.New("bit count %d must be within [1, 64]", bits)
	}

	// Shift in uint64 space: no non-negative int64 exceeds 2^63, so an
	// int64 shift by 63 would wrap negative and reject everything.
	if val > 0 && bits < 64 && uint64(val) >= uint64(1)<<uint(bits) {
		return nil, ErrRange.New("%d is too large for a %d-bit number", val, bits)
	}

	if val < 0 && bits < 64 && val < -(int64(1)<<uint(bits-1)) {
		return nil, ErrRange.New("%d is too small for a %d-bit number", val, bits)
	}

	flags, err := Flags(addr, bits, base, schema)
	if err != nil {
		return nil, err
	}

	// The int64 to uint64 conversion is exactly the two's complement
	// reinterpretation, so negative values need no special casing.
	uval := uint64(val)

	out := make([]string, 0, bits)
	for i, f := range flags {
		command := "<FL-"
		if uval>>uint(i)&1 != 0 {
			command = "<FL+"
		}

		out = append(out, fmt.Sprintf("%s%s", command, f))
	}

	return out, nil
}
